package logger

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Root  string
	Debug bool
}

var (
	mu       sync.RWMutex
	global   = zap.NewNop()
	closeLog func()
	logPath  string
)

// Setup points the process logger at <root>/.onlawthink/logs/onlawthink.log.
// The TUI owns stdout, so nothing is ever written to the terminal.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)
	if root == "" {
		root = "."
	}

	dir := filepath.Join(root, ".onlawthink", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		setDiscard()
		return nil, err
	}

	path := filepath.Join(dir, "onlawthink.log")
	ws, closeFn, err := zap.Open(path)
	if err != nil {
		setDiscard()
		return nil, err
	}

	level := zapcore.InfoLevel
	var opts []zap.Option
	if cfg.Debug {
		level = zapcore.DebugLevel
		opts = append(opts, zap.AddCaller())
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), ws, level)
	l := zap.New(core, opts...)

	mu.Lock()
	global = l
	closeLog = closeFn
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", zap.String("path", path), zap.Bool("debug", cfg.Debug))

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		serr := global.Sync()
		if closeLog != nil {
			closeLog()
		}
		closeLog = nil
		logPath = ""
		global = zap.NewNop()
		return serr
	}

	return cleanup, nil
}

func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the file the logger writes to, or "" before Setup and after cleanup.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = zap.NewNop()
	closeLog = nil
	logPath = ""
}

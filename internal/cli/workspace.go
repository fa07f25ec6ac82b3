package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/config"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/httpclient"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/lawyerapi"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/logger"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/metrics"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/session"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/workspacefinder"
	"github.com/ShubhamAnand123/onlawthink/internal/ports"
)

type appCtx struct {
	root string
	cfg  domain.Config
	log  *zap.Logger

	store   *session.FileStore
	session *session.JWTSource

	svc      ports.DirectoryService
	registry *prometheus.Registry
	recorder *metrics.Recorder

	cleanup func() error
}

// loadApp wires configuration, logging, the session and the directory client for
// the workspace at workspaceFlag (or the one found from the working directory).
func loadApp(workspaceFlag string, debug bool) (*appCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}
	cfg, err = config.ApplyEnv(cfg, os.Getenv)
	if err != nil {
		return nil, err
	}

	cleanup, _ := logger.Setup(logger.Config{
		Root:  root,
		Debug: debug || cfg.Log.Debug,
	})
	log := logger.L()

	store := session.NewFileStore(sessionPath(root, cfg))
	tokens := tokenSource(cfg, store)
	src := session.NewJWTSource(tokens, sessionOptions(cfg, log)...)

	client, err := lawyerapi.New(cfg.Service,
		lawyerapi.WithHTTPClient(httpclient.New(httpclient.ForService(cfg.Service))),
		lawyerapi.WithAuthToken(tokens),
		lawyerapi.WithLogger(log),
	)
	if err != nil {
		if cleanup != nil {
			_ = cleanup()
		}
		return nil, err
	}

	reg := prometheus.NewRegistry()

	log.Debug("app.loaded",
		zap.String("root", root),
		zap.String("base_url", cfg.Service.BaseURL),
	)

	return &appCtx{
		root:     root,
		cfg:      cfg,
		log:      log,
		store:    store,
		session:  src,
		svc:      client,
		registry: reg,
		recorder: metrics.New(reg),
		cleanup:  cleanup,
	}, nil
}

func (a *appCtx) close() {
	if a != nil && a.cleanup != nil {
		_ = a.cleanup()
	}
}

// serveMetrics exposes the fetch counters when metrics.addr is configured.
func (a *appCtx) serveMetrics(ctx context.Context) {
	addr := strings.TrimSpace(a.cfg.Metrics.Addr)
	if addr == "" {
		return
	}
	go func() {
		if err := metrics.Serve(ctx, addr, a.registry, a.log); err != nil {
			a.log.Warn("metrics.serve.failed", zap.String("addr", addr), zap.Error(err))
		}
	}()
}

func tokenSource(cfg domain.Config, store ports.SessionStore) session.TokenFunc {
	return session.FirstToken(
		session.EnvToken(cfg.Session.TokenEnv, os.Getenv),
		session.StaticToken(cfg.Session.Token),
		session.StoreToken(store),
	)
}

func sessionOptions(cfg domain.Config, log *zap.Logger) []session.Option {
	opts := []session.Option{session.WithLogger(log)}
	if name := strings.TrimSpace(cfg.Session.SigningKeyEnv); name != "" {
		if key := os.Getenv(name); key != "" {
			opts = append(opts, session.WithSigningKey([]byte(key)))
		}
	}
	return opts
}

func sessionPath(root string, cfg domain.Config) string {
	p := cfg.Session.File
	if p == "" {
		p = domain.DefaultConfig().Session.File
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// resolveWorkspaceRoot prefers the explicit flag, then the nearest directory with
// onlawthink.yaml, then the working directory itself.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.ConfigLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return wd, nil
	}
	return root, nil
}

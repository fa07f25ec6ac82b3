package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ShubhamAnand123/onlawthink/internal/infra/config"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/yamlfixtures"
)

func TestInitializer_Init_WritesLoadableFiles(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(tmp, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, ".onlawthink", "logs"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))

	cfg, err := config.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("template config must load: %v", err)
	}
	if cfg.Service.BaseURL != "http://localhost:5000" {
		t.Fatalf("unexpected base url %q", cfg.Service.BaseURL)
	}

	snap, err := yamlfixtures.NewLoader().LoadSnapshot(filepath.Join(tmp, "fixtures", "lawyers.yaml"))
	if err != nil {
		t.Fatalf("template fixtures must load: %v", err)
	}
	if len(snap.Providers) == 0 {
		t.Fatalf("expected sample providers")
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "onlawthink.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing onlawthink.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(tmp, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}
	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read onlawthink.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected onlawthink.yaml preserved, got %q", string(b))
	}

	if err := i.Init(tmp, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}
	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read onlawthink.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "service:") {
		t.Fatalf("expected onlawthink.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}

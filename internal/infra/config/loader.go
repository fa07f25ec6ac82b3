package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the workspace root.
const FileName = "onlawthink.yaml"

// Environment overrides, applied after the file.
const (
	EnvBaseURL = "ONLAWTHINK_BASE_URL"
	EnvDebug   = "ONLAWTHINK_DEBUG"
)

// LoadConfig loads onlawthink.yaml from root and applies defaults.
// When the file is missing it returns the defaults with a KindNotFound error so
// callers may carry on.
func LoadConfig(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y YAMLConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, y)
}

// ApplyEnv overlays environment variables read through getenv.
func ApplyEnv(cfg domain.Config, getenv func(string) string) (domain.Config, error) {
	if v := strings.TrimSpace(getenv(EnvBaseURL)); v != "" {
		if err := checkBaseURL(v); err != nil {
			return cfg, invalidField(EnvBaseURL, "service.base_url", err.Error())
		}
		cfg.Service.BaseURL = strings.TrimRight(v, "/")
	}
	switch strings.ToLower(strings.TrimSpace(getenv(EnvDebug))) {
	case "1", "true", "yes":
		cfg.Log.Debug = true
	}
	return cfg, nil
}

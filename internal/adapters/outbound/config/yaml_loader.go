package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/prodcat/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the config directory.
const FileName = ".prodcat.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .prodcat.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .prodcat.yaml from dir.
// A missing file yields DefaultConfig, with the store dir resolved against dir.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return domain.Config{}, err
	}

	// Keys absent from the file keep their default values.
	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	cfg.Store.DSN = os.ExpandEnv(cfg.Store.DSN)

	// A relative store dir is resolved against the config directory, not the cwd.
	if cfg.Store.Dir != "" && !filepath.IsAbs(cfg.Store.Dir) {
		cfg.Store.Dir = filepath.Join(dir, cfg.Store.Dir)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}

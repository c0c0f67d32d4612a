package domain

import (
	"fmt"
	"strings"
	"time"
)

// StoreBackend selects where the durable slot lives.
type StoreBackend string

const (
	BackendFile     StoreBackend = "file"
	BackendMemory   StoreBackend = "memory"
	BackendPostgres StoreBackend = "postgres"
)

// ValidBackends enumerates all recognized store backends.
var ValidBackends = []StoreBackend{BackendFile, BackendMemory, BackendPostgres}

// ValidLogLevels enumerates accepted log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats enumerates accepted log encodings.
var ValidLogFormats = []string{"console", "json"}

// Config holds settings loaded from .prodcat.yaml.
type Config struct {
	Store   StoreConfig   `yaml:"store"   json:"store"`
	Latency LatencyConfig `yaml:"latency" json:"latency"`
	Log     LogConfig     `yaml:"log"     json:"log"`
}

// StoreConfig describes the durable slot backend.
type StoreConfig struct {
	Backend StoreBackend `yaml:"backend" json:"backend"`
	Dir     string       `yaml:"dir"     json:"dir,omitempty"`
	Key     string       `yaml:"key"     json:"key"`
	DSN     string       `yaml:"dsn"     json:"-"`
}

// LatencyConfig is the simulated delay before each catalog operation resolves.
type LatencyConfig struct {
	List   time.Duration `yaml:"list"   json:"list"`
	Add    time.Duration `yaml:"add"    json:"add"`
	Update time.Duration `yaml:"update" json:"update"`
	Delete time.Duration `yaml:"delete" json:"delete"`
}

// LogConfig controls the logger built at startup.
type LogConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
}

// DefaultLatency returns the delays the catalog has always simulated.
func DefaultLatency() LatencyConfig {
	return LatencyConfig{
		List:   500 * time.Millisecond,
		Add:    400 * time.Millisecond,
		Update: 400 * time.Millisecond,
		Delete: 300 * time.Millisecond,
	}
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Dir:     ".prodcat",
			Key:     DefaultSlotKey,
		},
		Latency: DefaultLatency(),
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Validate checks the config for invalid values.
func (c Config) Validate() error {
	if !containsBackend(ValidBackends, c.Store.Backend) {
		return fmt.Errorf("unknown store backend %q (valid: file, memory, postgres)", c.Store.Backend)
	}
	if strings.TrimSpace(c.Store.Key) == "" {
		return fmt.Errorf("store key must not be empty")
	}
	switch c.Store.Backend {
	case BackendFile:
		if strings.TrimSpace(c.Store.Dir) == "" {
			return fmt.Errorf("store dir is required for the file backend")
		}
	case BackendPostgres:
		if strings.TrimSpace(c.Store.DSN) == "" {
			return fmt.Errorf("store dsn is required for the postgres backend")
		}
	}

	for name, d := range map[string]time.Duration{
		"list": c.Latency.List, "add": c.Latency.Add,
		"update": c.Latency.Update, "delete": c.Latency.Delete,
	} {
		if d < 0 {
			return fmt.Errorf("latency %s must not be negative, got %s", name, d)
		}
	}

	if !containsString(ValidLogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if !containsString(ValidLogFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

func containsBackend(list []StoreBackend, b StoreBackend) bool {
	for _, v := range list {
		if v == b {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	appconfig "github.com/abdidvp/prodcat/internal/adapters/outbound/config"
	"github.com/abdidvp/prodcat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".prodcat.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	want := domain.DefaultConfig()
	want.Store.Dir = filepath.Join(dir, ".prodcat")
	assert.Equal(t, want, cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
store:
  backend: memory
  key: catalogo
latency:
  list: 0s
  add: 10ms
log:
  level: debug
  format: json
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "catalogo", cfg.Store.Key)
	assert.Equal(t, time.Duration(0), cfg.Latency.List)
	assert.Equal(t, 10*time.Millisecond, cfg.Latency.Add)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestYAMLLoader_UnsetKeysKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
latency:
  delete: 1s
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Latency.Delete)
	assert.Equal(t, 500*time.Millisecond, cfg.Latency.List)
	assert.Equal(t, domain.BackendFile, cfg.Store.Backend)
	assert.Equal(t, domain.DefaultSlotKey, cfg.Store.Key)
}

func TestYAMLLoader_RelativeDirResolvesAgainstConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
store:
  dir: data
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.Store.Dir)
}

func TestYAMLLoader_ExpandsDSNFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PRODCAT_DSN", "postgres://u:p@localhost:5432/catalog")
	writeConfig(t, dir, `
store:
  backend: postgres
  dsn: ${PRODCAT_DSN}
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/catalog", cfg.Store.DSN)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .prodcat.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
store:
  backend: redis
`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .prodcat.yaml")
	assert.Contains(t, err.Error(), "redis")
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.BackendFile, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(dir, ".prodcat"), cfg.Store.Dir)
}

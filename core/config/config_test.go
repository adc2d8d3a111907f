package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 60, cfg.Catalog.TimeoutSeconds)
	assert.Equal(t, 30, cfg.Catalog.CacheTTLSeconds)
	assert.False(t, cfg.Audit.Enabled)
	assert.True(t, cfg.Audit.DatabaseEnabled)
	assert.Equal(t, "releng-sop", cfg.Audit.Storage.Bucket)
	assert.Equal(t, "sqlite", cfg.Audit.Database.Driver)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Documents.Roots)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RELENG_SOP_LOG_LEVEL", "debug")
	t.Setenv("RELENG_SOP_AUDIT_ENABLED", "true")
	t.Setenv("RELENG_SOP_AUDIT_DATABASE_DRIVER", "mysql")
	t.Setenv("RELENG_SOP_CATALOG_TIMEOUT_SECONDS", "5")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, "mysql", cfg.Audit.Database.Driver)
	assert.Equal(t, 5, cfg.Catalog.TimeoutSeconds)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("RELENG_SOP_SERVER_PORT=9090\n"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() { os.Unsetenv("RELENG_SOP_SERVER_PORT") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
}

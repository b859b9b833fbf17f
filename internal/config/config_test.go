package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cadastro/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no config.yaml or
// .env of the repository is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "Master Cadastros", cfg.AppName)
	assert.Equal(t, ":8080", cfg.HTTPPort)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 1024*1024, cfg.BodyLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsDev())
}

func TestLoad_EnvOverrides(t *testing.T) {
	inTempDir(t)
	t.Setenv("APP_HTTP_PORT", "9090")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_LOG_FORMAT", "json")
	t.Setenv("APP_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("APP_METRICS_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPPort)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.MetricsEnabled)
	assert.False(t, cfg.IsDev())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := inTempDir(t)
	yaml := "app_name: Cadastros Teste\nlog_level: debug\nbody_limit: 2048\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "Cadastros Teste", cfg.AppName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2048, cfg.BodyLimit)
}

func TestLoad_Invalid(t *testing.T) {
	inTempDir(t)
	t.Setenv("APP_LOG_FORMAT", "xml")

	cfg, err := config.Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COBRADASH_PORT", "9090")
	t.Setenv("COBRADASH_SALES_URL", "http://example.test/sales")
	t.Setenv("COBRADASH_HTTP_TIMEOUT", "5s")
	t.Setenv("COBRADASH_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://example.test/sales", cfg.SalesURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestSlogLevels(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "ERROR"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "whatever"}.SlogLevel())
}

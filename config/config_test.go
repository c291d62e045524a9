package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T) *AppConfig {
	t.Helper()
	cfg := &AppConfig{}
	require.NoError(t, env.Parse(cfg))
	cfg.Sanitize()
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := loadConfig(t)

	assert.False(t, cfg.IsDev)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "http://localhost:8000/api", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.URI)
	assert.Equal(t, 24*time.Hour, cfg.Storage.SessionTTL)
	assert.Equal(t, 12*time.Hour, cfg.Storage.CartTTL)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
	assert.False(t, cfg.Observability.Metrics.IsEnabled())
}

func TestDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")
	cfg := loadConfig(t)

	assert.True(t, cfg.IsDev)
	assert.False(t, cfg.HTTP.SecureCookies, "dev mode runs over plain HTTP")
}

func TestSecureCookiesKeptInProduction(t *testing.T) {
	cfg := loadConfig(t)
	assert.True(t, cfg.HTTP.SecureCookies)
}

func TestBackendBaseURLTrimmed(t *testing.T) {
	t.Setenv("POS_API_BASE_URL", "https://api.example.com/api/ ")
	cfg := loadConfig(t)
	assert.Equal(t, "https://api.example.com/api", cfg.Backend.BaseURL)
}

func TestSanitizeClampsDurations(t *testing.T) {
	t.Setenv("POS_API_TIMEOUT", "-1s")
	t.Setenv("SESSION_TTL", "0")
	t.Setenv("HTTP_WRITE_TIMEOUT", "0")
	cfg := loadConfig(t)

	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Storage.SessionTTL)
	assert.Equal(t, 60*time.Second, cfg.HTTP.WriteTimeout)
}

func TestMetricsDisabledWithoutAddress(t *testing.T) {
	t.Setenv("OBSERVABILITY_METRICS_ENABLED", "true")
	t.Setenv("OBSERVABILITY_METRICS_STATSD_ADDRESS", "  ")
	cfg := loadConfig(t)

	assert.False(t, cfg.Observability.Metrics.IsEnabled())
}

func TestLogSettingsSanitized(t *testing.T) {
	t.Setenv("LOG_LEVEL", "VERBOSE")
	t.Setenv("LOG_FORMAT", "pretty")
	cfg := loadConfig(t)

	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
}

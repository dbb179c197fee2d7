package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PLATFORM_API_URL", "https://platform.test")
	t.Setenv("PLATFORM_API_TOKEN", "svc_token")
	t.Setenv("JWT_SECRET", "secret")
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	setRequiredEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 10, cfg.Upstream.TimeoutSeconds)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
	assert.Equal(t, 60, cfg.Redis.CacheTTLSeconds)
	assert.InDelta(t, 0.10, cfg.Reports.PlatformFeeRate, 1e-9)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PLATFORM_API_TIMEOUT_SECONDS", "5")
	t.Setenv("CACHE_TTL_SECONDS", "15")
	t.Setenv("PLATFORM_FEE_RATE", "0.15")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "https://platform.test", cfg.Upstream.URL)
	assert.Equal(t, "svc_token", cfg.Upstream.ServiceToken)
	assert.Equal(t, 5, cfg.Upstream.TimeoutSeconds)
	assert.Equal(t, 15, cfg.Redis.CacheTTLSeconds)
	assert.InDelta(t, 0.15, cfg.Reports.PlatformFeeRate, 1e-9)
}

// TestLoad_MissingRequired verifies that missing required values fail the load.
func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("PLATFORM_API_URL")
	os.Unsetenv("PLATFORM_API_TOKEN")
	os.Unsetenv("JWT_SECRET")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration")
}

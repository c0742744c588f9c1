package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "5000")
	t.Setenv("USE_POLLINATIONS", "")
	t.Setenv("POLLINATIONS_BASE_URL", "https://text.pollinations.ai/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.False(t, cfg.UsePollinations)
	assert.Equal(t, "https://text.pollinations.ai", cfg.PollinationsBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoad_UsePollinationsOnlyExactTrue(t *testing.T) {
	cases := map[string]bool{
		"true": true,
		"TRUE": false,
		"1":    false,
		"yes":  false,
	}
	for value, want := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("APP_ENV", "production")
			t.Setenv("PORT", "8080")
			t.Setenv("USE_POLLINATIONS", value)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, want, cfg.UsePollinations)
			assert.Equal(t, "8080", cfg.HTTPPort)
		})
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "http")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Origins(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "5000")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://localhost:3000, ,http://example.com ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "http://example.com"}, cfg.AllowedOrigins)
}

func TestLoadClient(t *testing.T) {
	t.Setenv("PROPOSAL_SERVER_URL", "http://proxy:5000/")
	t.Setenv("PROPOSAL_TIMEOUT", "30s")
	t.Setenv("PROPOSAL_STORAGE_PATH", "/tmp/proposals.json")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadClient()
	require.NoError(t, err)

	assert.Equal(t, "http://proxy:5000", cfg.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/proposals.json", cfg.StoragePath)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadClient_BadTimeout(t *testing.T) {
	t.Setenv("PROPOSAL_TIMEOUT", "soon")

	_, err := LoadClient()
	assert.Error(t, err)
}

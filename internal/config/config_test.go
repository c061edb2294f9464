package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_PORT", "LLM_PROVIDER", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW_SECONDS",
		"COUPON_EXPIRY_START", "COUPON_EXPIRY_DAYS", "ORACLE_TIMEOUT_SECONDS", "REDIS_URL", "NATS_URL", "SESSION_MAX",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "gemini", cfg.Ai.LLMProvider)
	assert.Empty(t, cfg.App.RedisURL)
	assert.Empty(t, cfg.App.NatsURL)
	assert.Equal(t, 60, cfg.RateLimit.Max)
	assert.Equal(t, 60*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, 10*time.Second, cfg.Ai.OracleTimeout)
	assert.Equal(t, time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC), cfg.Coupon.ExpiryStart)
	assert.Equal(t, 30, cfg.Coupon.ExpiryDays)
	assert.Equal(t, 1000, cfg.App.MaxSessions)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "10")
	t.Setenv("COUPON_EXPIRY_START", "2026-01-01")
	t.Setenv("LLM_PROVIDER", "Ollama")

	cfg := Load()

	assert.Equal(t, 5, cfg.RateLimit.Max)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), cfg.Coupon.ExpiryStart)
	assert.Equal(t, "ollama", cfg.Ai.LLMProvider)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Ai:        AIConfig{LLMProvider: "gemini", GoogleAPIKey: "key"},
			RateLimit: RateLimitConfig{Max: 60, Window: time.Minute},
		}
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, base().Validate())
	})

	t.Run("gemini without key", func(t *testing.T) {
		cfg := base()
		cfg.Ai.GoogleAPIKey = ""
		assert.ErrorIs(t, cfg.Validate(), ErrMissingCredential)
	})

	t.Run("ollama without key", func(t *testing.T) {
		cfg := base()
		cfg.Ai.LLMProvider = "ollama"
		cfg.Ai.GoogleAPIKey = ""
		assert.NoError(t, cfg.Validate())
	})

	t.Run("non-positive limit", func(t *testing.T) {
		cfg := base()
		cfg.RateLimit.Max = 0
		assert.Error(t, cfg.Validate())
	})
}

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/sixteen/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 180, cfg.Server.WriteTimeout)
		require.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
		require.Equal(t, 120, cfg.OpenAI.Timeout)
		require.Empty(t, cfg.OpenAI.APIKey)
		require.Empty(t, cfg.Pricing.CatalogSource)
		require.Empty(t, cfg.Cache.RedisAddr)
		require.Equal(t, 86400, cfg.Cache.TTL)
		require.Equal(t, 1024, cfg.Cache.MaxSize)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("SERVER_READ_TIMEOUT", "60")
		t.Setenv("SERVER_WRITE_TIMEOUT", "60")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("OPENAI_BASE_URL", "https://test.openai.com")
		t.Setenv("OPENAI_TIMEOUT", "240")
		t.Setenv("PRICING_CATALOG_SOURCE", "https://example.com/prices.json")
		t.Setenv("CACHE_REDIS_ADDR", "localhost:6379")
		t.Setenv("CACHE_TTL", "3600")
		t.Setenv("CACHE_MAX_SIZE", "64")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, 60, cfg.Server.ReadTimeout)
		require.Equal(t, 60, cfg.Server.WriteTimeout)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, "https://test.openai.com", cfg.OpenAI.BaseURL)
		require.Equal(t, 240, cfg.OpenAI.Timeout)
		require.Equal(t, "https://example.com/prices.json", cfg.Pricing.CatalogSource)
		require.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
		require.Equal(t, 3600, cfg.Cache.TTL)
		require.Equal(t, 64, cfg.Cache.MaxSize)
	})
}

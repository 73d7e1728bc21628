package openai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/sixteen/internal/provider/openai"
)

func TestNewProvider(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		_, err := openai.NewProvider(openai.Config{})
		require.Error(t, err)
	})

	t.Run("builds with full configuration", func(t *testing.T) {
		provider, err := openai.NewProvider(openai.Config{
			APIKey:  "sk-test",
			BaseURL: "https://example.com/v1",
			Timeout: 30,
		})
		require.NoError(t, err)
		require.Equal(t, "openai", provider.Name())
	})
}

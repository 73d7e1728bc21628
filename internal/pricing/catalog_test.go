package pricing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/sixteen/internal/pricing"
)

const catalogDocument = `{
	"sample_spec": {
		"input_cost_per_token": "the cost per input token",
		"output_cost_per_token": "the cost per output token"
	},
	"gpt-4o": {
		"input_cost_per_token": 0.0000025,
		"output_cost_per_token": 0.00001,
		"litellm_provider": "openai",
		"max_tokens": 16384
	},
	"half-priced-model": {
		"input_cost_per_token": 0.000001,
		"output_cost_per_token": null
	}
}`

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	ctx := context.Background()
	path := writeCatalogFile(t, catalogDocument)

	t.Run("plain path", func(t *testing.T) {
		catalog, err := pricing.Load(ctx, path)
		require.NoError(t, err)

		entry, ok := catalog["gpt-4o"]
		require.True(t, ok)
		require.NotNil(t, entry.InputCostPerToken)
		require.NotNil(t, entry.OutputCostPerToken)
		require.InDelta(t, 0.0000025, *entry.InputCostPerToken, 1e-15)
		require.InDelta(t, 0.00001, *entry.OutputCostPerToken, 1e-15)
	})

	t.Run("file scheme", func(t *testing.T) {
		catalog, err := pricing.Load(ctx, "file://"+path)
		require.NoError(t, err)
		require.Contains(t, catalog, "gpt-4o")
	})

	t.Run("null costs survive as nulls", func(t *testing.T) {
		catalog, err := pricing.Load(ctx, path)
		require.NoError(t, err)

		entry, ok := catalog["half-priced-model"]
		require.True(t, ok)
		require.NotNil(t, entry.InputCostPerToken)
		require.Nil(t, entry.OutputCostPerToken)
	})

	t.Run("non-pricing entries are skipped", func(t *testing.T) {
		catalog, err := pricing.Load(ctx, path)
		require.NoError(t, err)
		require.NotContains(t, catalog, "sample_spec")
	})
}

func TestLoad_FromHTTP(t *testing.T) {
	ctx := context.Background()

	t.Run("successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(catalogDocument))
		}))
		defer server.Close()

		catalog, err := pricing.Load(ctx, server.URL)
		require.NoError(t, err)
		require.Contains(t, catalog, "gpt-4o")
	})

	t.Run("non-200 status fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := pricing.Load(ctx, server.URL)
		require.Error(t, err)
	})
}

func TestLoad_Failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		source string
	}{
		{name: "empty source", source: ""},
		{name: "missing file", source: filepath.Join(t.TempDir(), "nope.json")},
		{name: "unsupported scheme", source: "ftp://example.com/prices.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pricing.Load(ctx, tt.source)
			require.Error(t, err)
		})
	}

	t.Run("malformed document", func(t *testing.T) {
		path := writeCatalogFile(t, "not json at all")
		_, err := pricing.Load(ctx, path)
		require.Error(t, err)
	})
}

// Package pricing loads the external model-pricing catalog.
//
// The catalog is a JSON document in the community format: model identifier
// mapped to an object with input_cost_per_token and output_cost_per_token
// fields. Extra fields are ignored. Loading is best-effort: any failure is
// returned to the caller, who absorbs it and runs with built-in fallback
// pricing instead.
package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/davidbz/sixteen/internal/domain"
	"github.com/davidbz/sixteen/internal/observability"
)

const (
	// maxCatalogBytes bounds the catalog document size (20MB).
	maxCatalogBytes = 20 * 1024 * 1024

	fetchTimeout = 30 * time.Second
)

// Load reads a pricing catalog from a plain file path, a file:// URL, or an
// http(s):// URL. Loaded at most once per process by the wiring in cmd; the
// returned catalog is immutable.
func Load(ctx context.Context, source string) (domain.Catalog, error) {
	if source == "" {
		return nil, errors.New("empty catalog source")
	}

	var data []byte
	var err error

	switch {
	case strings.HasPrefix(source, "file://"):
		data, err = loadFromFile(strings.TrimPrefix(source, "file://"))
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		data, err = loadFromHTTP(ctx, source)
	case !strings.Contains(source, "://"):
		data, err = loadFromFile(source)
	default:
		return nil, fmt.Errorf("unsupported catalog source: %s", source)
	}
	if err != nil {
		return nil, err
	}

	return parseCatalog(ctx, data)
}

// parseCatalog decodes the document entry by entry. Entries that do not
// match the pricing shape (the community file embeds a sample_spec record
// with string values) are skipped, not fatal.
func parseCatalog(ctx context.Context, data []byte) (domain.Catalog, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse pricing catalog: %w", err)
	}

	catalog := make(domain.Catalog, len(raw))
	skipped := 0
	for model, body := range raw {
		var entry domain.CatalogEntry
		if err := json.Unmarshal(body, &entry); err != nil {
			skipped++
			continue
		}
		catalog[model] = entry
	}

	if skipped > 0 {
		observability.FromContext(ctx).Debug("skipped malformed catalog entries",
			observability.Int("skipped", skipped))
	}

	return catalog, nil
}

// loadFromFile reads the catalog from the local filesystem.
func loadFromFile(path string) ([]byte, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog file: %w", err)
	}
	if stat.Size() > maxCatalogBytes {
		return nil, fmt.Errorf("catalog file too large: %d bytes", stat.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return data, nil
}

// loadFromHTTP fetches the catalog from an http(s) endpoint.
func loadFromHTTP(ctx context.Context, link string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog body: %w", err)
	}
	if len(data) > maxCatalogBytes {
		return nil, fmt.Errorf("catalog document too large: %d bytes", len(data))
	}

	return data, nil
}

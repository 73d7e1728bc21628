package domain

import (
	"context"
	"time"
)

// VisionProvider issues one vision completion request.
type VisionProvider interface {
	// Complete sends the request and returns the first completion's content,
	// finish reason and usage record.
	Complete(ctx context.Context, req *VisionRequest) (*VisionResponse, error)

	// Name returns the provider identifier.
	Name() string
}

// CostCalculator prices a usage record for a model.
type CostCalculator interface {
	// Calculate resolves per-token prices for the model and returns the
	// cost breakdown. Price resolution never fails; unknown models price
	// against the default entry.
	Calculate(ctx context.Context, model string, usage Usage) CostBreakdown
}

// EventPublisher publishes diagnostic events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}

// ResultCache stores solve results keyed by exact request content.
type ResultCache interface {
	// Get retrieves a cached result, or ErrCacheMiss.
	Get(ctx context.Context, key string) (*SolveResult, error)

	// Set stores a result under the key for the given TTL.
	Set(ctx context.Context, key string, result *SolveResult, ttl time.Duration) error
}

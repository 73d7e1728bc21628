package domain

import "context"

// Diagnostic event types published by the cost calculator. These are
// warnings, never failures: a request with unpriced usage still succeeds.
const (
	EventPricingFallback = "pricing.fallback"
	EventPricingDefault  = "pricing.default"
)

// StandardCostCalculator prices token usage against an optional external
// catalog, falling back to the built-in table and finally the default entry.
type StandardCostCalculator struct {
	catalog Catalog
	events  EventPublisher
}

// NewStandardCostCalculator creates a new cost calculator. The catalog may
// be nil (fallback mode); events may be nil to drop diagnostics.
func NewStandardCostCalculator(catalog Catalog, events EventPublisher) *StandardCostCalculator {
	return &StandardCostCalculator{
		catalog: catalog,
		events:  events,
	}
}

// Calculate resolves per-token prices for the model and computes the cost
// breakdown. TotalCost is the exact sum of the two components with no
// intermediate rounding.
func (c *StandardCostCalculator) Calculate(ctx context.Context, model string, usage Usage) CostBreakdown {
	price, source := resolvePrice(c.catalog, model)

	if c.events != nil && source != priceSourceCatalog {
		c.events.Publish(ctx, EventPricingFallback, map[string]interface{}{
			"model": model,
		})
	}
	if c.events != nil && source == priceSourceDefault {
		c.events.Publish(ctx, EventPricingDefault, map[string]interface{}{
			"model": model,
		})
	}

	inputCost := float64(usage.PromptTokens) * price.InputCostPerToken
	outputCost := float64(usage.CompletionTokens) * price.OutputCostPerToken

	totalTokens := usage.TotalTokens
	if totalTokens == 0 {
		totalTokens = usage.PromptTokens + usage.CompletionTokens
	}

	return CostBreakdown{
		InputCost:        inputCost,
		OutputCost:       outputCost,
		TotalCost:        inputCost + outputCost,
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      totalTokens,
	}
}

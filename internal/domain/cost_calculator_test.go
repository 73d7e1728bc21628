package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/sixteen/internal/domain"
)

// capturingPublisher records event types for assertions.
type capturingPublisher struct {
	events []string
}

func (p *capturingPublisher) Publish(_ context.Context, eventType string, _ map[string]interface{}) {
	p.events = append(p.events, eventType)
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestStandardCostCalculator_FallbackPricing(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name               string
		model              string
		usage              domain.Usage
		expectedInputCost  float64
		expectedOutputCost float64
		expectedTotalCost  float64
	}{
		{
			name:               "gpt-4o with published per-million prices",
			model:              "gpt-4o",
			usage:              domain.Usage{PromptTokens: 1000, CompletionTokens: 500, TotalTokens: 1500},
			expectedInputCost:  0.0025,
			expectedOutputCost: 0.005,
			expectedTotalCost:  0.0075,
		},
		{
			name:               "unknown model resolves via default entry",
			model:              "unknown-model-xyz",
			usage:              domain.Usage{PromptTokens: 1000, CompletionTokens: 500, TotalTokens: 1500},
			expectedInputCost:  0.005,
			expectedOutputCost: 0.0075,
			expectedTotalCost:  0.0125,
		},
		{
			name:               "exact gpt-4o-mini match wins over substring order",
			model:              "gpt-4o-mini",
			usage:              domain.Usage{PromptTokens: 1_000_000, CompletionTokens: 1_000_000},
			expectedInputCost:  0.15,
			expectedOutputCost: 0.60,
			expectedTotalCost:  0.75,
		},
		{
			name:               "substring match is case-insensitive",
			model:              "my-GPT-4-TURBO-preview",
			usage:              domain.Usage{PromptTokens: 1_000_000, CompletionTokens: 0},
			expectedInputCost:  10.00,
			expectedOutputCost: 0,
			expectedTotalCost:  10.00,
		},
		{
			name:  "substring resolution walks declared order first match wins",
			model: "ft:gpt-4o-mini:acme",
			usage: domain.Usage{PromptTokens: 1_000_000, CompletionTokens: 0},
			// "gpt-4o" is declared before "gpt-4o-mini", so a model id that
			// merely contains "gpt-4o-mini" still prices as gpt-4o.
			expectedInputCost:  2.50,
			expectedOutputCost: 0,
			expectedTotalCost:  2.50,
		},
		{
			name:               "zero tokens yield zero cost regardless of price",
			model:              "gpt-4",
			usage:              domain.Usage{PromptTokens: 0, CompletionTokens: 0},
			expectedInputCost:  0,
			expectedOutputCost: 0,
			expectedTotalCost:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calculator := domain.NewStandardCostCalculator(nil, nil)

			breakdown := calculator.Calculate(ctx, tt.model, tt.usage)

			require.InDelta(t, tt.expectedInputCost, breakdown.InputCost, 1e-12)
			require.InDelta(t, tt.expectedOutputCost, breakdown.OutputCost, 1e-12)
			require.InDelta(t, tt.expectedTotalCost, breakdown.TotalCost, 1e-12)

			// The invariant is exact, not approximate.
			require.Equal(t, breakdown.InputCost+breakdown.OutputCost, breakdown.TotalCost)
		})
	}
}

func TestStandardCostCalculator_CatalogPreferred(t *testing.T) {
	ctx := context.Background()

	catalog := domain.Catalog{
		"gpt-4o": {
			InputCostPerToken:  floatPtr(0.000001),
			OutputCostPerToken: floatPtr(0.000002),
		},
	}

	events := &capturingPublisher{}
	calculator := domain.NewStandardCostCalculator(catalog, events)

	breakdown := calculator.Calculate(ctx, "gpt-4o", domain.Usage{
		PromptTokens:     1000,
		CompletionTokens: 1000,
	})

	// Catalog prices, not the built-in gpt-4o table entry.
	require.InDelta(t, 0.001, breakdown.InputCost, 1e-12)
	require.InDelta(t, 0.002, breakdown.OutputCost, 1e-12)
	require.Empty(t, events.events)
}

func TestStandardCostCalculator_CatalogEntryWithNullFieldIgnored(t *testing.T) {
	ctx := context.Background()

	// A catalog hit with a null output cost must not be used.
	catalog := domain.Catalog{
		"gpt-4o": {
			InputCostPerToken:  floatPtr(0.000001),
			OutputCostPerToken: nil,
		},
	}

	events := &capturingPublisher{}
	calculator := domain.NewStandardCostCalculator(catalog, events)

	breakdown := calculator.Calculate(ctx, "gpt-4o", domain.Usage{
		PromptTokens:     1000,
		CompletionTokens: 500,
	})

	require.InDelta(t, 0.0025, breakdown.InputCost, 1e-12)
	require.InDelta(t, 0.005, breakdown.OutputCost, 1e-12)
	require.Contains(t, events.events, domain.EventPricingFallback)
	require.NotContains(t, events.events, domain.EventPricingDefault)
}

func TestStandardCostCalculator_DefaultEmitsBothDiagnostics(t *testing.T) {
	ctx := context.Background()

	events := &capturingPublisher{}
	calculator := domain.NewStandardCostCalculator(nil, events)

	calculator.Calculate(ctx, "totally-unknown", domain.Usage{PromptTokens: 1})

	require.Contains(t, events.events, domain.EventPricingFallback)
	require.Contains(t, events.events, domain.EventPricingDefault)
}

func TestStandardCostCalculator_TotalTokens(t *testing.T) {
	ctx := context.Background()
	calculator := domain.NewStandardCostCalculator(nil, nil)

	t.Run("uses provided total when present", func(t *testing.T) {
		breakdown := calculator.Calculate(ctx, "gpt-4o", domain.Usage{
			PromptTokens:     10,
			CompletionTokens: 5,
			TotalTokens:      20, // some providers count extras
		})
		require.Equal(t, 20, breakdown.TotalTokens)
	})

	t.Run("defaults to prompt plus completion when absent", func(t *testing.T) {
		breakdown := calculator.Calculate(ctx, "gpt-4o", domain.Usage{
			PromptTokens:     10,
			CompletionTokens: 5,
		})
		require.Equal(t, 15, breakdown.TotalTokens)
	})
}

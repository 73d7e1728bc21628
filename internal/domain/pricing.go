package domain

import "strings"

const tokensPerMillion = 1_000_000.0

// perMillion converts a published per-million-token USD price to per-token.
func perMillion(usd float64) float64 {
	return usd / tokensPerMillion
}

// fallbackPrice pairs a model key with its built-in per-token prices.
type fallbackPrice struct {
	key   string
	price PriceEntry
}

// fallbackPrices is the built-in pricing table, published per-million-token
// USD prices converted to per-token. Declaration order matters: substring
// resolution walks this slice top to bottom and the first match wins.
var fallbackPrices = []fallbackPrice{
	{"gpt-4o", PriceEntry{perMillion(2.50), perMillion(10.00)}},
	{"gpt-4o-mini", PriceEntry{perMillion(0.15), perMillion(0.60)}},
	{"gpt-4-turbo", PriceEntry{perMillion(10.00), perMillion(30.00)}},
	{"gpt-4", PriceEntry{perMillion(30.00), perMillion(60.00)}},
}

// defaultPrice is used when nothing else matches.
var defaultPrice = PriceEntry{perMillion(5.00), perMillion(15.00)}

// priceSource records which tier of the resolution chain supplied a price.
type priceSource int

const (
	priceSourceCatalog priceSource = iota
	priceSourceFallback
	priceSourceDefault
)

// resolvePrice resolves per-token prices for a model:
//  1. exact catalog match, only when both per-token costs are non-null
//  2. exact match in the built-in fallback table
//  3. case-insensitive substring match over fallback keys in declared order
//  4. the default entry
func resolvePrice(catalog Catalog, model string) (PriceEntry, priceSource) {
	if entry, ok := catalog[model]; ok &&
		entry.InputCostPerToken != nil && entry.OutputCostPerToken != nil {
		return PriceEntry{
			InputCostPerToken:  *entry.InputCostPerToken,
			OutputCostPerToken: *entry.OutputCostPerToken,
		}, priceSourceCatalog
	}

	for _, fp := range fallbackPrices {
		if fp.key == model {
			return fp.price, priceSourceFallback
		}
	}

	lowered := strings.ToLower(model)
	for _, fp := range fallbackPrices {
		if strings.Contains(lowered, fp.key) {
			return fp.price, priceSourceFallback
		}
	}

	return defaultPrice, priceSourceDefault
}

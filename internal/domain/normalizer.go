package domain

import (
	"encoding/json"
	"strings"
)

// NormalizeSolution extracts a structured grouping from raw model text.
//
// The extraction is a greedy brace-delimited span: the substring from the
// first '{' to the last '}' in the text, not a balanced JSON scan. This is
// a deliberate simplification and downstream behavior depends on it; do not
// replace it with a stricter parser. Anything that fails to parse as a
// grouping degrades to a plain-text result carrying the original text
// verbatim. Never returns an error.
func NormalizeSolution(raw string) *SolveResult {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	if start >= 0 && end > start {
		var parsed struct {
			Groups []Group `json:"groups"`
		}
		if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err == nil && len(parsed.Groups) > 0 {
			return &SolveResult{Groups: parsed.Groups}
		}
	}

	return &SolveResult{TextResponse: raw}
}

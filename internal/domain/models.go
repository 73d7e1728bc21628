package domain

// SolveRequest represents one puzzle-solving request.
type SolveRequest struct {
	Model  string `json:"model"`
	Image  string `json:"image"`            // data URI or http(s) URL
	Prompt string `json:"prompt,omitempty"` // optional override of the default instruction
}

// Group is one themed group of puzzle words.
type Group struct {
	Theme       string   `json:"theme"`
	Words       []string `json:"words"`
	Explanation string   `json:"explanation,omitempty"`
}

// SolveResult is the outcome of one solve. Exactly one of Groups or
// TextResponse is populated: Groups when the model produced a parseable
// grouping, TextResponse with the raw model text otherwise.
type SolveResult struct {
	Groups       []Group        `json:"groups,omitempty"`
	TextResponse string         `json:"text_response,omitempty"`
	Model        string         `json:"model,omitempty"`
	FinishReason string         `json:"finish_reason,omitempty"`
	Usage        *Usage         `json:"usage,omitempty"`
	Cost         *CostBreakdown `json:"cost,omitempty"`
	ElapsedMs    float64        `json:"elapsed_ms,omitempty"`
	Cached       bool           `json:"cached,omitempty"`
}

// IsGrouped reports whether the result carries a structured grouping.
func (r *SolveResult) IsGrouped() bool {
	return len(r.Groups) > 0
}

// Usage tracks token consumption for a single completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CostBreakdown is the priced view of a usage record. TotalCost is always
// the exact floating-point sum of InputCost and OutputCost; no rounding is
// applied here, display rounding is the caller's concern.
type CostBreakdown struct {
	InputCost        float64 `json:"input_cost"`
	OutputCost       float64 `json:"output_cost"`
	TotalCost        float64 `json:"total_cost"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	ElapsedMs        float64 `json:"elapsed_ms"`
	ElapsedSeconds   float64 `json:"elapsed_seconds"`
}

// PriceEntry holds resolved per-token USD prices for one model.
type PriceEntry struct {
	InputCostPerToken  float64
	OutputCostPerToken float64
}

// CatalogEntry is one externally loaded pricing record. Fields are pointers
// so that "present but null" can be told apart from present: a catalog entry
// is only usable when both costs are non-null.
type CatalogEntry struct {
	InputCostPerToken  *float64 `json:"input_cost_per_token"`
	OutputCostPerToken *float64 `json:"output_cost_per_token"`
}

// Catalog maps model identifiers to externally loaded pricing. It is an
// immutable value built once at startup; a nil catalog is a valid permanent
// state and means built-in fallback pricing only.
type Catalog map[string]CatalogEntry

// VisionRequest is the provider-facing form of a solve: one user turn with
// an instruction text and an image reference.
type VisionRequest struct {
	Model    string
	Prompt   string
	ImageURL string
}

// VisionResponse is the provider-facing completion outcome. Usage is nil
// when the provider response carried no usage record.
type VisionResponse struct {
	Content      string
	FinishReason string
	Usage        *Usage
}

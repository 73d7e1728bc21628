// Package echo provides a testing provider that returns a canned puzzle
// solution. It implements the domain.VisionProvider interface without making
// external API calls, providing deterministic responses for development and
// tests (and for running the server without an API key).
package echo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/davidbz/sixteen/internal/domain"
	"github.com/davidbz/sixteen/internal/observability"
)

const (
	providerName = "echo"

	// ModelName is the only model the echo provider accepts.
	ModelName = "echo-vision"
)

// cannedSolution is a fixed 4x4 grouping wrapped in prose, the way a real
// model tends to answer.
const cannedSolution = `Here is the solution:
{"groups":[
{"theme":"colors","words":["red","green","blue","yellow"],"explanation":"basic colors"},
{"theme":"animals","words":["cat","dog","fox","owl"],"explanation":"common animals"},
{"theme":"metals","words":["iron","gold","lead","zinc"],"explanation":"metallic elements"},
{"theme":"rivers","words":["nile","amazon","volga","danube"],"explanation":"major rivers"}
]}`

// Provider implements the domain.VisionProvider interface for testing.
type Provider struct {
	name string
}

// NewProvider creates a new echo provider.
// No configuration is required as this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{
		name: providerName,
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// Complete returns the canned solution with deterministic usage counters.
func (p *Provider) Complete(ctx context.Context, req *domain.VisionRequest) (*domain.VisionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if req.Model != ModelName {
		return nil, fmt.Errorf("model %s is not supported by echo provider", req.Model)
	}

	observability.FromContext(ctx).Debug("echoing canned solution")

	promptTokens := countTokens(req.Prompt)
	completionTokens := countTokens(cannedSolution)

	return &domain.VisionResponse{
		Content:      cannedSolution,
		FinishReason: "stop",
		Usage: &domain.Usage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
		},
	}, nil
}

// countTokens approximates token usage with simple word counting.
func countTokens(text string) int {
	return len(strings.Fields(text))
}

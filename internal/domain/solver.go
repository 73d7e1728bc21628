package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davidbz/sixteen/internal/observability"
)

// DefaultPrompt instructs the model to group the 16 puzzle words and answer
// with the JSON shape the normalizer expects.
const DefaultPrompt = `This image shows a word puzzle with 16 words. ` +
	`Find 4 groups of 4 related words. Respond with a JSON object of the form ` +
	`{"groups":[{"theme":"...","words":["w1","w2","w3","w4"],"explanation":"..."}]} ` +
	`and nothing else.`

// finishReasonLength is the provider's finish reason for hitting a token limit.
const finishReasonLength = "length"

// SolverService orchestrates a single puzzle solve: cache lookup, one
// provider round trip, response normalization and cost accounting.
type SolverService struct {
	provider   VisionProvider
	calculator CostCalculator
	cache      ResultCache
	cacheTTL   time.Duration
}

// NewSolverService creates a new solver service (DI constructor). The cache
// may be nil to disable result caching.
func NewSolverService(
	provider VisionProvider,
	calculator CostCalculator,
	cache ResultCache,
	cacheTTL time.Duration,
) *SolverService {
	return &SolverService{
		provider:   provider,
		calculator: calculator,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Solve handles one solve request. No retries are performed; a failed call
// surfaces its error and the caller owns retry policy.
func (s *SolverService) Solve(ctx context.Context, req *SolveRequest) (*SolveResult, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Model == "" {
		return nil, errors.New("model cannot be empty")
	}
	if req.Image == "" {
		return nil, errors.New("image cannot be empty")
	}

	logger := observability.FromContext(ctx)

	key := CacheKey(req)
	if s.cache != nil {
		cached, cacheErr := s.cache.Get(ctx, key)
		if cacheErr != nil && !errors.Is(cacheErr, ErrCacheMiss) {
			logger.Warn("cache get failed, continuing without cache",
				observability.Error(cacheErr))
		}
		if cached != nil {
			logger.Info("cache hit, returning stored solution",
				observability.String("model", cached.Model))
			cached.Cached = true
			return cached, nil
		}
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	start := time.Now()

	resp, err := s.provider.Complete(ctx, &VisionRequest{
		Model:    req.Model,
		Prompt:   prompt,
		ImageURL: req.Image,
	})
	if err != nil {
		return nil, fmt.Errorf("solve failed: %w", err)
	}

	if strings.TrimSpace(resp.Content) == "" {
		if resp.FinishReason == finishReasonLength {
			return nil, fmt.Errorf("%w: raise the completion token limit", ErrTruncatedResponse)
		}
		return nil, fmt.Errorf("%w (finish reason %q)", ErrEmptyResponse, resp.FinishReason)
	}

	result := NormalizeSolution(resp.Content)
	elapsed := time.Since(start)

	result.Model = req.Model
	result.FinishReason = resp.FinishReason
	result.ElapsedMs = float64(elapsed.Nanoseconds()) / 1e6

	// Usage entirely absent from the provider response means no cost
	// accounting at all: usage and cost stay omitted, not zeroed.
	if resp.Usage != nil {
		usage := *resp.Usage
		if usage.TotalTokens == 0 {
			usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
		}

		breakdown := s.calculator.Calculate(ctx, req.Model, usage)
		breakdown.ElapsedMs = result.ElapsedMs
		breakdown.ElapsedSeconds = elapsed.Seconds()

		result.Usage = &usage
		result.Cost = &breakdown
	}

	logger.Info("solve completed",
		observability.String("model", req.Model),
		observability.Bool("grouped", result.IsGrouped()),
		observability.Float64("elapsed_ms", result.ElapsedMs))

	if s.cache != nil {
		if setErr := s.cache.Set(ctx, key, result, s.cacheTTL); setErr != nil {
			logger.Warn("failed to store result in cache",
				observability.Error(setErr))
		}
	}

	return result, nil
}

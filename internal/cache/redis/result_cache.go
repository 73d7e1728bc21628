// Package redis provides the Redis-backed solve-result cache. Keys are
// exact content hashes (see domain.CacheKey), so plain key-value storage
// with a TTL is all that is needed.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/sixteen/internal/domain"
	"github.com/davidbz/sixteen/internal/observability"
)

// ResultCache implements domain.ResultCache on a Redis client.
type ResultCache struct {
	client *redis.Client
}

// NewResultCache creates a new Redis result cache adapter.
func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{
		client: client,
	}
}

// Get retrieves a cached result, or domain.ErrCacheMiss.
func (c *ResultCache) Get(ctx context.Context, key string) (*domain.SolveResult, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get failed: %w", err)
	}

	var result domain.SolveResult
	if err := json.Unmarshal(data, &result); err != nil {
		// A corrupt entry is treated as a miss rather than a failure.
		observability.FromContext(ctx).Warn("dropping unreadable cache entry",
			observability.String("key", key),
			observability.Error(err))
		c.client.Del(ctx, key)
		return nil, domain.ErrCacheMiss
	}

	return &result, nil
}

// Set stores a result under the key for the given TTL.
func (c *ResultCache) Set(ctx context.Context, key string, result *domain.SolveResult, ttl time.Duration) error {
	if result == nil {
		return errors.New("result cannot be nil")
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}

	return nil
}

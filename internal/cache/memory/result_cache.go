// Package memory provides an in-process solve-result cache used when Redis
// is not configured.
package memory

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/davidbz/sixteen/internal/domain"
)

const defaultMaxSize = 1024

// entry holds a cached result with its expiry.
type entry struct {
	result    *domain.SolveResult
	expiresAt time.Time
}

// ResultCache is an LRU-bounded implementation of domain.ResultCache.
// Thread-safe, uses hashicorp/golang-lru under the hood.
type ResultCache struct {
	cache *lru.Cache[string, *entry]
}

// NewResultCache creates a new in-memory result cache.
func NewResultCache(maxSize int) (*ResultCache, error) {
	if maxSize <= 0 {
		maxSize = defaultMaxSize
	}

	cache, err := lru.New[string, *entry](maxSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	return &ResultCache{
		cache: cache,
	}, nil
}

// Get retrieves a cached result, or domain.ErrCacheMiss when the key is
// absent or its TTL has lapsed.
func (c *ResultCache) Get(_ context.Context, key string) (*domain.SolveResult, error) {
	cached, ok := c.cache.Get(key)
	if !ok {
		return nil, domain.ErrCacheMiss
	}

	if !cached.expiresAt.IsZero() && time.Now().After(cached.expiresAt) {
		c.cache.Remove(key)
		return nil, domain.ErrCacheMiss
	}

	return cached.result, nil
}

// Set stores a result under the key. A non-positive TTL stores the entry
// without expiry (LRU eviction still applies).
func (c *ResultCache) Set(_ context.Context, key string, result *domain.SolveResult, ttl time.Duration) error {
	if result == nil {
		return fmt.Errorf("result cannot be nil")
	}

	e := &entry{result: result}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	c.cache.Add(key, e)
	return nil
}

package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrCacheMiss indicates no cached entry was found.
var ErrCacheMiss = errors.New("cache miss")

// CacheKey derives a stable key from the exact request content, so the same
// image sent to the same model with the same prompt is never re-billed.
func CacheKey(req *SolveRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Model))
	h.Write([]byte{0})
	h.Write([]byte(req.Prompt))
	h.Write([]byte{0})
	h.Write([]byte(req.Image))

	return "solve:" + hex.EncodeToString(h.Sum(nil))
}

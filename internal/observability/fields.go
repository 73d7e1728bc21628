package observability

import "go.uber.org/zap"

// Structured field constructors, aliased so callers outside this package do
// not import zap directly.
var (
	Error    = zap.Error
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
)

package middleware

import (
	"github.com/davidbz/sixteen/internal/observability"
)

// Trace creates a middleware that injects trace, span and request IDs into
// every request and logs its arrival.
func Trace() Middleware {
	return observability.Trace()
}

package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse indicates the model returned blank content with a
// non-length finish reason.
var ErrEmptyResponse = errors.New("model returned an empty response")

// ErrTruncatedResponse indicates the completion was cut off by a token
// limit before producing any content.
var ErrTruncatedResponse = errors.New("model response was truncated by the token limit")

// APIError is a non-success HTTP response from the provider, carrying the
// provider-supplied message when the error body was parseable.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api request failed: %s", e.Message)
	}
	return fmt.Sprintf("api request failed with status %d", e.StatusCode)
}

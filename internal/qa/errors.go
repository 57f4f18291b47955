package qa

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// APIError represents an error returned by an inference provider API.
type APIError struct {
	// Provider is the name of the inference provider (e.g., "huggingface").
	Provider string
	// StatusCode is the HTTP status code returned by the API.
	StatusCode int
	// Message is the error message from the API.
	Message string
	// EstimatedTime is the provider's estimate of how long until the model
	// is loaded, for cold-start responses. Zero when not reported.
	EstimatedTime time.Duration
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.EstimatedTime > 0 {
		return fmt.Sprintf("%s: API error (status %d, model ready in ~%s): %s", e.Provider, e.StatusCode, e.EstimatedTime, e.Message)
	}
	return fmt.Sprintf("%s: API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// IsTransient returns true if the error is a transient error that may succeed
// on retry. This includes rate limiting (429), server errors (5xx, notably
// the 503 returned while a model is still loading), and network errors
// (StatusCode 0 indicates no HTTP response was received).
func (e *APIError) IsTransient() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= 500
}

// isTransientError reports whether err is an APIError worth retrying.
func isTransientError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsTransient()
	}
	return false
}

package qa

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	t.Run("without estimated time", func(t *testing.T) {
		err := &APIError{
			Provider:   "huggingface",
			StatusCode: 429,
			Message:    "Rate limit reached",
		}
		assert.Equal(t, "huggingface: API error (status 429): Rate limit reached", err.Error())
	})

	t.Run("with estimated time", func(t *testing.T) {
		err := &APIError{
			Provider:      "huggingface",
			StatusCode:    503,
			Message:       "Model is currently loading",
			EstimatedTime: 20 * time.Second,
		}
		got := err.Error()
		assert.Contains(t, got, "503")
		assert.Contains(t, got, "20s")
		assert.Contains(t, got, "Model is currently loading")
	})
}

func TestAPIError_IsTransient(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       bool
	}{
		{name: "429 Too Many Requests is transient", statusCode: 429, want: true},
		{name: "500 Internal Server Error is transient", statusCode: 500, want: true},
		{name: "503 Service Unavailable is transient", statusCode: 503, want: true},
		{name: "0 (no HTTP response) is transient", statusCode: 0, want: true},
		{name: "400 Bad Request is not transient", statusCode: 400, want: false},
		{name: "401 Unauthorized is not transient", statusCode: 401, want: false},
		{name: "404 Not Found is not transient", statusCode: 404, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := &APIError{
				Provider:   "huggingface",
				StatusCode: tc.statusCode,
				Message:    "test message",
			}
			assert.Equal(t, tc.want, err.IsTransient())
		})
	}
}

func TestIsTransientError(t *testing.T) {
	t.Run("returns true for transient APIError", func(t *testing.T) {
		err := &APIError{StatusCode: http.StatusServiceUnavailable}
		assert.True(t, isTransientError(err))
	})

	t.Run("returns false for non-transient APIError", func(t *testing.T) {
		err := &APIError{StatusCode: http.StatusBadRequest}
		assert.False(t, isTransientError(err))
	})

	t.Run("returns false for non-APIError", func(t *testing.T) {
		assert.False(t, isTransientError(context.DeadlineExceeded))
	})
}

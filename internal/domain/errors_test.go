package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExternalAPIError(t *testing.T) {
	t.Run("formats source and status", func(t *testing.T) {
		err := NewExternalAPIError("OpenAlex", 502, "bad gateway", nil)

		assert.Equal(t, "OpenAlex API error (status 502): bad gateway", err.Error())
	})

	t.Run("unwraps to cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewExternalAPIError("OpenAlex", 500, "server error", cause)

		assert.True(t, errors.Is(err, cause))
	})
}

func TestRateLimitError(t *testing.T) {
	err := NewRateLimitError("OpenAlex", 30*time.Second)

	assert.True(t, errors.Is(err, ErrRateLimited))
	assert.Contains(t, err.Error(), "OpenAlex")
	assert.Contains(t, err.Error(), "30s")
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("qa.score_threshold", "must be between 0 and 1")

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "validation error: qa.score_threshold: must be between 0 and 1", err.Error())
}

func TestSentinelWrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetch authors: %w", ErrNoWorks)

	assert.True(t, errors.Is(wrapped, ErrNoWorks))
	assert.False(t, errors.Is(wrapped, ErrCountryNotFound))
}

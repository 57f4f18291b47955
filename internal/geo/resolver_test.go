package geo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarmesh/researcher-scout/internal/domain"
)

func TestNormalizeCountries(t *testing.T) {
	resolver := NewResolver()

	tests := []struct {
		name     string
		input    []string
		expected []domain.CountryCode
	}{
		{
			name:     "resolves known countries",
			input:    []string{"France", "Germany", "Italy"},
			expected: []domain.CountryCode{"FR", "DE", "IT"},
		},
		{
			name:     "drops unresolvable names",
			input:    []string{"Germany", "Tomato", "Italy"},
			expected: []domain.CountryCode{"DE", "IT"},
		},
		{
			name:     "empty input collapses to the unfiltered sentinel",
			input:    nil,
			expected: []domain.CountryCode{domain.CountryUnfiltered},
		},
		{
			name:     "nothing resolvable collapses to the unfiltered sentinel",
			input:    []string{"Tomato", "Atlantis"},
			expected: []domain.CountryCode{domain.CountryUnfiltered},
		},
		{
			name:     "lookup is case insensitive",
			input:    []string{"germany"},
			expected: []domain.CountryCode{"DE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := resolver.NormalizeCountries(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCountryName(t *testing.T) {
	resolver := NewResolver()

	t.Run("returns common name for alpha-2 code", func(t *testing.T) {
		name, err := resolver.CountryName("DE")
		require.NoError(t, err)
		assert.Equal(t, "Germany", name)
	})

	t.Run("unknown code returns ErrCountryNotFound", func(t *testing.T) {
		_, err := resolver.CountryName("XX")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCountryNotFound))
	})
}

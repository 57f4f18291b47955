package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryCode(t *testing.T) {
	t.Run("zero value is the unfiltered sentinel", func(t *testing.T) {
		var code CountryCode

		assert.Equal(t, CountryUnfiltered, code)
		assert.False(t, code.Filtered())
		assert.Equal(t, "", code.String())
	})

	t.Run("alpha-2 code filters", func(t *testing.T) {
		code := CountryCode("DE")

		assert.True(t, code.Filtered())
		assert.Equal(t, "DE", code.String())
	})
}

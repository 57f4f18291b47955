// Package geo resolves free-text country names against the embedded
// ISO 3166-1 table.
package geo

import (
	"fmt"

	"github.com/pariz/gountries"

	"github.com/scholarmesh/researcher-scout/internal/domain"
)

// Resolver answers country lookups from the embedded country data. It is
// stateless after construction and safe for concurrent use.
type Resolver struct {
	query *gountries.Query
}

// NewResolver builds a Resolver backed by the embedded country table.
func NewResolver() *Resolver {
	return &Resolver{query: gountries.New()}
}

// NormalizeCountries resolves country names to ISO 3166-1 alpha-2 codes,
// preserving input order. Names that do not resolve are dropped without
// error. When nothing resolves, the result is the single unfiltered
// sentinel so that callers iterating over it run exactly one unrestricted
// search.
func (r *Resolver) NormalizeCountries(names []string) []domain.CountryCode {
	var codes []domain.CountryCode
	for _, name := range names {
		country, err := r.query.FindCountryByName(name)
		if err != nil {
			continue
		}
		codes = append(codes, domain.CountryCode(country.Alpha2))
	}

	if len(codes) == 0 {
		return []domain.CountryCode{domain.CountryUnfiltered}
	}

	return codes
}

// CountryName returns the common display name for an alpha-2 code. Returns
// an error wrapping domain.ErrCountryNotFound for unknown codes.
func (r *Resolver) CountryName(code domain.CountryCode) (string, error) {
	country, err := r.query.FindCountryByAlpha(code.String())
	if err != nil {
		return "", fmt.Errorf("%q: %w", code.String(), domain.ErrCountryNotFound)
	}

	return country.Name.Common, nil
}

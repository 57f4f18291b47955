package domain

// CountryCode is an ISO 3166-1 alpha-2 country code used to filter author
// searches by institution country. The zero value is the unfiltered
// sentinel: it matches authors from any country.
type CountryCode string

// CountryUnfiltered is the no-filter sentinel. Iterating over a country
// list that contains only this value performs exactly one unfiltered search.
const CountryUnfiltered CountryCode = ""

// Filtered reports whether the code restricts results to a country.
func (c CountryCode) Filtered() bool {
	return c != CountryUnfiltered
}

// String returns the alpha-2 code, or the empty string for the sentinel.
func (c CountryCode) String() string {
	return string(c)
}

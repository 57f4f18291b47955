// Package openalex provides a client for the OpenAlex scholarly API.
//
// OpenAlex (https://openalex.org) is a fully open index of scholarly
// concepts, authors, institutions, and works. This package covers the two
// endpoints the scout pipeline needs: concept search and author search
// filtered by concept and country.
package openalex

// Meta holds the pagination metadata returned with every OpenAlex list
// response.
type Meta struct {
	Count   int `json:"count"`
	DBTime  int `json:"db_response_time_ms"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// ConceptsResponse is the response envelope of the /concepts endpoint.
type ConceptsResponse struct {
	Meta    Meta            `json:"meta"`
	Results []ConceptResult `json:"results"`
}

// ConceptResult is a single scholarly concept as returned by the API.
// IDs come back in their full URL form (https://openalex.org/C...).
type ConceptResult struct {
	ID             string  `json:"id"`
	DisplayName    string  `json:"display_name"`
	RelevanceScore float64 `json:"relevance_score"`
	Description    string  `json:"description"`
	CitedByCount   int     `json:"cited_by_count"`
	WorksCount     int     `json:"works_count"`
	Level          int     `json:"level"`
}

// AuthorsResponse is the response envelope of the /authors endpoint.
type AuthorsResponse struct {
	Meta    Meta           `json:"meta"`
	Results []AuthorResult `json:"results"`
}

// AuthorResult is a single author profile as returned by the API.
type AuthorResult struct {
	ID                   string       `json:"id"`
	DisplayName          string       `json:"display_name"`
	Orcid                string       `json:"orcid"`
	CitedByCount         int          `json:"cited_by_count"`
	WorksCount           int          `json:"works_count"`
	SummaryStats         SummaryStats `json:"summary_stats"`
	LastKnownInstitution *Institution `json:"last_known_institution"`
}

// SummaryStats is the citation statistics block of an author profile.
type SummaryStats struct {
	TwoYearMeanCitedness float64 `json:"2yr_mean_citedness"`
	HIndex               int     `json:"h_index"`
	I10Index             int     `json:"i10_index"`
}

// Institution identifies the institution an author was last affiliated
// with. OpenAlex omits the whole block for unaffiliated authors, so the
// field referencing this type is a pointer.
type Institution struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	CountryCode string `json:"country_code"`
	Type        string `json:"type"`
}

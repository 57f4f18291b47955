package domain

// Concept is a canonical research concept matched to a free-text topic
// phrase. Fields mirror the OpenAlex concept record; instances are read-only
// after construction.
type Concept struct {
	// ID is the OpenAlex concept identifier in full URL form,
	// e.g. "https://openalex.org/C41008148".
	ID string

	// DisplayName is the canonical concept name.
	DisplayName string

	// RelevanceScore is the search relevance assigned by the concept search,
	// higher meaning a closer match to the topic phrase.
	RelevanceScore float64

	// Description is a short human-readable explanation of the concept.
	Description string

	// CitedByCount is the total citations across works tagged with the concept.
	CitedByCount int
}

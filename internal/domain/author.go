package domain

import (
	"fmt"
	"sort"
)

// UnknownAssociation is the affiliation shown for authors whose last known
// institution is missing from the source record.
const UnknownAssociation = "No institution"

// Author represents a researcher candidate assembled from an author search
// result. Instances are constructed once via NewAuthor and never mutated.
type Author struct {
	// DisplayName is the author's name as reported by the source.
	DisplayName string

	// CitedByCount is the author's total citation count.
	CitedByCount int

	// WorksCount is the author's total number of published works.
	WorksCount int

	// CitingScore is the mean citations per work, CitedByCount / WorksCount.
	CitingScore float64

	// TwoYearMeanCitedness is the author's average citations per work over
	// the last two years.
	TwoYearMeanCitedness float64

	// Association is the author's last known institution, or
	// UnknownAssociation when the source reports none.
	Association string
}

// NewAuthor builds an Author from source fields, deriving the citing score
// and defaulting a missing association. Returns an error wrapping ErrNoWorks
// when worksCount is zero, since the citing score is undefined there.
func NewAuthor(displayName string, citedByCount, worksCount int, twoYearMeanCitedness float64, association string) (Author, error) {
	if worksCount == 0 {
		return Author{}, fmt.Errorf("author %q: %w", displayName, ErrNoWorks)
	}

	if association == "" {
		association = UnknownAssociation
	}

	return Author{
		DisplayName:          displayName,
		CitedByCount:         citedByCount,
		WorksCount:           worksCount,
		CitingScore:          float64(citedByCount) / float64(worksCount),
		TwoYearMeanCitedness: twoYearMeanCitedness,
		Association:          association,
	}, nil
}

// SortByImpact orders authors in place by descending two-year mean
// citedness, breaking ties by descending total citation count. The sort is
// stable so fully tied authors keep their fetch order.
func SortByImpact(authors []Author) {
	sort.SliceStable(authors, func(i, j int) bool {
		if authors[i].TwoYearMeanCitedness != authors[j].TwoYearMeanCitedness {
			return authors[i].TwoYearMeanCitedness > authors[j].TwoYearMeanCitedness
		}
		return authors[i].CitedByCount > authors[j].CitedByCount
	})
}

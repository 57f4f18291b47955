// Package report renders pipeline results to the console.
//
// The layout mirrors what researchers expect from the scout: the inferred
// topics and locations echoed first, then one block per topic with a
// country header and up to five ranked authors, each with its citation
// metrics.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/scholarmesh/researcher-scout/internal/domain"
)

// Reporter prints pipeline results in a fixed console layout. All output
// goes through the writer handed to New, which keeps the layout testable
// and lets callers redirect it.
type Reporter struct {
	out io.Writer

	header *color.Color
	name   *color.Color
}

// New creates a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		header: color.New(color.FgCyan, color.Bold),
		name:   color.New(color.Bold),
	}
}

// PrintExtraction echoes the inferred topics and locations.
func (r *Reporter) PrintExtraction(topics, locations []string) {
	fmt.Fprintf(r.out, "The inferred topics are: %s\n", strings.Join(topics, ", "))
	fmt.Fprintf(r.out, "The inferred locations are: %s\n", strings.Join(locations, ", "))
}

// PrintNoTopics reports the soft empty-extraction outcome.
func (r *Reporter) PrintNoTopics() {
	fmt.Fprintln(r.out, "No topics found!")
}

// PrintConceptCount reports how many concepts a topic search returned.
func (r *Reporter) PrintConceptCount(count int) {
	fmt.Fprintf(r.out, "Number of concepts found: %d\n", count)
}

// PrintTopicHeader opens the result block of one topic.
func (r *Reporter) PrintTopicHeader(topic string) {
	r.header.Fprintf(r.out, "Results for the topic: %q\n", topic)
}

// PrintAuthors prints one country block. A non-empty countryName opens
// the block with an "In {country}:" line; pass "" for unfiltered results.
// Each author renders as a name and affiliation line followed by four
// metric bullets. An empty author list prints just the header, which is
// the expected shape for a country without matches.
func (r *Reporter) PrintAuthors(countryName string, authors []domain.Author) {
	if countryName != "" {
		r.header.Fprintf(r.out, "\nIn %s:\n", countryName)
	}

	for _, author := range authors {
		fmt.Fprintln(r.out)
		r.name.Fprintf(r.out, "%s - %s\n", author.DisplayName, author.Association)
		fmt.Fprintf(r.out, "   • Avg number of citations last 2yrs: %v\n", author.TwoYearMeanCitedness)
		fmt.Fprintf(r.out, "   • Number of works: %d\n", author.WorksCount)
		fmt.Fprintf(r.out, "   • Number of citations: %d\n", author.CitedByCount)
		fmt.Fprintf(r.out, "   • Citing score: %v\n", author.CitingScore)
	}
}

// PrintBlockSeparator inserts the blank gap between country blocks.
func (r *Reporter) PrintBlockSeparator() {
	fmt.Fprint(r.out, "\n\n\n")
}

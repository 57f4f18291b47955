// Package pipeline drives one research-interest scouting pass from query to
// printed report.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/scholarmesh/researcher-scout/internal/domain"
	"github.com/scholarmesh/researcher-scout/internal/observability"
	"github.com/scholarmesh/researcher-scout/internal/report"
)

const (
	// maxConceptsPerTopic is the number of top concepts per topic searched
	// for authors.
	maxConceptsPerTopic = 5

	// maxAuthorsReported is the number of top authors printed per topic and
	// country.
	maxAuthorsReported = 5
)

// InterestExtractor pulls research topics and location names out of an
// interest statement.
type InterestExtractor interface {
	Extract(ctx context.Context, query string) (topics, locations []string, err error)
}

// ScholarSearcher finds concepts and authors in the scholarly graph.
type ScholarSearcher interface {
	SearchConcepts(ctx context.Context, topic string) ([]domain.Concept, error)
	SearchAuthors(ctx context.Context, conceptID string, country domain.CountryCode) ([]domain.Author, error)
}

// CountryResolver normalizes location names into country codes and resolves
// display names for the report.
type CountryResolver interface {
	NormalizeCountries(names []string) []domain.CountryCode
	CountryName(code domain.CountryCode) (string, error)
}

// Pipeline runs one scouting pass: it extracts interests from a query,
// searches the scholarly graph, and prints ranked researchers.
type Pipeline struct {
	extractor InterestExtractor
	scholar   ScholarSearcher
	countries CountryResolver
	reporter  *report.Reporter
	logger    zerolog.Logger
}

// New creates a new Pipeline with the given dependencies.
func New(extractor InterestExtractor, scholar ScholarSearcher, countries CountryResolver, reporter *report.Reporter, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		scholar:   scholar,
		countries: countries,
		reporter:  reporter,
		logger:    logger,
	}
}

// Run executes one scouting pass for the given interest statement.
//
// The pass:
//  1. Extracts topics and location names from the query.
//  2. Echoes the extraction and stops early when no topic was inferred.
//  3. Normalizes location names into country codes, with a single
//     unfiltered pass when none resolve.
//  4. For each topic, searches matching concepts and reports the count.
//  5. For each country code, gathers authors across the top concepts,
//     ranks them by impact, and prints the leading researchers.
func (p *Pipeline) Run(ctx context.Context, query string) error {
	runID := observability.RunIDFromContext(ctx)
	if runID == "" {
		runID = uuid.NewString()
	}
	logger := observability.WithRunContext(p.logger, runID)

	logger.Info().Str("query", query).Msg("scout run started")

	topics, locations, err := p.extractor.Extract(ctx, query)
	if err != nil {
		return fmt.Errorf("extracting interests: %w", err)
	}
	logger.Debug().
		Strs("topics", topics).
		Strs("locations", locations).
		Msg("interests extracted")

	p.reporter.PrintExtraction(topics, locations)

	if len(topics) == 0 {
		p.reporter.PrintNoTopics()
		logger.Warn().Msg("no topics inferred from query")
		return nil
	}

	countries := p.countries.NormalizeCountries(locations)

	for _, topic := range topics {
		topicLogger := observability.WithTopicContext(logger, topic)

		concepts, err := p.scholar.SearchConcepts(ctx, topic)
		if err != nil {
			return fmt.Errorf("searching concepts for topic %q: %w", topic, err)
		}
		topicLogger.Debug().Int("concepts", len(concepts)).Msg("concepts found")

		p.reporter.PrintConceptCount(len(concepts))
		p.reporter.PrintTopicHeader(topic)

		top := concepts
		if len(top) > maxConceptsPerTopic {
			top = top[:maxConceptsPerTopic]
		}

		for _, country := range countries {
			authors, err := p.collectAuthors(ctx, topicLogger, top, country)
			if err != nil {
				return err
			}

			countryName := ""
			if country.Filtered() {
				name, err := p.countries.CountryName(country)
				if err != nil {
					return fmt.Errorf("resolving country name for %s: %w", country, err)
				}
				countryName = name
			}

			p.reporter.PrintAuthors(countryName, authors)
			p.reporter.PrintBlockSeparator()
		}
	}

	logger.Info().Msg("scout run finished")
	return nil
}

// collectAuthors gathers authors across the given concepts for one country
// filter, ranks them by impact, and truncates to the report limit.
func (p *Pipeline) collectAuthors(ctx context.Context, logger zerolog.Logger, concepts []domain.Concept, country domain.CountryCode) ([]domain.Author, error) {
	if country.Filtered() {
		logger = observability.WithCountryContext(logger, country.String())
	}

	var authors []domain.Author
	for _, concept := range concepts {
		conceptLogger := observability.WithConceptContext(logger, concept.ID, concept.DisplayName)

		found, err := p.scholar.SearchAuthors(ctx, concept.ID, country)
		if err != nil {
			return nil, fmt.Errorf("searching authors for concept %q: %w", concept.DisplayName, err)
		}
		conceptLogger.Debug().Int("authors", len(found)).Msg("authors fetched")

		authors = append(authors, found...)
	}

	domain.SortByImpact(authors)
	if len(authors) > maxAuthorsReported {
		authors = authors[:maxAuthorsReported]
	}
	return authors, nil
}

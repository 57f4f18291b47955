// Package extract infers research topics and locations from a free-text
// interest statement using extractive question answering.
//
// The extractor asks a QA model two fixed questions about every sentence
// of the input ("What am I interested in?" and "Which country am I
// interested in?"), keeps the answers that clear a confidence threshold,
// and splits them into standalone phrases.
package extract

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/scholarmesh/researcher-scout/internal/qa"
	"github.com/scholarmesh/researcher-scout/internal/textproc"
)

// Questions posed to the QA model for each input sentence.
const (
	topicQuestion    = "What am I interested in?"
	locationQuestion = "Which country am I interested in?"
)

// DefaultScoreThreshold is the minimum answer confidence the extractor
// keeps. Answers scoring at or below it count as "no answer" for their
// sentence.
const DefaultScoreThreshold = 0.15

// Extractor turns an interest statement into topic and location phrases.
type Extractor struct {
	answerer  qa.Answerer
	threshold float64
	logger    zerolog.Logger
}

// New creates an Extractor using the given answerer. A non-positive
// threshold falls back to DefaultScoreThreshold.
func New(answerer qa.Answerer, threshold float64, logger zerolog.Logger) *Extractor {
	if threshold <= 0 {
		threshold = DefaultScoreThreshold
	}
	return &Extractor{
		answerer:  answerer,
		threshold: threshold,
		logger:    logger,
	}
}

// Extract infers the topics and locations mentioned in the query.
// Both lists may be empty when no answer clears the confidence threshold;
// that is a valid outcome, not an error.
func (e *Extractor) Extract(ctx context.Context, query string) (topics, locations []string, err error) {
	topics, err = e.answerQuestion(ctx, topicQuestion, query)
	if err != nil {
		return nil, nil, fmt.Errorf("topic extraction failed: %w", err)
	}

	locations, err = e.answerQuestion(ctx, locationQuestion, query)
	if err != nil {
		return nil, nil, fmt.Errorf("location extraction failed: %w", err)
	}

	return topics, locations, nil
}

// answerQuestion asks the QA model the same question about every sentence
// of the text and splits the confident answers into phrases.
func (e *Extractor) answerQuestion(ctx context.Context, question, text string) ([]string, error) {
	sentences := textproc.SplitSentences(text)

	answers := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		answer, err := e.answerer.Answer(ctx, question, sentence)
		if err != nil {
			return nil, fmt.Errorf("answering %q: %w", question, err)
		}

		e.logger.Debug().
			Str("question", question).
			Str("answer", answer.Text).
			Float64("score", answer.Score).
			Msg("sentence answered")

		if answer.Score > e.threshold {
			answers = append(answers, answer.Text)
		}
	}

	return textproc.ExtractPhrases(answers), nil
}

// Package qa provides extractive question answering over hosted inference
// APIs.
//
// The package defines the Answerer abstraction used by phrase extraction:
// given a question and a context passage, an Answerer returns the answer
// span the model read out of the passage together with a confidence score.
// The only shipped implementation calls the HuggingFace Inference API.
//
// Example usage:
//
//	answerer := qa.NewHuggingFaceProvider(cfg, 60*time.Second, 3)
//	answer, err := answerer.Answer(ctx, "What am I interested in?", sentence)
package qa

import "context"

// Answer is a single extractive answer with its confidence score and the
// character span it was read from.
type Answer struct {
	// Text is the answer span extracted from the context passage.
	Text string

	// Score is the model's confidence in the answer, in [0, 1].
	Score float64

	// Start is the byte offset of the answer within the context passage.
	Start int

	// End is the byte offset one past the answer within the context passage.
	End int
}

// Answerer defines the interface for extractive question answering.
type Answerer interface {
	// Answer extracts the answer to question from the context passage.
	// The context should be used for cancellation and deadline propagation.
	Answer(ctx context.Context, question, passage string) (Answer, error)

	// Provider returns the name of the inference provider.
	Provider() string

	// Model returns the model identifier being used.
	Model() string
}

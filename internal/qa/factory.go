package qa

import (
	"fmt"
	"strings"
	"time"
)

// FactoryConfig holds the parameters needed to create an Answerer. This is
// defined in the qa package to avoid importing the config package, keeping
// the qa package free of infrastructure dependencies.
type FactoryConfig struct {
	// Provider is the inference provider name ("huggingface").
	Provider string
	// Timeout is the timeout for inference API calls.
	Timeout time.Duration
	// MaxRetries is the maximum number of retries for failed calls.
	MaxRetries int
	// HuggingFace contains HuggingFace-specific settings.
	HuggingFace HuggingFaceConfig
}

// NewAnswerer creates an Answerer based on the configuration. Supports the
// "huggingface" provider (matched case-insensitively). Returns an error for
// unsupported or empty provider values.
func NewAnswerer(cfg FactoryConfig) (Answerer, error) {
	switch strings.ToLower(cfg.Provider) {
	case "huggingface":
		return NewHuggingFaceProvider(cfg.HuggingFace, cfg.Timeout, cfg.MaxRetries), nil
	default:
		return nil, fmt.Errorf("unsupported QA provider: %q", cfg.Provider)
	}
}

package qa

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnswerer(t *testing.T) {
	t.Run("creates huggingface provider", func(t *testing.T) {
		cfg := FactoryConfig{
			Provider:   "huggingface",
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			HuggingFace: HuggingFaceConfig{
				Model: "timpal0l/mdeberta-v3-base-squad2",
			},
		}

		answerer, err := NewAnswerer(cfg)

		require.NoError(t, err)
		assert.Equal(t, "huggingface", answerer.Provider())
		assert.Equal(t, "timpal0l/mdeberta-v3-base-squad2", answerer.Model())
	})

	t.Run("matches provider case-insensitively", func(t *testing.T) {
		answerer, err := NewAnswerer(FactoryConfig{
			Provider:    "HuggingFace",
			HuggingFace: HuggingFaceConfig{Model: "timpal0l/mdeberta-v3-base-squad2"},
		})

		require.NoError(t, err)
		assert.Equal(t, "huggingface", answerer.Provider())
	})

	t.Run("rejects unsupported provider", func(t *testing.T) {
		_, err := NewAnswerer(FactoryConfig{Provider: "onnx"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported QA provider")
	})

	t.Run("rejects empty provider", func(t *testing.T) {
		_, err := NewAnswerer(FactoryConfig{})

		require.Error(t, err)
	})
}

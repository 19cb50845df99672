// Package search provides semantic document search over the policy
// knowledge base. Documents are embedded into vectors and ranked by
// cosine similarity against the query.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/ranacirrusgo/policynav/internal/model"
)

// Embedder turns texts into fixed-size vectors.
type Embedder interface {
	// Name returns the embedder name
	Name() string

	// Embed returns one vector per input text
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// NewEmbedder creates an embedder based on configuration.
func NewEmbedder(config model.EmbeddingConfig) (Embedder, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIEmbedder(config)

	case "local", "":
		return NewLocalEmbedder(config.Dimensions), nil

	default:
		return nil, fmt.Errorf("unknown embedding provider: %s (supported: openai, local)", config.Provider)
	}
}

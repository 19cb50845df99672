package search

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strings"
)

const defaultDimensions = 256

var tokenRe = regexp.MustCompile(`[a-z0-9]+`)

// LocalEmbedder is a deterministic token-hashing embedder. Each token
// is hashed into a bucket and the vector is L2-normalized, so equal
// texts always produce equal vectors and no network is needed.
type LocalEmbedder struct {
	dimensions int
}

// NewLocalEmbedder creates a local embedder with the given vector
// size. Non-positive sizes fall back to the default.
func NewLocalEmbedder(dimensions int) *LocalEmbedder {
	if dimensions <= 0 {
		dimensions = defaultDimensions
	}
	return &LocalEmbedder{dimensions: dimensions}
}

// Name returns the embedder name.
func (e *LocalEmbedder) Name() string {
	return "local"
}

// Embed returns one vector per input text.
func (e *LocalEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		vectors[i] = e.embedOne(text)
	}
	return vectors, nil
}

func (e *LocalEmbedder) embedOne(text string) []float32 {
	vec := make([]float32, e.dimensions)

	tokens := tokenRe.FindAllString(strings.ToLower(text), -1)
	for _, token := range tokens {
		h := fnv.New32a()
		h.Write([]byte(token))
		bucket := int(h.Sum32()) % e.dimensions
		if bucket < 0 {
			bucket += e.dimensions
		}
		vec[bucket]++
	}

	normalize(vec)
	return vec
}

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}

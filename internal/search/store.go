package search

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/ranacirrusgo/policynav/internal/model"
)

// Store is an in-memory vector index over policy documents.
type Store struct {
	embedder Embedder

	mu      sync.RWMutex
	docs    []model.Document
	vectors [][]float32
}

// NewStore creates an empty store backed by the given embedder.
func NewStore(embedder Embedder) *Store {
	return &Store{embedder: embedder}
}

// Add embeds and indexes the given documents. The title and text are
// embedded together so title-only queries still rank well.
func (s *Store) Add(ctx context.Context, docs ...model.Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Title + "\n" + doc.Text
	}

	vectors, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed documents: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, docs...)
	s.vectors = append(s.vectors, vectors...)

	return nil
}

// Len returns the number of indexed documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Search returns up to topK documents ranked by similarity to the
// query. Ties break toward the earlier-indexed document.
func (s *Store) Search(ctx context.Context, query string, topK int) ([]model.SearchResult, error) {
	if topK <= 0 {
		topK = 5
	}

	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	queryVec := vectors[0]

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]model.SearchResult, 0, len(s.docs))
	for i, doc := range s.docs {
		results = append(results, model.SearchResult{
			Document:  doc,
			Relevance: cosine(queryVec, s.vectors[i]),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	if len(results) > topK {
		results = results[:topK]
	}

	return results, nil
}

// cosine computes cosine similarity. Vectors of unequal length or zero
// magnitude score zero.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// FormatResults renders ranked search results for terminal output.
func FormatResults(query string, results []model.SearchResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**Policy Search Results**\n")
	fmt.Fprintf(&b, "Query: %s\n\n", query)

	if len(results) == 0 {
		b.WriteString("No matching documents found.\n")
		return b.String()
	}

	for i, res := range results {
		fmt.Fprintf(&b, "%d. %s (relevance: %.2f)\n", i+1, res.Document.Title, res.Relevance)
		if res.Document.Agency != "" {
			fmt.Fprintf(&b, "   Agency: %s\n", res.Document.Agency)
		}
		if res.Document.Date != "" {
			fmt.Fprintf(&b, "   Date: %s\n", res.Document.Date)
		}
		snippet := res.Document.Text
		if len(snippet) > 200 {
			snippet = snippet[:200] + "..."
		}
		fmt.Fprintf(&b, "   %s\n\n", snippet)
	}

	return b.String()
}

package search

import (
	"context"
	"strings"
	"testing"

	"github.com/ranacirrusgo/policynav/internal/model"
)

func testDocs() []model.Document {
	return []model.Document{
		{
			ID:     "eo-14067",
			Title:  "Executive Order 14067",
			Text:   "Ensuring responsible development of digital assets and cryptocurrency regulation.",
			Agency: "Executive Office of the President",
			Date:   "2022-03-09",
		},
		{
			ID:     "hipaa-1996",
			Title:  "HIPAA",
			Text:   "Health insurance portability and accountability, protecting patient health information privacy.",
			Agency: "HHS",
			Date:   "1996-08-21",
		},
		{
			ID:     "section-230",
			Title:  "Section 230",
			Text:   "Protection for private blocking and screening of offensive material on internet platforms.",
			Agency: "FCC",
			Date:   "1996-02-08",
		},
	}
}

func TestStore_SearchRanksRelevantFirst(t *testing.T) {
	store := NewStore(NewLocalEmbedder(0))

	if err := store.Add(context.Background(), testDocs()...); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	results, err := store.Search(context.Background(), "cryptocurrency digital assets", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if results[0].Document.ID != "eo-14067" {
		t.Errorf("Expected eo-14067 ranked first, got %s", results[0].Document.ID)
	}
	if results[0].Relevance <= results[1].Relevance {
		t.Errorf("Expected descending relevance, got %.3f then %.3f", results[0].Relevance, results[1].Relevance)
	}
}

func TestStore_SearchTopK(t *testing.T) {
	store := NewStore(NewLocalEmbedder(0))

	if err := store.Add(context.Background(), testDocs()...); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	results, err := store.Search(context.Background(), "health privacy", 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("Expected topK to cap results at 2, got %d", len(results))
	}
}

func TestStore_SearchEmptyStore(t *testing.T) {
	store := NewStore(NewLocalEmbedder(0))

	results, err := store.Search(context.Background(), "anything", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results from empty store, got %d", len(results))
	}
}

func TestStore_Len(t *testing.T) {
	store := NewStore(NewLocalEmbedder(0))

	if store.Len() != 0 {
		t.Errorf("Expected empty store, got %d", store.Len())
	}
	if err := store.Add(context.Background(), testDocs()...); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if store.Len() != 3 {
		t.Errorf("Expected 3 documents, got %d", store.Len())
	}
}

func TestLocalEmbedder_Deterministic(t *testing.T) {
	e := NewLocalEmbedder(64)

	a, err := e.Embed(context.Background(), []string{"data privacy regulation"})
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	b, err := e.Embed(context.Background(), []string{"data privacy regulation"})
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	for i := range a[0] {
		if a[0][i] != b[0][i] {
			t.Fatalf("Expected identical vectors for identical text, differ at %d", i)
		}
	}
}

func TestLocalEmbedder_Normalized(t *testing.T) {
	e := NewLocalEmbedder(64)

	vecs, err := e.Embed(context.Background(), []string{"privacy privacy privacy enforcement"})
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	var sum float64
	for _, v := range vecs[0] {
		sum += float64(v) * float64(v)
	}
	if sum < 0.99 || sum > 1.01 {
		t.Errorf("Expected unit-length vector, squared norm %.4f", sum)
	}
}

func TestCosine(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	if got := cosine(a, a); got < 0.999 {
		t.Errorf("Expected self-similarity 1, got %.4f", got)
	}
	if got := cosine(a, b); got != 0 {
		t.Errorf("Expected orthogonal similarity 0, got %.4f", got)
	}
	if got := cosine(a, []float32{1, 0, 0}); got != 0 {
		t.Errorf("Expected 0 for mismatched lengths, got %.4f", got)
	}
	if got := cosine([]float32{0, 0}, []float32{0, 0}); got != 0 {
		t.Errorf("Expected 0 for zero vectors, got %.4f", got)
	}
}

func TestFormatResults(t *testing.T) {
	results := []model.SearchResult{
		{Document: testDocs()[0], Relevance: 0.91},
	}

	out := FormatResults("crypto", results)

	for _, want := range []string{
		"**Policy Search Results**",
		"Query: crypto",
		"1. Executive Order 14067 (relevance: 0.91)",
		"Agency: Executive Office of the President",
		"Date: 2022-03-09",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatResults_Empty(t *testing.T) {
	out := FormatResults("nothing", nil)

	if !strings.Contains(out, "No matching documents found.") {
		t.Errorf("Expected empty-result message:\n%s", out)
	}
}

func TestNewEmbedder_Factory(t *testing.T) {
	e, err := NewEmbedder(model.EmbeddingConfig{Provider: "local", Dimensions: 32})
	if err != nil {
		t.Fatalf("NewEmbedder failed: %v", err)
	}
	if e.Name() != "local" {
		t.Errorf("Expected local embedder, got %s", e.Name())
	}

	if _, err := NewEmbedder(model.EmbeddingConfig{Provider: "openai"}); err == nil {
		t.Error("Expected error for openai provider without API key")
	}

	if _, err := NewEmbedder(model.EmbeddingConfig{Provider: "bogus"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

package agent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ranacirrusgo/policynav/internal/ingest"
	"github.com/ranacirrusgo/policynav/internal/regapi"
	"github.com/ranacirrusgo/policynav/internal/search"
)

func seededStore(t *testing.T) *search.Store {
	t.Helper()
	store := search.NewStore(search.NewLocalEmbedder(0))
	if err := store.Add(context.Background(), ingest.SampleDocuments()...); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	return store
}

func fedRegTestClient(t *testing.T) (*regapi.FedRegClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":1,"results":[{"document_number":"2022-04876","title":"Ensuring Responsible Development of Digital Assets","publication_date":"2022-03-14"}]}`))
	}))
	return regapi.NewFedRegClient(srv.URL, "PolicyNavigator/1.0", 5*time.Second, nil, nil), srv
}

func TestAgent_RoutesStatusQueries(t *testing.T) {
	fedreg, srv := fedRegTestClient(t)
	defer srv.Close()

	a := New(seededStore(t), fedreg, nil)

	response, err := a.Query(context.Background(), "What is the status of Executive Order 14067?")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if !strings.Contains(response, "**Executive Order 14067 Status**") {
		t.Errorf("Expected Federal Register status section:\n%s", response)
	}
	if !strings.Contains(response, "**Policy Search Results**") {
		t.Errorf("Expected local search section alongside status:\n%s", response)
	}
}

func TestAgent_RoutesCaseLawQueries(t *testing.T) {
	courtlistener := regapi.NewCourtListenerClient("http://unused.invalid", "", "PolicyNavigator/1.0", time.Second, nil, nil)
	a := New(seededStore(t), nil, courtlistener)

	response, err := a.Query(context.Background(), "Are there any court cases about Section 230?")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if !strings.Contains(response, "**Case Law Results**") {
		t.Errorf("Expected case law section:\n%s", response)
	}
	if !strings.Contains(response, "**Policy Search Results**") {
		t.Errorf("Expected local search section:\n%s", response)
	}
}

func TestAgent_PlainQueriesUseLocalSearchOnly(t *testing.T) {
	fedreg, srv := fedRegTestClient(t)
	defer srv.Close()

	a := New(seededStore(t), fedreg, nil)

	response, err := a.Query(context.Background(), "data breach notification requirements")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if strings.Contains(response, "Executive Order") && strings.Contains(response, "Status") {
		t.Errorf("Plain query must not trigger status routing:\n%s", response)
	}
	if !strings.Contains(response, "**Policy Search Results**") {
		t.Errorf("Expected local search section:\n%s", response)
	}
	if !strings.Contains(response, "GDPR") {
		t.Errorf("Expected GDPR to rank for breach query:\n%s", response)
	}
}

func TestAgent_EmptyKnowledgeBase(t *testing.T) {
	a := New(search.NewStore(search.NewLocalEmbedder(0)), nil, nil)

	response, err := a.Query(context.Background(), "anything at all")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if !strings.Contains(response, "No relevant policy information found") {
		t.Errorf("Expected fallback message:\n%s", response)
	}
}

func TestAgent_History(t *testing.T) {
	a := New(seededStore(t), nil, nil)
	a.now = func() time.Time { return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC) }

	if _, err := a.Query(context.Background(), "health data privacy"); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if _, err := a.Query(context.Background(), "digital assets"); err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	history := a.History()
	if len(history) != 2 {
		t.Fatalf("Expected 2 exchanges, got %d", len(history))
	}
	if history[0].Query != "health data privacy" {
		t.Errorf("Expected first query preserved, got %q", history[0].Query)
	}
	if history[0].Response == "" {
		t.Error("Expected response recorded in history")
	}

	formatted := a.FormatHistory()
	for _, want := range []string{"[1] 2024-03-15 10:30:00", "Q: health data privacy", "[2]", "Q: digital assets"} {
		if !strings.Contains(formatted, want) {
			t.Errorf("History missing %q:\n%s", want, formatted)
		}
	}

	a.ClearHistory()
	if len(a.History()) != 0 {
		t.Error("Expected empty history after clear")
	}
	if !strings.Contains(a.FormatHistory(), "No conversation history.") {
		t.Error("Expected empty-history message")
	}
}

func TestEONumberExtraction(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"status of Executive Order 14067", "14067"},
		{"is EO 13985 still in effect", "13985"},
		{"E.O. 14110 status", "14110"},
	}

	for _, tt := range tests {
		m := eoNumberRe.FindStringSubmatch(tt.query)
		if m == nil {
			t.Errorf("%q: expected executive order number", tt.query)
			continue
		}
		if m[1] != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.query, tt.want, m[1])
		}
	}

	if eoNumberRe.FindStringSubmatch("general order processing rules") != nil {
		t.Error("Expected no match without an order number")
	}
}

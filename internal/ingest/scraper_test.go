package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ranacirrusgo/policynav/internal/model"
	"github.com/ranacirrusgo/policynav/internal/worker"
)

const testPage = `<html>
<head><title>EPA Clean Air Guidance</title></head>
<body>
<script>var tracking = true;</script>
<p>Facilities must monitor emissions quarterly.</p>
<ul><li>Reports are due within 30 days.</li></ul>
<style>p { color: red; }</style>
</body>
</html>`

func newTestScraper(timeout time.Duration) *Scraper {
	httpCfg := model.HTTPConfig{
		Timeout:      timeout,
		UserAgent:    "PolicyNavigator/1.0",
		MaxBodyBytes: 1 << 20,
	}
	return NewScraper(httpCfg, worker.NewLimiter(100, 10))
}

func TestScraper_Scrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			w.WriteHeader(http.StatusNotFound)
		case "/policies/clean-air.html":
			_, _ = w.Write([]byte(testPage))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	s := newTestScraper(5 * time.Second)

	doc, err := s.Scrape(context.Background(), srv.URL+"/policies/clean-air.html")
	if err != nil {
		t.Fatalf("Scrape failed: %v", err)
	}

	if doc.Title != "EPA Clean Air Guidance" {
		t.Errorf("Expected page title, got %q", doc.Title)
	}
	if !strings.Contains(doc.Text, "must monitor emissions") {
		t.Errorf("Expected paragraph text, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "due within 30 days") {
		t.Errorf("Expected list item text, got %q", doc.Text)
	}
	if strings.Contains(doc.Text, "tracking") || strings.Contains(doc.Text, "color: red") {
		t.Errorf("Expected script/style content to be skipped, got %q", doc.Text)
	}
	if doc.Source != srv.URL+"/policies/clean-air.html" {
		t.Errorf("Expected source URL, got %q", doc.Source)
	}
}

func TestScraper_RespectsRobotsDisallow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		_, _ = w.Write([]byte(testPage))
	}))
	defer srv.Close()

	s := newTestScraper(5 * time.Second)

	if _, err := s.Scrape(context.Background(), srv.URL+"/private/internal.html"); err == nil {
		t.Error("Expected error for robots-disallowed path")
	}

	if _, err := s.Scrape(context.Background(), srv.URL+"/public/open.html"); err != nil {
		t.Errorf("Expected allowed path to succeed, got %v", err)
	}
}

func TestScraper_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := newTestScraper(5 * time.Second)

	if _, err := s.Scrape(context.Background(), srv.URL+"/missing.html"); err == nil {
		t.Error("Expected error for non-2xx status")
	}
}

func TestExtractContent_NoTitle(t *testing.T) {
	title, text := extractContent("<html><body><p>Only a paragraph.</p></body></html>")

	if title != "" {
		t.Errorf("Expected empty title, got %q", title)
	}
	if text != "Only a paragraph." {
		t.Errorf("Expected paragraph text, got %q", text)
	}
}

func TestSubjectFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.epa.gov/laws/clean-air-act.html", "clean air act"},
		{"https://www.epa.gov/laws/lead_regulations", "lead regulations"},
		{"https://www.epa.gov/", "www.epa.gov"},
	}

	for _, tt := range tests {
		if got := subjectFromURL(tt.url); got != tt.want {
			t.Errorf("subjectFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestDocumentID(t *testing.T) {
	id := documentID("https://www.epa.gov/laws/clean-air-act/")

	if id != "www-epa-gov-laws-clean-air-act" {
		t.Errorf("Unexpected document ID %q", id)
	}
}

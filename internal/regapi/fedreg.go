// Package regapi provides clients for the public regulatory data
// APIs: the Federal Register and CourtListener.
package regapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ranacirrusgo/policynav/internal/cache"
	"github.com/ranacirrusgo/policynav/internal/worker"
)

// FedRegDocument is one document as returned by the Federal Register
// API.
type FedRegDocument struct {
	DocumentNumber  string `json:"document_number"`
	Title           string `json:"title"`
	Type            string `json:"type"`
	Abstract        string `json:"abstract"`
	PublicationDate string `json:"publication_date"`
	HTMLURL         string `json:"html_url"`
	ExecutiveOrder  int    `json:"executive_order_number,omitempty"`
}

type fedRegSearchResponse struct {
	Count   int              `json:"count"`
	Results []FedRegDocument `json:"results"`
}

// FedRegClient talks to the Federal Register REST API.
type FedRegClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	cache      cache.Cache
	limiter    *worker.Limiter
}

// NewFedRegClient creates a client. Cache and limiter may be nil.
func NewFedRegClient(baseURL, userAgent string, timeout time.Duration, c cache.Cache, limiter *worker.Limiter) *FedRegClient {
	return &FedRegClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		cache:      c,
		limiter:    limiter,
	}
}

// SearchDocuments searches Federal Register documents by term.
func (c *FedRegClient) SearchDocuments(ctx context.Context, term string, perPage int) ([]FedRegDocument, error) {
	if perPage <= 0 {
		perPage = 5
	}

	params := url.Values{}
	params.Set("conditions[term]", term)
	params.Set("per_page", fmt.Sprintf("%d", perPage))
	params.Set("order", "relevance")

	var resp fedRegSearchResponse
	if err := c.getJSON(ctx, c.baseURL+"/documents.json?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	return resp.Results, nil
}

// GetDocument fetches one document by its Federal Register document
// number.
func (c *FedRegClient) GetDocument(ctx context.Context, documentNumber string) (*FedRegDocument, error) {
	var doc FedRegDocument
	endpoint := fmt.Sprintf("%s/documents/%s.json", c.baseURL, url.PathEscape(documentNumber))
	if err := c.getJSON(ctx, endpoint, &doc); err != nil {
		return nil, fmt.Errorf("get document %s: %w", documentNumber, err)
	}

	return &doc, nil
}

// RecentRules returns final rules published in the last given number
// of days.
func (c *FedRegClient) RecentRules(ctx context.Context, days, perPage int) ([]FedRegDocument, error) {
	if days <= 0 {
		days = 7
	}
	if perPage <= 0 {
		perPage = 10
	}

	since := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	params := url.Values{}
	params.Set("conditions[type][]", "RULE")
	params.Set("conditions[publication_date][gte]", since)
	params.Set("per_page", fmt.Sprintf("%d", perPage))
	params.Set("order", "newest")

	var resp fedRegSearchResponse
	if err := c.getJSON(ctx, c.baseURL+"/documents.json?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("recent rules: %w", err)
	}

	return resp.Results, nil
}

// ExecutiveOrderStatus searches for an executive order by number and
// renders a short status report.
func (c *FedRegClient) ExecutiveOrderStatus(ctx context.Context, eoNumber string) (string, error) {
	docs, err := c.SearchDocuments(ctx, "executive order "+eoNumber, 5)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Executive Order %s Status**\n\n", eoNumber)

	if len(docs) == 0 {
		fmt.Fprintf(&b, "No Federal Register documents found for Executive Order %s.\n", eoNumber)
		return b.String(), nil
	}

	primary := docs[0]
	fmt.Fprintf(&b, "Title: %s\n", primary.Title)
	fmt.Fprintf(&b, "Published: %s\n", primary.PublicationDate)
	fmt.Fprintf(&b, "Status: Active (published in the Federal Register)\n")
	if primary.HTMLURL != "" {
		fmt.Fprintf(&b, "Source: %s\n", primary.HTMLURL)
	}

	if len(docs) > 1 {
		fmt.Fprintf(&b, "\nRelated documents:\n")
		for _, doc := range docs[1:] {
			fmt.Fprintf(&b, "- %s (%s)\n", doc.Title, doc.PublicationDate)
		}
	}

	return b.String(), nil
}

// getJSON performs a cached, rate-limited GET and decodes the JSON
// response into out.
func (c *FedRegClient) getJSON(ctx context.Context, fullURL string, out interface{}) error {
	key := cache.Key(fullURL)

	if c.cache != nil {
		if data, found := c.cache.Get(key); found {
			return json.Unmarshal(data, out)
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, fullURL); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	if c.cache != nil {
		_ = c.cache.Set(key, data, 0)
	}

	return nil
}

// FormatDocuments renders Federal Register documents as a list.
func FormatDocuments(heading string, docs []FedRegDocument) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s**\n\n", heading)

	if len(docs) == 0 {
		b.WriteString("No documents found.\n")
		return b.String()
	}

	for i, doc := range docs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, doc.Title)
		if doc.Type != "" {
			fmt.Fprintf(&b, "   Type: %s\n", doc.Type)
		}
		if doc.PublicationDate != "" {
			fmt.Fprintf(&b, "   Published: %s\n", doc.PublicationDate)
		}
		if doc.HTMLURL != "" {
			fmt.Fprintf(&b, "   %s\n", doc.HTMLURL)
		}
		b.WriteString("\n")
	}

	return b.String()
}

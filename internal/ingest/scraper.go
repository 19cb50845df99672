package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/ranacirrusgo/policynav/internal/model"
	"github.com/ranacirrusgo/policynav/internal/util"
	"github.com/ranacirrusgo/policynav/internal/worker"
)

// Scraper fetches policy pages from agency websites, honoring
// robots.txt and per-host rate limits.
type Scraper struct {
	httpClient *http.Client
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	userAgent  string
	maxBytes   int64
}

// NewScraper creates a scraper with the given HTTP behavior and rate
// limiter.
func NewScraper(httpCfg model.HTTPConfig, limiter *worker.Limiter) *Scraper {
	return &Scraper{
		httpClient: &http.Client{
			Timeout: httpCfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, httpCfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    util.NewRobotsChecker(util.NormalizeUserAgent(httpCfg.UserAgent), httpCfg.Timeout),
		limiter:   limiter,
		userAgent: httpCfg.UserAgent,
		maxBytes:  httpCfg.MaxBodyBytes,
	}
}

// Scrape fetches rawURL and converts the page into a policy document.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*model.Document, error) {
	allowed, crawlDelay, err := s.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	if s.limiter != nil {
		if err := s.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	title, text := extractContent(string(body))
	if title == "" {
		title = subjectFromURL(rawURL)
	}

	return &model.Document{
		ID:     documentID(rawURL),
		Title:  title,
		Text:   text,
		Type:   "web_page",
		Source: rawURL,
		Date:   time.Now().Format("2006-01-02"),
		Status: "active",
	}, nil
}

// extractContent pulls the page title and paragraph text out of HTML.
// Script and style subtrees are skipped.
func extractContent(rawHTML string) (title, text string) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", ""
	}

	var paragraphs []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "title":
				if title == "" {
					title = strings.TrimSpace(nodeText(n))
				}
			case "p", "li":
				if t := strings.TrimSpace(nodeText(n)); t != "" {
					paragraphs = append(paragraphs, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return title, strings.Join(paragraphs, " ")
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// subjectFromURL derives a readable title from the last path segment.
func subjectFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return parsed.Host
	}

	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]

	last = strings.ReplaceAll(last, "_", " ")
	last = strings.ReplaceAll(last, "-", " ")

	if idx := strings.LastIndex(last, "."); idx > 0 {
		last = last[:idx]
	}

	return last
}

// documentID builds a stable ID from the URL host and path.
func documentID(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	id := parsed.Host + strings.TrimRight(parsed.Path, "/")
	id = strings.ReplaceAll(id, "/", "-")
	id = strings.ReplaceAll(id, ".", "-")

	return strings.ToLower(id)
}

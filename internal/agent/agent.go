// Package agent answers policy questions by routing each query to the
// data sources it needs: the Federal Register for status questions,
// CourtListener for case law, and the local document index for
// everything.
package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/ranacirrusgo/policynav/internal/regapi"
	"github.com/ranacirrusgo/policynav/internal/search"
)

var (
	statusCues  = []string{"status", "still in effect", "in effect", "effective", "current", "active", "recent regulation"}
	caseLawCues = []string{"case", "court", "ruling", "lawsuit", "litigation", "sued", "opinion", "precedent"}

	eoNumberRe = regexp.MustCompile(`(?i)(?:executive\s+order|e\.?o\.?)\s*#?\s*(\d{4,5})`)
)

// Exchange is one question and answer in the conversation.
type Exchange struct {
	Query    string    `json:"query"`
	Response string    `json:"response"`
	At       time.Time `json:"at"`
}

// Agent routes queries and keeps the conversation history.
type Agent struct {
	store         *search.Store
	fedreg        *regapi.FedRegClient
	courtlistener *regapi.CourtListenerClient

	mu      sync.Mutex
	history []Exchange
	now     func() time.Time
}

// New creates an agent. The Federal Register and CourtListener clients
// are optional; routing skips sources that are not configured.
func New(store *search.Store, fedreg *regapi.FedRegClient, courtlistener *regapi.CourtListenerClient) *Agent {
	return &Agent{
		store:         store,
		fedreg:        fedreg,
		courtlistener: courtlistener,
		now:           time.Now,
	}
}

// Query answers one question and records it in the history.
func (a *Agent) Query(ctx context.Context, query string) (string, error) {
	var sections []string
	lower := strings.ToLower(query)

	if a.fedreg != nil && containsAny(lower, statusCues) {
		if section, err := a.answerStatus(ctx, query); err == nil && section != "" {
			sections = append(sections, section)
		}
	}

	if a.courtlistener != nil && containsAny(lower, caseLawCues) {
		cases, err := a.courtlistener.SearchCases(ctx, query, 3)
		if err == nil && len(cases) > 0 {
			sections = append(sections, regapi.FormatCases(query, cases))
		}
	}

	if a.store != nil && a.store.Len() > 0 {
		results, err := a.store.Search(ctx, query, 3)
		if err == nil && len(results) > 0 {
			sections = append(sections, search.FormatResults(query, results))
		}
	}

	if len(sections) == 0 {
		sections = append(sections, "No relevant policy information found. Try ingesting documents first or rephrasing the question.")
	}

	response := strings.Join(sections, "\n")

	a.mu.Lock()
	a.history = append(a.history, Exchange{
		Query:    query,
		Response: response,
		At:       a.now(),
	})
	a.mu.Unlock()

	return response, nil
}

func (a *Agent) answerStatus(ctx context.Context, query string) (string, error) {
	if m := eoNumberRe.FindStringSubmatch(query); m != nil {
		return a.fedreg.ExecutiveOrderStatus(ctx, m[1])
	}

	if strings.Contains(strings.ToLower(query), "recent") {
		docs, err := a.fedreg.RecentRules(ctx, 7, 5)
		if err != nil {
			return "", err
		}
		return regapi.FormatDocuments("Recent Regulations", docs), nil
	}

	docs, err := a.fedreg.SearchDocuments(ctx, query, 3)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", nil
	}
	return regapi.FormatDocuments("Federal Register Documents", docs), nil
}

// History returns a copy of the conversation so far.
func (a *Agent) History() []Exchange {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Exchange, len(a.history))
	copy(out, a.history)
	return out
}

// ClearHistory discards the conversation.
func (a *Agent) ClearHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = nil
}

// FormatHistory renders the conversation for terminal output.
func (a *Agent) FormatHistory() string {
	history := a.History()

	if len(history) == 0 {
		return "No conversation history.\n"
	}

	var b strings.Builder
	for i, ex := range history {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, ex.At.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&b, "Q: %s\n", ex.Query)
		fmt.Fprintf(&b, "A: %s\n\n", ex.Response)
	}
	return b.String()
}

func containsAny(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}

package analyze

import (
	"regexp"
	"strings"
	"time"

	"github.com/ranacirrusgo/policynav/internal/model"
)

// KeywordClass names a compliance trigger category.
type KeywordClass string

const (
	ClassMandatory  KeywordClass = "mandatory"
	ClassOptional   KeywordClass = "optional"
	ClassProhibited KeywordClass = "prohibited"
)

// triggerSet pairs a keyword class with its trigger phrases. The order
// of triggerSets in Analyzer.classes is the classification priority:
// the first class with a surviving match wins.
type triggerSet struct {
	class   KeywordClass
	phrases []string
}

// Analyzer scans policy document text for compliance requirements.
// It is a pure function of its input and safe for concurrent use.
type Analyzer struct {
	classes        []triggerSet
	penaltyPhrases []string

	deadlineRe  *regexp.Regexp
	percentRe   *regexp.Regexp
	dollarRe    *regexp.Regexp
	effectiveRe *regexp.Regexp
	wordRe      *regexp.Regexp

	now func() time.Time
}

// NewAnalyzer creates an analyzer with the standard trigger tables.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		classes: []triggerSet{
			{ClassMandatory, []string{"must", "shall", "required", "mandatory", "obligated", "compelled"}},
			{ClassOptional, []string{"may", "can", "could", "optional", "permitted", "allowed"}},
			{ClassProhibited, []string{"shall not", "must not", "cannot", "prohibited", "forbidden", "banned"}},
		},
		penaltyPhrases: []string{"penalty", "fine", "violation", "sanctions", "enforcement", "liability"},

		deadlineRe:  regexp.MustCompile(`within\s+(\d+)\s+(days?|months?|years?)`),
		percentRe:   regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`),
		dollarRe:    regexp.MustCompile(`\$\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
		effectiveRe: regexp.MustCompile(`(?i)effective\s+(?:on\s+)?(\w+\s+\d{1,2},?\s+\d{4})`),
		wordRe:      regexp.MustCompile(`\b\w+\b`),

		now: time.Now,
	}
}

// Analyze scans the document text and returns the categorized analysis.
// Empty or whitespace-only input yields an analysis with empty
// sequences, never an error.
func (a *Analyzer) Analyze(text, title string) *model.ComplianceAnalysis {
	analysis := &model.ComplianceAnalysis{
		DocumentTitle: title,
		AnalyzedAt:    a.now(),
	}

	for _, sentence := range splitSentences(text) {
		lower := strings.ToLower(sentence)

		switch class, ok := a.classify(lower); {
		case ok && class == ClassMandatory:
			analysis.MandatoryRequirements = append(analysis.MandatoryRequirements, sentence)
		case ok && class == ClassOptional:
			analysis.OptionalProvisions = append(analysis.OptionalProvisions, sentence)
		case ok && class == ClassProhibited:
			analysis.ProhibitedActions = append(analysis.ProhibitedActions, sentence)
		}

		if m := a.deadlineRe.FindStringSubmatch(lower); m != nil {
			analysis.Deadlines = append(analysis.Deadlines, model.DeadlineMatch{
				Text:     sentence,
				Duration: m[1] + " " + m[2],
			})
		}

		// Penalty tagging is orthogonal: a sentence can carry a primary
		// class and still be a penalty sentence.
		if containsTrigger(lower, a.penaltyPhrases) {
			analysis.Penalties = append(analysis.Penalties, sentence)
		}
	}

	analysis.Metrics = a.extractMetrics(text)
	return analysis
}

// classify assigns the lowercased sentence to at most one keyword
// class, testing classes in priority order.
func (a *Analyzer) classify(lower string) (KeywordClass, bool) {
	var matches []triggerMatch
	for _, set := range a.classes {
		matches = append(matches, findTriggers(lower, set.class, set.phrases)...)
	}

	for _, set := range a.classes {
		for _, m := range matches {
			if m.class == set.class && !suppressed(m, matches) {
				return set.class, true
			}
		}
	}
	return "", false
}

// triggerMatch is one trigger phrase occurrence within a sentence.
type triggerMatch struct {
	class  KeywordClass
	start  int
	length int
}

// findTriggers locates every occurrence of the phrases that begins at a
// word start. Matching at word starts keeps plural forms ("violations")
// while preventing triggers from firing mid-word ("can" in "applicant").
func findTriggers(lower string, class KeywordClass, phrases []string) []triggerMatch {
	var matches []triggerMatch
	for _, phrase := range phrases {
		for from := 0; ; {
			idx := strings.Index(lower[from:], phrase)
			if idx < 0 {
				break
			}
			start := from + idx
			if wordStart(lower, start) {
				matches = append(matches, triggerMatch{class: class, start: start, length: len(phrase)})
			}
			from = start + 1
		}
	}
	return matches
}

// suppressed reports whether a longer trigger of any class begins at
// the same offset. "shall" never fires inside "shall not" and "can"
// never fires inside "cannot".
func suppressed(m triggerMatch, all []triggerMatch) bool {
	for _, other := range all {
		if other.start == m.start && other.length > m.length {
			return true
		}
	}
	return false
}

// containsTrigger reports whether any phrase occurs at a word start.
func containsTrigger(lower string, phrases []string) bool {
	return len(findTriggers(lower, "", phrases)) > 0
}

func wordStart(s string, i int) bool {
	if i == 0 {
		return true
	}
	prev := s[i-1]
	return !(prev >= 'a' && prev <= 'z') && !(prev >= '0' && prev <= '9')
}

// extractMetrics scans the whole document text for numeric figures,
// preserving order of occurrence.
func (a *Analyzer) extractMetrics(text string) model.Metrics {
	var metrics model.Metrics

	for _, m := range a.percentRe.FindAllStringSubmatch(text, -1) {
		metrics.Percentages = append(metrics.Percentages, m[1]+"%")
	}
	for _, m := range a.dollarRe.FindAllStringSubmatch(text, -1) {
		metrics.DollarAmounts = append(metrics.DollarAmounts, "$"+m[1])
	}
	for _, m := range a.effectiveRe.FindAllStringSubmatch(text, -1) {
		metrics.EffectiveDates = append(metrics.EffectiveDates, m[1])
	}

	return metrics
}

// splitSentences splits text on terminal punctuation, trimming
// whitespace and discarding empty spans. A trailing span without
// terminal punctuation is still captured.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var sentences []string
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

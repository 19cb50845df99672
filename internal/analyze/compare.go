package analyze

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ranacirrusgo/policynav/internal/model"
)

const comparisonKeywordCap = 5

// Comparator compares two policy documents by their mandatory-language
// profiles. It reuses the analyzer's sentence splitting and
// classification.
type Comparator struct {
	analyzer *Analyzer
	now      func() time.Time
}

// NewComparator creates a comparator backed by a standard analyzer.
func NewComparator() *Comparator {
	return &Comparator{
		analyzer: NewAnalyzer(),
		now:      time.Now,
	}
}

// Profile computes the comparison inputs for one document: the set of
// distinct keyword tokens (words longer than 4 characters) drawn from
// sentences classified mandatory, and the complexity score
// sentence_count + 2 x unique keywords.
func (c *Comparator) Profile(text, title string) model.ComparisonProfile {
	sentences := splitSentences(text)

	keywords := make(map[string]struct{})
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		if class, ok := c.analyzer.classify(lower); !ok || class != ClassMandatory {
			continue
		}
		for _, word := range c.analyzer.wordRe.FindAllString(lower, -1) {
			if len(word) > 4 {
				keywords[word] = struct{}{}
			}
		}
	}

	return model.ComparisonProfile{
		Title:             title,
		MandatoryKeywords: sortedKeys(keywords),
		ComplexityScore:   len(sentences) + 2*len(keywords),
		SentenceCount:     len(sentences),
	}
}

// Compare renders a comparison report for two documents. The common
// keyword set is symmetric; the unique sets swap when the arguments do.
func (c *Comparator) Compare(textA, titleA, textB, titleB string) string {
	profileA := c.Profile(textA, titleA)
	profileB := c.Profile(textB, titleB)

	common := intersect(profileA.MandatoryKeywords, profileB.MandatoryKeywords)
	uniqueA := subtract(profileA.MandatoryKeywords, profileB.MandatoryKeywords)
	uniqueB := subtract(profileB.MandatoryKeywords, profileA.MandatoryKeywords)

	var b strings.Builder
	b.WriteString("**Policy Comparison Report**\n")
	fmt.Fprintf(&b, "Policy A: %s\n", titleA)
	fmt.Fprintf(&b, "Policy B: %s\n", titleB)
	fmt.Fprintf(&b, "Comparison Date: %s\n\n", c.now().Format("2006-01-02"))

	b.WriteString("**MANDATORY REQUIREMENTS COMPARISON:**\n")
	fmt.Fprintf(&b, "- Common requirements: %d (%s)\n", len(common), joinCapped(common, comparisonKeywordCap))
	fmt.Fprintf(&b, "- Unique to %s: %d (%s)\n", titleA, len(uniqueA), joinCapped(uniqueA, comparisonKeywordCap))
	fmt.Fprintf(&b, "- Unique to %s: %d (%s)\n\n", titleB, len(uniqueB), joinCapped(uniqueB, comparisonKeywordCap))

	b.WriteString("**COMPLEXITY ANALYSIS:**\n")
	fmt.Fprintf(&b, "- %s: %d complexity score\n", titleA, profileA.ComplexityScore)
	fmt.Fprintf(&b, "- %s: %d complexity score\n\n", titleB, profileB.ComplexityScore)

	switch {
	case profileA.ComplexityScore > profileB.ComplexityScore:
		fmt.Fprintf(&b, "📝 **RECOMMENDATION:** %s appears more complex and may require additional compliance resources.\n", titleA)
	case profileB.ComplexityScore > profileA.ComplexityScore:
		fmt.Fprintf(&b, "📝 **RECOMMENDATION:** %s appears more complex and may require additional compliance resources.\n", titleB)
	}

	return b.String()
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// intersect returns the sorted elements present in both slices.
func intersect(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, s := range b {
		inB[s] = struct{}{}
	}

	var out []string
	for _, s := range a {
		if _, ok := inB[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// subtract returns the sorted elements of a not present in b.
func subtract(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, s := range b {
		inB[s] = struct{}{}
	}

	var out []string
	for _, s := range a {
		if _, ok := inB[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

func joinCapped(values []string, limit int) string {
	if len(values) > limit {
		values = values[:limit]
	}
	return strings.Join(values, ", ")
}

package analyze

import (
	"fmt"
	"regexp"
	"strings"
)

const stakeholderDisplayCap = 3

// StakeholderExtractor groups sentences by the stakeholder nouns they
// mention. Grouping is keyed by the exact matched noun phrase, so one
// sentence can appear under several categories when it names several
// stakeholder types.
type StakeholderExtractor struct {
	patterns []*regexp.Regexp
}

// NewStakeholderExtractor creates an extractor with the standard
// stakeholder category patterns.
func NewStakeholderExtractor() *StakeholderExtractor {
	return &StakeholderExtractor{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(financial institutions?|banks?|credit unions?)`),
			regexp.MustCompile(`(agencies?|departments?|bureaus?)`),
			regexp.MustCompile(`(consumers?|individuals?|citizens?)`),
			regexp.MustCompile(`(businesses?|companies?|corporations?|entities?)`),
			regexp.MustCompile(`(providers?|services?|platforms?)`),
			regexp.MustCompile(`(regulators?|supervisors?|authorities?)`),
		},
	}
}

// Extract renders a grouped stakeholder report for the document text.
// Categories appear in first-seen order, at most three sentences each.
func (e *StakeholderExtractor) Extract(text string) string {
	var order []string
	groups := make(map[string][]string)

	for _, sentence := range splitSentences(text) {
		lower := strings.ToLower(sentence)
		for _, pattern := range e.patterns {
			for _, match := range pattern.FindAllString(lower, -1) {
				key := strings.TrimSpace(match)
				if _, seen := groups[key]; !seen {
					order = append(order, key)
				}
				groups[key] = append(groups[key], sentence)
			}
		}
	}

	var b strings.Builder
	b.WriteString("**Stakeholder Responsibility Analysis**\n\n")

	for _, key := range order {
		sentences := groups[key]
		if len(sentences) == 0 {
			continue
		}
		fmt.Fprintf(&b, "**%s:**\n", strings.ToUpper(key))
		for i, sentence := range sentences {
			if i >= stakeholderDisplayCap {
				break
			}
			fmt.Fprintf(&b, "%d. %s\n", i+1, truncate(sentence, sentenceCharBudget))
		}
		b.WriteString("\n")
	}

	return b.String()
}

package model

import "time"

// ComplianceAnalysis is the categorized result of scanning a single
// policy document. It is produced fresh per call and never persisted.
type ComplianceAnalysis struct {
	DocumentTitle string    `json:"document_title"`
	AnalyzedAt    time.Time `json:"analyzed_at"`

	MandatoryRequirements []string        `json:"mandatory_requirements"`
	OptionalProvisions    []string        `json:"optional_provisions"`
	ProhibitedActions     []string        `json:"prohibited_actions"`
	Deadlines             []DeadlineMatch `json:"deadlines"`
	Penalties             []string        `json:"penalties"`

	Metrics Metrics `json:"key_metrics"`
}

// DeadlineMatch is a sentence containing a "within N unit" temporal
// obligation, with the duration normalized to "<N> <unit>".
type DeadlineMatch struct {
	Text     string `json:"text"`
	Duration string `json:"duration"`
}

// Metrics holds numeric figures extracted from the whole document text,
// in order of occurrence.
type Metrics struct {
	Percentages    []string `json:"percentages,omitempty"`
	DollarAmounts  []string `json:"dollar_amounts,omitempty"`
	EffectiveDates []string `json:"effective_dates,omitempty"`
}

// Empty reports whether no metrics were extracted.
func (m Metrics) Empty() bool {
	return len(m.Percentages) == 0 && len(m.DollarAmounts) == 0 && len(m.EffectiveDates) == 0
}

// ComparisonProfile is the per-document input to a policy comparison:
// the distinct keyword tokens drawn from mandatory sentences and a
// heuristic complexity score (sentence count + 2 x unique keywords).
type ComparisonProfile struct {
	Title             string   `json:"title"`
	MandatoryKeywords []string `json:"mandatory_keywords"`
	ComplexityScore   int      `json:"complexity_score"`
	SentenceCount     int      `json:"sentence_count"`
}

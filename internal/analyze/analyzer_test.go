package analyze

import (
	"strings"
	"testing"
)

func TestAnalyzer_MandatoryWithDeadline(t *testing.T) {
	analyzer := NewAnalyzer()

	analysis := analyzer.Analyze("Companies must comply within 30 days.", "Test Policy")

	if len(analysis.MandatoryRequirements) != 1 {
		t.Fatalf("Expected 1 mandatory requirement, got %d", len(analysis.MandatoryRequirements))
	}
	if !strings.Contains(analysis.MandatoryRequirements[0], "must comply") {
		t.Errorf("Unexpected mandatory sentence: %q", analysis.MandatoryRequirements[0])
	}
	if len(analysis.Deadlines) != 1 {
		t.Fatalf("Expected 1 deadline, got %d", len(analysis.Deadlines))
	}
	if analysis.Deadlines[0].Duration != "30 days" {
		t.Errorf("Expected duration '30 days', got %q", analysis.Deadlines[0].Duration)
	}
	if len(analysis.ProhibitedActions) != 0 {
		t.Errorf("Expected no prohibited actions, got %d", len(analysis.ProhibitedActions))
	}
}

func TestAnalyzer_ShallNotIsProhibited(t *testing.T) {
	analyzer := NewAnalyzer()

	analysis := analyzer.Analyze("Entities shall not engage in prohibited transactions.", "")

	if len(analysis.ProhibitedActions) != 1 {
		t.Fatalf("Expected 1 prohibited action, got %d", len(analysis.ProhibitedActions))
	}
	if len(analysis.MandatoryRequirements) != 0 {
		t.Errorf("'shall not' must not trigger the mandatory 'shall' cue, got %v", analysis.MandatoryRequirements)
	}
}

func TestAnalyzer_ShallAloneIsMandatory(t *testing.T) {
	analyzer := NewAnalyzer()

	analysis := analyzer.Analyze("Entities shall report all transactions quarterly.", "")

	if len(analysis.MandatoryRequirements) != 1 {
		t.Fatalf("Expected 1 mandatory requirement, got %d", len(analysis.MandatoryRequirements))
	}
	if len(analysis.ProhibitedActions) != 0 {
		t.Errorf("Expected no prohibited actions, got %d", len(analysis.ProhibitedActions))
	}
}

func TestAnalyzer_MandatoryTakesPriority(t *testing.T) {
	analyzer := NewAnalyzer()

	// Both a mandatory and a prohibited cue in one sentence: mandatory
	// is tested first and wins.
	analysis := analyzer.Analyze("Brokers must disclose holdings and are forbidden from self-dealing.", "")

	if len(analysis.MandatoryRequirements) != 1 {
		t.Errorf("Expected sentence under mandatory, got %d mandatory", len(analysis.MandatoryRequirements))
	}
	if len(analysis.ProhibitedActions) != 0 {
		t.Errorf("Expected sentence not duplicated under prohibited, got %d", len(analysis.ProhibitedActions))
	}
}

func TestAnalyzer_ClassificationIsExclusive(t *testing.T) {
	analyzer := NewAnalyzer()

	text := `Financial institutions must implement anti-money laundering procedures within 180 days.
	Entities shall not engage in transactions with sanctioned individuals.
	Companies may voluntarily adopt enhanced due diligence measures.
	Violations may result in penalties up to $500,000 per incident.
	This regulation becomes effective on January 1, 2024.`

	analysis := analyzer.Analyze(text, "Sample AML Regulation")

	seen := make(map[string]string)
	record := func(class string, sentences []string) {
		for _, s := range sentences {
			if prev, ok := seen[s]; ok {
				t.Errorf("Sentence classified twice (%s and %s): %q", prev, class, s)
			}
			seen[s] = class
		}
	}
	record("mandatory", analysis.MandatoryRequirements)
	record("optional", analysis.OptionalProvisions)
	record("prohibited", analysis.ProhibitedActions)

	if len(analysis.MandatoryRequirements) != 1 {
		t.Errorf("Expected 1 mandatory requirement, got %d", len(analysis.MandatoryRequirements))
	}
	if len(analysis.ProhibitedActions) != 1 {
		t.Errorf("Expected 1 prohibited action, got %d", len(analysis.ProhibitedActions))
	}
	if len(analysis.OptionalProvisions) != 2 {
		t.Errorf("Expected 2 optional provisions, got %d", len(analysis.OptionalProvisions))
	}
	if len(analysis.Deadlines) != 1 {
		t.Errorf("Expected 1 deadline, got %d", len(analysis.Deadlines))
	}
}

func TestAnalyzer_PenaltyTaggingIsOrthogonal(t *testing.T) {
	analyzer := NewAnalyzer()

	analysis := analyzer.Analyze("Operators must pay a fine for each violation.", "")

	if len(analysis.MandatoryRequirements) != 1 {
		t.Errorf("Expected sentence under mandatory, got %d", len(analysis.MandatoryRequirements))
	}
	if len(analysis.Penalties) != 1 {
		t.Errorf("Expected sentence also tagged as penalty, got %d", len(analysis.Penalties))
	}
}

func TestAnalyzer_PenaltyPluralForms(t *testing.T) {
	analyzer := NewAnalyzer()

	analysis := analyzer.Analyze("Violations of this section carry sanctions.", "")

	if len(analysis.Penalties) != 1 {
		t.Fatalf("Expected penalty tag for plural keyword forms, got %d", len(analysis.Penalties))
	}
	total := len(analysis.MandatoryRequirements) + len(analysis.OptionalProvisions) + len(analysis.ProhibitedActions)
	if total != 0 {
		t.Errorf("Expected no primary classification, got %d", total)
	}
}

func TestAnalyzer_TriggersRequireWordStart(t *testing.T) {
	analyzer := NewAnalyzer()

	// "applicant" contains "can" mid-word and must not classify.
	analysis := analyzer.Analyze("The applicant filed the paperwork yesterday.", "")

	total := len(analysis.MandatoryRequirements) + len(analysis.OptionalProvisions) + len(analysis.ProhibitedActions)
	if total != 0 {
		t.Errorf("Expected no classification for mid-word trigger text, got %d", total)
	}
}

func TestAnalyzer_Metrics(t *testing.T) {
	analyzer := NewAnalyzer()

	text := "A fee of $10,000 applies. Interest accrues at 50%. The rule is effective on January 1, 2024."
	analysis := analyzer.Analyze(text, "")

	if len(analysis.Metrics.DollarAmounts) != 1 || analysis.Metrics.DollarAmounts[0] != "$10,000" {
		t.Errorf("Expected dollar_amounts [$10,000], got %v", analysis.Metrics.DollarAmounts)
	}
	if len(analysis.Metrics.Percentages) != 1 || analysis.Metrics.Percentages[0] != "50%" {
		t.Errorf("Expected percentages [50%%], got %v", analysis.Metrics.Percentages)
	}
	if len(analysis.Metrics.EffectiveDates) != 1 || analysis.Metrics.EffectiveDates[0] != "January 1, 2024" {
		t.Errorf("Expected effective_dates [January 1, 2024], got %v", analysis.Metrics.EffectiveDates)
	}
}

func TestAnalyzer_MetricsPreserveOrder(t *testing.T) {
	analyzer := NewAnalyzer()

	text := "Reserve 12.5% of assets, then 3% of income. Fines range from $1,000.50 to $25,000."
	analysis := analyzer.Analyze(text, "")

	wantPct := []string{"12.5%", "3%"}
	if len(analysis.Metrics.Percentages) != 2 {
		t.Fatalf("Expected 2 percentages, got %v", analysis.Metrics.Percentages)
	}
	for i, want := range wantPct {
		if analysis.Metrics.Percentages[i] != want {
			t.Errorf("Percentage %d: expected %q, got %q", i, want, analysis.Metrics.Percentages[i])
		}
	}

	wantUSD := []string{"$1,000.50", "$25,000"}
	if len(analysis.Metrics.DollarAmounts) != 2 {
		t.Fatalf("Expected 2 dollar amounts, got %v", analysis.Metrics.DollarAmounts)
	}
	for i, want := range wantUSD {
		if analysis.Metrics.DollarAmounts[i] != want {
			t.Errorf("Dollar amount %d: expected %q, got %q", i, want, analysis.Metrics.DollarAmounts[i])
		}
	}
}

func TestAnalyzer_DeadlineUnits(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		text string
		want string
	}{
		{"Report within 30 days.", "30 days"},
		{"Report within 1 day.", "1 day"},
		{"Renew within 6 months.", "6 months"},
		{"Review within 2 years.", "2 years"},
	}

	for _, tt := range tests {
		analysis := analyzer.Analyze(tt.text, "")
		if len(analysis.Deadlines) != 1 {
			t.Errorf("%q: expected 1 deadline, got %d", tt.text, len(analysis.Deadlines))
			continue
		}
		if analysis.Deadlines[0].Duration != tt.want {
			t.Errorf("%q: expected duration %q, got %q", tt.text, tt.want, analysis.Deadlines[0].Duration)
		}
	}
}

func TestAnalyzer_EmptyInput(t *testing.T) {
	analyzer := NewAnalyzer()

	for _, text := range []string{"", "   \n\t  "} {
		analysis := analyzer.Analyze(text, "Empty Doc")

		if len(analysis.MandatoryRequirements) != 0 || len(analysis.OptionalProvisions) != 0 ||
			len(analysis.ProhibitedActions) != 0 || len(analysis.Deadlines) != 0 || len(analysis.Penalties) != 0 {
			t.Errorf("Expected empty analysis for input %q", text)
		}
		if !analysis.Metrics.Empty() {
			t.Errorf("Expected empty metrics for input %q", text)
		}
	}
}

func TestSplitSentences_Basic(t *testing.T) {
	sentences := splitSentences("First rule applies here. Second rule follows! Third rule, maybe?")

	if len(sentences) != 3 {
		t.Fatalf("Expected 3 sentences, got %d: %v", len(sentences), sentences)
	}
	for _, s := range sentences {
		if s != strings.TrimSpace(s) {
			t.Errorf("Expected trimmed sentence, got %q", s)
		}
	}
}

func TestSplitSentences_TrailingWithoutPunctuation(t *testing.T) {
	sentences := splitSentences("Complete sentence. Trailing fragment without punctuation")

	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[1] != "Trailing fragment without punctuation" {
		t.Errorf("Expected trailing fragment to be captured, got %q", sentences[1])
	}
}

func TestSplitSentences_EmptySpansDiscarded(t *testing.T) {
	sentences := splitSentences("One... two!!! ... three")

	for _, s := range sentences {
		if s == "" {
			t.Error("Expected no empty sentences")
		}
	}
	if len(sentences) != 3 {
		t.Errorf("Expected 3 sentences, got %d: %v", len(sentences), sentences)
	}
}

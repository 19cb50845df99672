package analyze

import (
	"strings"
	"testing"
)

func TestStakeholderExtractor_Basic(t *testing.T) {
	e := NewStakeholderExtractor()

	text := "Banks must verify customer identity. Agencies may audit banks quarterly. Consumers can request copies."
	report := e.Extract(text)

	for _, want := range []string{
		"**Stakeholder Responsibility Analysis**",
		"**BANKS:**",
		"**AGENCIES:**",
		"**CONSUMERS:**",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("Report missing %q:\n%s", want, report)
		}
	}
}

func TestStakeholderExtractor_SentenceInMultipleCategories(t *testing.T) {
	e := NewStakeholderExtractor()

	report := e.Extract("Agencies may audit banks quarterly.")

	// One sentence naming two stakeholder types appears under both.
	bankCount := strings.Count(report, "Agencies may audit banks quarterly")
	if bankCount != 2 {
		t.Errorf("Expected sentence under 2 categories, found %d occurrences:\n%s", bankCount, report)
	}
}

func TestStakeholderExtractor_FirstSeenOrder(t *testing.T) {
	e := NewStakeholderExtractor()

	report := e.Extract("Consumers file complaints. Banks respond to consumers.")

	consumersIdx := strings.Index(report, "**CONSUMERS:**")
	banksIdx := strings.Index(report, "**BANKS:**")
	if consumersIdx < 0 || banksIdx < 0 {
		t.Fatalf("Expected both categories:\n%s", report)
	}
	if consumersIdx > banksIdx {
		t.Error("Expected categories in first-seen order")
	}
}

func TestStakeholderExtractor_DisplayCap(t *testing.T) {
	e := NewStakeholderExtractor()

	text := "Banks open accounts. Banks close accounts. Banks report balances. Banks issue cards."
	report := e.Extract(text)

	if strings.Contains(report, "4. ") {
		t.Errorf("Expected at most 3 sentences per category:\n%s", report)
	}
	if !strings.Contains(report, "3. ") {
		t.Errorf("Expected 3 sentences listed:\n%s", report)
	}
}

func TestStakeholderExtractor_SingularAndPlural(t *testing.T) {
	e := NewStakeholderExtractor()

	report := e.Extract("Each provider maintains records. All providers submit reports.")

	// Singular and plural forms are distinct category keys.
	if !strings.Contains(report, "**PROVIDER:**") {
		t.Errorf("Expected PROVIDER category:\n%s", report)
	}
	if !strings.Contains(report, "**PROVIDERS:**") {
		t.Errorf("Expected PROVIDERS category:\n%s", report)
	}
}

func TestStakeholderExtractor_Empty(t *testing.T) {
	e := NewStakeholderExtractor()

	report := e.Extract("")

	if !strings.Contains(report, "**Stakeholder Responsibility Analysis**") {
		t.Errorf("Expected report header even for empty input:\n%s", report)
	}
	if strings.Contains(report, "1. ") {
		t.Errorf("Expected no category entries for empty input:\n%s", report)
	}
}

package analyze

import (
	"fmt"
	"strings"

	"github.com/ranacirrusgo/policynav/internal/model"
)

// Display limits for the compliance report. Truncation is a
// presentation concern only: the counts in section headers and the
// summary always reflect the full, untruncated sequences.
const (
	mandatoryDisplayCap = 5
	defaultDisplayCap   = 3
	sentenceCharBudget  = 200
	deadlineCharBudget  = 150
	metricValueCap      = 5
)

// FormatReport renders a ComplianceAnalysis as a human-readable report.
// Output is byte-identical for identical input except for the analysis
// timestamp.
func FormatReport(analysis *model.ComplianceAnalysis) string {
	var b strings.Builder

	b.WriteString("**Policy Compliance Analysis Report**\n")
	title := analysis.DocumentTitle
	if title == "" {
		title = "Untitled Document"
	}
	fmt.Fprintf(&b, "Document: %s\n", title)
	fmt.Fprintf(&b, "Analysis Date: %s\n\n", analysis.AnalyzedAt.Format("2006-01-02 15:04:05"))

	writeListSection(&b, "🔴 MANDATORY REQUIREMENTS", analysis.MandatoryRequirements, mandatoryDisplayCap, sentenceCharBudget)
	writeDeadlineSection(&b, analysis.Deadlines)
	writeListSection(&b, "🚫 PROHIBITED ACTIONS", analysis.ProhibitedActions, defaultDisplayCap, sentenceCharBudget)
	writeListSection(&b, "⚖️ PENALTIES & ENFORCEMENT", analysis.Penalties, defaultDisplayCap, sentenceCharBudget)
	writeListSection(&b, "🟡 OPTIONAL PROVISIONS", analysis.OptionalProvisions, defaultDisplayCap, sentenceCharBudget)
	writeMetricsSection(&b, analysis.Metrics)

	b.WriteString("**📋 COMPLIANCE SUMMARY:**\n")
	fmt.Fprintf(&b, "- %d mandatory requirements identified\n", len(analysis.MandatoryRequirements))
	fmt.Fprintf(&b, "- %d critical deadlines found\n", len(analysis.Deadlines))
	fmt.Fprintf(&b, "- %d penalty provisions noted\n", len(analysis.Penalties))

	if len(analysis.MandatoryRequirements) > 0 || len(analysis.Deadlines) > 0 {
		b.WriteString("\n⚠️ **RECOMMENDATION:** Review all mandatory requirements and deadlines carefully. " +
			"Consider creating a compliance checklist and calendar reminders for critical dates.")
	}

	return b.String()
}

func writeListSection(b *strings.Builder, header string, items []string, displayCap, charBudget int) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(b, "**%s (%d):**\n", header, len(items))
	for i, item := range items {
		if i >= displayCap {
			break
		}
		fmt.Fprintf(b, "%d. %s\n", i+1, truncate(item, charBudget))
	}
	if len(items) > displayCap {
		fmt.Fprintf(b, "... and %d more\n", len(items)-displayCap)
	}
	b.WriteString("\n")
}

func writeDeadlineSection(b *strings.Builder, deadlines []model.DeadlineMatch) {
	if len(deadlines) == 0 {
		return
	}

	fmt.Fprintf(b, "**⏰ CRITICAL DEADLINES (%d):**\n", len(deadlines))
	for i, d := range deadlines {
		if i >= defaultDisplayCap {
			break
		}
		fmt.Fprintf(b, "%d. %s - %s\n", i+1, d.Duration, truncate(d.Text, deadlineCharBudget))
	}
	if len(deadlines) > defaultDisplayCap {
		fmt.Fprintf(b, "... and %d more\n", len(deadlines)-defaultDisplayCap)
	}
	b.WriteString("\n")
}

func writeMetricsSection(b *strings.Builder, metrics model.Metrics) {
	if metrics.Empty() {
		return
	}

	b.WriteString("**📊 KEY METRICS:**\n")
	writeMetricLine(b, "Percentages", metrics.Percentages)
	writeMetricLine(b, "Dollar Amounts", metrics.DollarAmounts)
	writeMetricLine(b, "Effective Dates", metrics.EffectiveDates)
	b.WriteString("\n")
}

func writeMetricLine(b *strings.Builder, name string, values []string) {
	if len(values) == 0 {
		return
	}
	if len(values) > metricValueCap {
		values = values[:metricValueCap]
	}
	fmt.Fprintf(b, "- %s: %s\n", name, strings.Join(values, ", "))
}

// truncate shortens s to at most limit runes, appending an ellipsis
// marker when anything was cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

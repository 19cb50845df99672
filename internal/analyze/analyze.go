// Package analyze implements the rule-based compliance analysis core:
// sentence classification into mandatory, optional, and prohibited
// obligations, deadline and penalty tagging, numeric metric extraction,
// policy comparison, and stakeholder grouping. Everything here is a
// pure function of in-memory text with no I/O.
package analyze

// AnalyzeCompliance analyzes a policy document and returns the full
// formatted compliance report.
func AnalyzeCompliance(documentText, documentTitle string) string {
	return FormatReport(NewAnalyzer().Analyze(documentText, documentTitle))
}

// ComparePolicies compares two policy documents and returns a formatted
// comparison report.
func ComparePolicies(textA, titleA, textB, titleB string) string {
	return NewComparator().Compare(textA, titleA, textB, titleB)
}

// ExtractStakeholders returns a formatted stakeholder responsibility
// report for a policy document.
func ExtractStakeholders(documentText string) string {
	return NewStakeholderExtractor().Extract(documentText)
}

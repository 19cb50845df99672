package model

// Document represents a policy or regulation document in the knowledge base.
type Document struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Date   string `json:"date,omitempty"`
	Status string `json:"status,omitempty"`
	Type   string `json:"type,omitempty"`
	Agency string `json:"agency,omitempty"`

	ComplianceRequirements []string `json:"compliance_requirements,omitempty"`

	Source string `json:"source,omitempty"` // where the document was ingested from
}

// SearchResult is one ranked hit from the document search index.
type SearchResult struct {
	Document  Document `json:"document"`
	Relevance float64  `json:"relevance_score"` // cosine similarity, higher is better
}

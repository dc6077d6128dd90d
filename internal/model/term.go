package model

// Priority ranks how much a detected term matters to the bid.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Term is a static catalog entry: a domain keyword tracked for detection.
// Terms are loaded once at process start and never mutated.
type Term struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
	Patterns []string `json:"patterns,omitempty"` // surface variants beyond Name
}

// TermMatch is a single detection of a catalog term in a document.
// Instances are immutable after creation and always carry provenance.
type TermMatch struct {
	Term           string       `json:"term"`
	Category       string       `json:"category"`
	Priority       Priority     `json:"priority"`
	Context        string       `json:"context"`
	PageNumber     int          `json:"page_number"`
	SourceDocument DocumentType `json:"source_document"`
	Confidence     float64      `json:"confidence"`
}

// ExtractedQuantity is a numeric measurement found in document text.
// Instances are immutable after creation and always carry provenance.
type ExtractedQuantity struct {
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Context string  `json:"context"`
	// Offset is the byte index of the match within its page text.
	Offset         int          `json:"offset"`
	PageNumber     int          `json:"page_number"`
	SourceDocument DocumentType `json:"source_document"`
	Confidence     float64      `json:"confidence"`
}

package model

// DocumentAnalysisResult holds everything detected in a single document.
// It is created once per analyzed document and read-only afterwards.
type DocumentAnalysisResult struct {
	DocumentName string              `json:"document_name"`
	DocumentType DocumentType        `json:"document_type"`
	PageCount    int                 `json:"page_count"`
	Terms        []TermMatch         `json:"terms"`
	Quantities   []ExtractedQuantity `json:"quantities"`
	Alerts       []Alert             `json:"alerts,omitempty"`
	TextQuality  float64             `json:"text_quality"` // 0.0-1.0 extraction quality
}

// QuantityVariance records a cross-document quantity comparison for a term.
type QuantityVariance struct {
	Official    float64 `json:"official"` // bid-form (or highest-precedence) quantity
	Derived     float64 `json:"derived"`  // quantity derived from other documents
	Variance    float64 `json:"variance"` // |a-b| / max(a,b)
	Discrepancy bool    `json:"discrepancy"`
}

// CrossReferenceResult merges the analyses of a full document set.
// It is the sole input to downstream product matching and pricing.
type CrossReferenceResult struct {
	Terms            []TermMatch                 `json:"terms"`
	Quantities       []ExtractedQuantity         `json:"quantities"`
	QuantityVariance map[string]QuantityVariance `json:"quantity_variance"`
	ConsistencyScore float64                     `json:"consistency_score"`
	LowConfidence    bool                        `json:"low_confidence"`
	DocumentTypes    []DocumentType              `json:"document_types"`
	Alerts           []Alert                     `json:"alerts,omitempty"`
}

// HasDocumentType reports whether a document of the given type contributed
// to this result.
func (r *CrossReferenceResult) HasDocumentType(dt DocumentType) bool {
	for _, t := range r.DocumentTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// TermsBySource returns the matches for a term grouped by document type.
func (r *CrossReferenceResult) TermsBySource(term string) map[DocumentType][]TermMatch {
	out := make(map[DocumentType][]TermMatch)
	for _, m := range r.Terms {
		if m.Term == term {
			out[m.SourceDocument] = append(out[m.SourceDocument], m)
		}
	}
	return out
}

package model

import "github.com/rotisserie/eris"

// DocumentType identifies the role a document plays in a bid package.
type DocumentType string

const (
	DocSpecifications DocumentType = "specifications"
	DocBidForms       DocumentType = "bid_forms"
	DocPlans          DocumentType = "construction_plans"
	DocSupplemental   DocumentType = "supplemental"
)

// AllDocumentTypes lists every supported document type, most authoritative
// for detection confidence first.
var AllDocumentTypes = []DocumentType{
	DocSpecifications, DocBidForms, DocPlans, DocSupplemental,
}

// ParseDocumentType converts a string into a DocumentType.
func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case DocSpecifications, DocBidForms, DocPlans, DocSupplemental:
		return DocumentType(s), nil
	}
	return "", eris.Errorf("model: unknown document type %q", s)
}

// Valid reports whether the document type is one of the supported values.
func (d DocumentType) Valid() bool {
	_, err := ParseDocumentType(string(d))
	return err == nil
}

// DocumentText is the input boundary from the PDF-text-extraction
// collaborator: one entry per document, pages already reduced to plain text.
type DocumentText struct {
	Name  string       `json:"name"`
	Type  DocumentType `json:"type"`
	Pages []string     `json:"pages"`
}

// PageCount returns the number of extracted pages.
func (d DocumentText) PageCount() int { return len(d.Pages) }

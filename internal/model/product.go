package model

// MatchQuality bands a product match score.
type MatchQuality string

const (
	MatchHigh   MatchQuality = "high"
	MatchMedium MatchQuality = "medium"
	MatchLow    MatchQuality = "low"
)

// CatalogProduct is a read-only product record from the catalog collaborator.
type CatalogProduct struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Category     string   `json:"category" yaml:"category"`
	Keywords     []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Price        *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	Supplier     string   `json:"supplier,omitempty" yaml:"supplier,omitempty"`
	Availability string   `json:"availability,omitempty" yaml:"availability,omitempty"`
}

// ProductCandidate is one ranked catalog match for a detected term.
// Candidates are produced fresh per match call and never persisted here.
type ProductCandidate struct {
	ProductID      string       `json:"product_id"`
	Name           string       `json:"name"`
	Category       string       `json:"category"`
	MatchScore     float64      `json:"match_score"`
	Quality        MatchQuality `json:"quality"`
	Price          *float64     `json:"price,omitempty"`
	EstimatedPrice *float64     `json:"estimated_price,omitempty"`
	Supplier       string       `json:"supplier,omitempty"`
	Availability   string       `json:"availability,omitempty"`
	MatchReason    string       `json:"match_reason,omitempty"`
}

// UnitPrice returns the candidate's actual price when known, otherwise the
// estimated price, otherwise zero with ok=false.
func (p ProductCandidate) UnitPrice() (float64, bool) {
	if p.Price != nil {
		return *p.Price, true
	}
	if p.EstimatedPrice != nil {
		return *p.EstimatedPrice, true
	}
	return 0, false
}

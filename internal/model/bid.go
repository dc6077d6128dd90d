package model

import "time"

// BidLineItem is one priced row of a bid. Quantity, price, and waste fields
// are fixed at creation; the item is immutable afterwards.
type BidLineItem struct {
	ItemNumber       string             `json:"item_number"`
	Description      string             `json:"description"`
	SourceTerm       string             `json:"source_term"`
	Quantity         float64            `json:"quantity"`
	Unit             string             `json:"unit"`
	UnitPrice        float64            `json:"unit_price"`
	TotalPrice       float64            `json:"total_price"` // quantity * unit_price at creation
	WasteFactor      float64            `json:"waste_factor"`
	MarkupPercentage float64            `json:"markup_percentage"`
	ProductMatches   []ProductCandidate `json:"product_matches,omitempty"`
	SourceDocuments  []DocumentType     `json:"source_documents,omitempty"`
	CrossReferences  []string           `json:"cross_references,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	Confidence       float64            `json:"confidence"`
}

// BestMatchQuality returns the quality of the top product match, or
// MatchLow when the item has no matches.
func (li BidLineItem) BestMatchQuality() MatchQuality {
	if len(li.ProductMatches) == 0 {
		return MatchLow
	}
	return li.ProductMatches[0].Quality
}

// PricingSummary aggregates a line-item list. It is always recomputed in
// full, never partially updated.
type PricingSummary struct {
	Subtotal               float64 `json:"subtotal"`
	MarkupAmount           float64 `json:"markup_amount"`
	WasteAdjustments       float64 `json:"waste_adjustments"`
	DeliveryFee            float64 `json:"delivery_fee"`
	Total                  float64 `json:"total"`
	LineItemCount          int     `json:"line_item_count"`
	HighPriorityItems      int     `json:"high_priority_items"`
	EstimatedMaterialsCost float64 `json:"estimated_materials_cost"`
	EstimatedLaborCost     float64 `json:"estimated_labor_cost"`
}

// ManualReviewItem flags a line item or term an estimator should verify.
type ManualReviewItem struct {
	Term    string `json:"term"`
	Reason  string `json:"reason"`
	Details string `json:"details,omitempty"`
}

// ConfidenceReport summarizes how much of the bid is trustworthy.
type ConfidenceReport struct {
	OverallConfidence float64                  `json:"overall_confidence"`
	DocumentCoverage  map[DocumentType]float64 `json:"document_coverage"`
	Recommendations   []string                 `json:"recommendations,omitempty"`
	ManualReviewItems []ManualReviewItem       `json:"manual_review_items,omitempty"`
}

// LumberTakeoff is the supplementary lumber requirement estimate derived
// from formwork quantities.
type LumberTakeoff struct {
	FormworkArea      float64            `json:"formwork_area"`
	TotalBoardFeet    float64            `json:"total_board_feet"`
	PlywoodSheets     float64            `json:"plywood_sheets"`
	DimensionalLumber map[string]float64 `json:"dimensional_lumber,omitempty"`
	WasteFactor       float64            `json:"waste_factor"`
	ReuseFactor       float64            `json:"reuse_factor"`
	EstimatedCost     float64            `json:"estimated_cost"`
}

// AnalysisSummary is the primitive-only analysis block embedded in a
// serialized bid: terms, quantities, and alerts with provenance.
type AnalysisSummary struct {
	Terms            []TermMatch         `json:"terms"`
	Quantities       []ExtractedQuantity `json:"quantities"`
	Alerts           []Alert             `json:"alerts,omitempty"`
	ConsistencyScore float64             `json:"consistency_score"`
}

// Bid is the stable interchange record handed to report/export
// collaborators. Every field uses only primitive or semantic types.
type Bid struct {
	RunID            string           `json:"run_id"`
	ProjectName      string           `json:"project_name"`
	ProjectNumber    string           `json:"project_number"`
	GeneratedAt      time.Time        `json:"generated_at"`
	MarkupPercentage float64          `json:"markup_percentage"`
	LineItems        []BidLineItem    `json:"line_items"`
	PricingSummary   PricingSummary   `json:"pricing_summary"`
	ConfidenceReport ConfidenceReport `json:"confidence_report"`
	Analysis         AnalysisSummary  `json:"caltrans_analysis"`
	LumberTakeoff    *LumberTakeoff   `json:"lumber_takeoff,omitempty"`
}

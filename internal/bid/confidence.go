package bid

import (
	"fmt"
	"sort"

	"github.com/pace-estimating/pace-cli/internal/model"
)

// reviewQuantityThresholds flags line-item quantities large enough to
// warrant a human look before the bid goes out.
var reviewQuantityThresholds = map[string]float64{
	"SQFT": 10000,
	"LF":   5000,
	"CY":   1000,
	"EA":   500,
	"TON":  100,
	"GAL":  10000,
	"LB":   50000,
}

const defaultReviewThreshold = 1000

// lowConfidenceItem marks line items whose detection confidence is too weak
// to price without review.
const lowConfidenceItem = 0.5

// GenerateConfidenceReport summarizes how trustworthy the bid is: per
// document-type coverage, items needing manual review, and free-text
// recommendations.
func (e *Engine) GenerateConfidenceReport(xref *model.CrossReferenceResult, items []model.BidLineItem) model.ConfidenceReport {
	report := model.ConfidenceReport{
		DocumentCoverage: documentCoverage(xref),
	}

	for _, item := range items {
		if len(item.ProductMatches) == 0 {
			report.ManualReviewItems = append(report.ManualReviewItems, model.ManualReviewItem{
				Term:    item.SourceTerm,
				Reason:  "no product match",
				Details: "no catalog candidate found; unit price is zero pending manual pricing",
			})
		}

		threshold, ok := reviewQuantityThresholds[item.Unit]
		if !ok {
			threshold = defaultReviewThreshold
		}
		if item.Quantity > threshold {
			report.ManualReviewItems = append(report.ManualReviewItems, model.ManualReviewItem{
				Term:    item.SourceTerm,
				Reason:  "large quantity",
				Details: fmt.Sprintf("%.0f %s exceeds review threshold %.0f %s", item.Quantity, item.Unit, threshold, item.Unit),
			})
		}

		if item.Confidence < lowConfidenceItem {
			report.ManualReviewItems = append(report.ManualReviewItems, model.ManualReviewItem{
				Term:    item.SourceTerm,
				Reason:  "low detection confidence",
				Details: fmt.Sprintf("confidence %.2f", item.Confidence),
			})
		}
	}

	// Terms that produced no line item must still surface here; dropping a
	// detected term silently is never allowed.
	priced := make(map[string]bool, len(items))
	for _, item := range items {
		priced[item.SourceTerm] = true
	}
	for _, tm := range distinctTerms(xref.Terms) {
		if priced[tm.Term] {
			continue
		}
		report.ManualReviewItems = append(report.ManualReviewItems, model.ManualReviewItem{
			Term:    tm.Term,
			Reason:  "no resolvable quantity",
			Details: "term detected but no quantity resolved; omitted from line items pending manual takeoff",
		})
	}

	report.Recommendations = recommendations(xref, report)
	report.OverallConfidence = overallConfidence(xref, items)
	return report
}

// documentCoverage is, per document type, the fraction of distinct terms
// with at least one match sourced from that type.
func documentCoverage(xref *model.CrossReferenceResult) map[model.DocumentType]float64 {
	termsByType := make(map[model.DocumentType]map[string]bool)
	allTerms := make(map[string]bool)

	for _, m := range xref.Terms {
		allTerms[m.Term] = true
		if termsByType[m.SourceDocument] == nil {
			termsByType[m.SourceDocument] = make(map[string]bool)
		}
		termsByType[m.SourceDocument][m.Term] = true
	}

	coverage := make(map[model.DocumentType]float64, len(xref.DocumentTypes))
	for _, dt := range xref.DocumentTypes {
		if len(allTerms) == 0 {
			coverage[dt] = 0
			continue
		}
		coverage[dt] = float64(len(termsByType[dt])) / float64(len(allTerms))
	}
	return coverage
}

// recommendations applies a small rule set over the cross-reference result
// and the collected review items.
func recommendations(xref *model.CrossReferenceResult, report model.ConfidenceReport) []string {
	var recs []string

	for _, name := range sortedVarianceTerms(xref) {
		v := xref.QuantityVariance[name]
		if v.Discrepancy {
			recs = append(recs, fmt.Sprintf(
				"Review quantity discrepancy for %s: official %.1f vs derived %.1f", name, v.Official, v.Derived))
		}
	}

	if xref.LowConfidence {
		recs = append(recs, "Cross-document corroboration is weak; verify quantities against the bid forms directly")
	}
	if !xref.HasDocumentType(model.DocBidForms) {
		recs = append(recs, "No bid forms were provided; all quantities are derived rather than official")
	}
	if len(report.ManualReviewItems) > 0 {
		recs = append(recs, fmt.Sprintf("%d line items require manual review before submission", len(report.ManualReviewItems)))
	}
	return recs
}

// sortedVarianceTerms keeps recommendation order stable across runs.
func sortedVarianceTerms(xref *model.CrossReferenceResult) []string {
	names := make([]string, 0, len(xref.QuantityVariance))
	for name := range xref.QuantityVariance {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// overallConfidence blends mean line-item confidence with the
// cross-document consistency score.
func overallConfidence(xref *model.CrossReferenceResult, items []model.BidLineItem) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, item := range items {
		sum += item.Confidence
	}
	mean := sum / float64(len(items))

	score := (mean + xref.ConsistencyScore) / 2
	if score > 1 {
		return 1
	}
	return score
}

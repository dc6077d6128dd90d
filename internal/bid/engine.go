// Package bid converts cross-referenced findings into priced line items,
// pricing summaries, and confidence reports.
package bid

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pace-estimating/pace-cli/internal/config"
	"github.com/pace-estimating/pace-cli/internal/match"
	"github.com/pace-estimating/pace-cli/internal/model"
)

// Engine prices a cross-referenced finding set against a product catalog.
type Engine struct {
	cfg     config.BidConfig
	matcher *match.Matcher
}

// New creates an Engine with the given pricing configuration and matcher.
func New(cfg config.BidConfig, matcher *match.Matcher) *Engine {
	return &Engine{cfg: cfg, matcher: matcher}
}

// Generate assembles the complete bid: line items, pricing summary,
// confidence report, and the lumber takeoff supplement.
func (e *Engine) Generate(projectName, projectNumber string, xref *model.CrossReferenceResult) (*model.Bid, error) {
	if xref == nil {
		return nil, eris.New("bid: nil cross-reference result")
	}

	items := e.GenerateLineItems(xref)
	summary := e.CalculatePricingSummary(items)
	report := e.GenerateConfidenceReport(xref, items)
	takeoff := LumberTakeoffFrom(xref)

	b := &model.Bid{
		RunID:            uuid.NewString(),
		ProjectName:      projectName,
		ProjectNumber:    projectNumber,
		GeneratedAt:      time.Now().UTC(),
		MarkupPercentage: e.cfg.MarkupPercentage,
		LineItems:        items,
		PricingSummary:   summary,
		ConfidenceReport: report,
		Analysis: model.AnalysisSummary{
			Terms:            xref.Terms,
			Quantities:       xref.Quantities,
			Alerts:           xref.Alerts,
			ConsistencyScore: xref.ConsistencyScore,
		},
		LumberTakeoff: takeoff,
	}

	zap.L().Info("bid: generated",
		zap.String("run_id", b.RunID),
		zap.String("project", projectName),
		zap.Int("line_items", len(items)),
		zap.Float64("total", summary.Total),
	)
	return b, nil
}

// GenerateLineItems produces one line item per detected term. Terms whose
// quantity resolves to zero are skipped here and surfaced as manual review
// items by GenerateConfidenceReport; the bid is always best-effort.
func (e *Engine) GenerateLineItems(xref *model.CrossReferenceResult) []model.BidLineItem {
	var items []model.BidLineItem
	itemNumber := 1

	for _, tm := range distinctTerms(xref.Terms) {
		quantity := e.resolveQuantity(tm.Term, xref)
		if quantity <= 0 {
			zap.L().Warn("bid: term skipped, no resolvable quantity",
				zap.String("term", tm.Term))
			continue
		}

		products := e.matcher.Candidates(tm.Term, tm.Category)

		// A term with no catalog candidate still gets a line item; the
		// missing price is surfaced in the confidence report.
		var unitPrice float64
		if len(products) > 0 {
			unitPrice, _ = products[0].UnitPrice()
		}

		item := model.BidLineItem{
			ItemNumber:       fmt.Sprintf("%03d", itemNumber),
			Description:      fmt.Sprintf("%s - %s", humanize(tm.Term), tm.Category),
			SourceTerm:       tm.Term,
			Quantity:         quantity,
			Unit:             UnitFor(tm.Term),
			UnitPrice:        unitPrice,
			TotalPrice:       quantity * unitPrice,
			WasteFactor:      WasteFactorFor(tm.Term, tm.Category),
			MarkupPercentage: e.cfg.MarkupPercentage,
			ProductMatches:   products,
			SourceDocuments:  sourceDocuments(tm.Term, xref.Terms),
			CrossReferences:  crossReferences(tm.Term, xref),
			Notes:            itemNotes(tm),
			Confidence:       tm.Confidence,
		}

		items = append(items, item)
		itemNumber++
	}
	return items
}

// CalculatePricingSummary aggregates line items in a fixed order: subtotal,
// markup, waste adjustments, delivery fee, total. The summary is recomputed
// whole each call.
func (e *Engine) CalculatePricingSummary(items []model.BidLineItem) model.PricingSummary {
	var subtotal, waste float64
	highPriority := 0

	for _, item := range items {
		subtotal += item.TotalPrice
		waste += item.UnitPrice * item.Quantity * item.WasteFactor
		if item.BestMatchQuality() == model.MatchHigh {
			highPriority++
		}
	}

	markup := subtotal * e.cfg.MarkupPercentage
	delivery := e.deliveryFee(subtotal)
	total := subtotal + markup + waste + delivery

	return model.PricingSummary{
		Subtotal:               subtotal,
		MarkupAmount:           markup,
		WasteAdjustments:       waste,
		DeliveryFee:            delivery,
		Total:                  total,
		LineItemCount:          len(items),
		HighPriorityItems:      highPriority,
		EstimatedMaterialsCost: subtotal * e.cfg.MaterialsShare,
		EstimatedLaborCost:     subtotal * (1 - e.cfg.MaterialsShare),
	}
}

// deliveryFee is a percentage of subtotal with a floor, unless the run
// configuration pins an explicit override.
func (e *Engine) deliveryFee(subtotal float64) float64 {
	if e.cfg.DeliveryOverride != nil {
		return *e.cfg.DeliveryOverride
	}
	fee := subtotal * e.cfg.DeliveryPercentage
	if fee < e.cfg.DeliveryMinimum {
		return e.cfg.DeliveryMinimum
	}
	return fee
}

// resolveQuantity walks the fallback chain: official cross-referenced
// quantity, then context-associated quantities, then the term's base factor
// applied to the first quantity carrying the term's target unit. Later
// stages assume a quantity always exists when this returns non-zero.
func (e *Engine) resolveQuantity(term string, xref *model.CrossReferenceResult) float64 {
	if v, ok := xref.QuantityVariance[term]; ok && v.Official > 0 {
		return v.Official * baseFactorFor(term)
	}

	if total := associatedQuantityTotal(term, xref.Quantities); total > 0 {
		return total * baseFactorFor(term)
	}

	targetUnit := UnitFor(term)
	for _, q := range xref.Quantities {
		if q.Unit == targetUnit {
			return q.Value * baseFactorFor(term)
		}
	}
	return 0
}

// associatedQuantityTotal sums quantities whose context mentions the term.
func associatedQuantityTotal(term string, quantities []model.ExtractedQuantity) float64 {
	surface := strings.ToLower(strings.ReplaceAll(term, "_", " "))
	raw := strings.ToLower(term)

	var total float64
	for _, q := range quantities {
		ctx := strings.ToLower(q.Context)
		if strings.Contains(ctx, surface) || strings.Contains(ctx, raw) {
			total += q.Value
		}
	}
	return total
}

// distinctTerms returns the highest-confidence match per term name, in
// first-seen order.
func distinctTerms(matches []model.TermMatch) []model.TermMatch {
	index := make(map[string]int)
	var out []model.TermMatch
	for _, m := range matches {
		i, ok := index[m.Term]
		if !ok {
			index[m.Term] = len(out)
			out = append(out, m)
			continue
		}
		if m.Confidence > out[i].Confidence {
			out[i] = m
		}
	}
	return out
}

// sourceDocuments lists the distinct document types a term was seen in.
func sourceDocuments(term string, matches []model.TermMatch) []model.DocumentType {
	seen := make(map[model.DocumentType]bool)
	var out []model.DocumentType
	for _, m := range matches {
		if m.Term != term || seen[m.SourceDocument] {
			continue
		}
		seen[m.SourceDocument] = true
		out = append(out, m.SourceDocument)
	}
	return out
}

// crossReferences renders the term's variance record for the bid audit
// trail, when one exists.
func crossReferences(term string, xref *model.CrossReferenceResult) []string {
	v, ok := xref.QuantityVariance[term]
	if !ok {
		return nil
	}
	ref := fmt.Sprintf("official %.1f vs derived %.1f (%.0f%% variance)", v.Official, v.Derived, v.Variance*100)
	if v.Discrepancy {
		ref += " DISCREPANCY"
	}
	return []string{ref}
}

func itemNotes(tm model.TermMatch) string {
	ctx := tm.Context
	if len(ctx) > 100 {
		ctx = ctx[:100] + "..."
	}
	return fmt.Sprintf("Page %d: %s", tm.PageNumber, ctx)
}

func humanize(term string) string {
	return strings.ReplaceAll(term, "_", " ")
}

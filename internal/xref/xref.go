// Package xref merges per-document analysis results into a single
// consistency-scored findings set.
package xref

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pace-estimating/pace-cli/internal/config"
	"github.com/pace-estimating/pace-cli/internal/model"
)

// neutralConsistency applies when no term has comparable quantities from
// more than one document; the result is flagged low-confidence rather than
// given a fabricated high score.
const neutralConsistency = 0.5

// PrecedencePolicy orders document types from most to least authoritative
// when quantities disagree. Agencies with different contractual rules can
// supply their own ordering.
type PrecedencePolicy struct {
	Order []model.DocumentType
}

// DefaultPrecedence makes bid forms authoritative: they are the
// contractually binding quantity source.
func DefaultPrecedence() PrecedencePolicy {
	return PrecedencePolicy{Order: []model.DocumentType{
		model.DocBidForms,
		model.DocSpecifications,
		model.DocPlans,
		model.DocSupplemental,
	}}
}

// rank returns the precedence position of a document type; unknown types
// rank last.
func (p PrecedencePolicy) rank(dt model.DocumentType) int {
	for i, t := range p.Order {
		if t == dt {
			return i
		}
	}
	return len(p.Order)
}

// CrossReferencer reconciles findings across a document set.
type CrossReferencer struct {
	cfg    config.XRefConfig
	policy PrecedencePolicy
}

// New creates a CrossReferencer with the given variance threshold config
// and precedence policy.
func New(cfg config.XRefConfig, policy PrecedencePolicy) *CrossReferencer {
	if len(policy.Order) == 0 {
		policy = DefaultPrecedence()
	}
	return &CrossReferencer{cfg: cfg, policy: policy}
}

// Merge unions all matches and quantities across documents, reconciles
// per-term quantity discrepancies, and computes the consistency score.
// Merging is deterministic and idempotent: the same inputs always produce
// the same result. An empty input set is the only fatal precondition.
func (c *CrossReferencer) Merge(results []*model.DocumentAnalysisResult) (*model.CrossReferenceResult, error) {
	if len(results) == 0 {
		return nil, eris.New("xref: no documents to merge")
	}

	merged := &model.CrossReferenceResult{
		QuantityVariance: make(map[string]model.QuantityVariance),
	}

	seenTypes := make(map[model.DocumentType]bool)
	for _, r := range results {
		merged.Terms = append(merged.Terms, r.Terms...)
		merged.Quantities = append(merged.Quantities, r.Quantities...)
		merged.Alerts = append(merged.Alerts, r.Alerts...)
		if !seenTypes[r.DocumentType] {
			seenTypes[r.DocumentType] = true
			merged.DocumentTypes = append(merged.DocumentTypes, r.DocumentType)
		}
	}

	comparable, discrepancies := c.reconcile(merged)

	switch {
	case comparable == 0:
		merged.ConsistencyScore = neutralConsistency
		merged.LowConfidence = true
	default:
		score := 1 - float64(discrepancies)/float64(comparable)
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		merged.ConsistencyScore = score
	}

	// A single-source document set cannot corroborate anything.
	if len(merged.DocumentTypes) < 2 {
		merged.LowConfidence = true
	}

	zap.L().Info("xref: documents merged",
		zap.Int("documents", len(results)),
		zap.Int("terms", len(merged.Terms)),
		zap.Int("quantities", len(merged.Quantities)),
		zap.Int("comparable_terms", comparable),
		zap.Int("discrepancies", discrepancies),
		zap.Float64("consistency_score", merged.ConsistencyScore),
	)

	return merged, nil
}

// reconcile compares per-term quantity totals across document types. When a
// term has quantities from more than one type, the highest-precedence total
// is recorded as official and the rest as derived; variance above the
// threshold is flagged as a discrepancy, never silently averaged away.
func (c *CrossReferencer) reconcile(merged *model.CrossReferenceResult) (comparable, discrepancies int) {
	for _, name := range termOrder(merged.Terms) {
		totals := quantityTotalsByType(name, merged.Quantities)
		if len(totals) < 2 {
			continue
		}
		comparable++

		official, derived := c.splitByPrecedence(totals)
		variance := relativeVariance(official, derived)
		flagged := variance > c.cfg.VarianceThreshold

		merged.QuantityVariance[name] = model.QuantityVariance{
			Official:    official,
			Derived:     derived,
			Variance:    variance,
			Discrepancy: flagged,
		}

		if flagged {
			discrepancies++
			merged.Alerts = append(merged.Alerts, model.Alert{
				Level:    model.AlertWarning,
				Category: model.AlertCategoryCrossRef,
				Message: fmt.Sprintf("Quantity discrepancy for %s: official %.1f vs derived %.1f (%.0f%% variance)",
					name, official, derived, variance*100),
				Recommendation: fmt.Sprintf("Review quantity discrepancy for %s: official %.1f vs derived %.1f", name, official, derived),
				Term:           name,
			})
		}
	}
	return comparable, discrepancies
}

// splitByPrecedence separates the highest-precedence document type's total
// from the mean of the remaining totals.
func (c *CrossReferencer) splitByPrecedence(totals map[model.DocumentType]float64) (official, derived float64) {
	bestRank := -1
	var bestType model.DocumentType
	for dt := range totals {
		r := c.policy.rank(dt)
		if bestRank < 0 || r < bestRank {
			bestRank = r
			bestType = dt
		}
	}

	official = totals[bestType]
	var sum float64
	var n int
	for dt, t := range totals {
		if dt == bestType {
			continue
		}
		sum += t
		n++
	}
	if n > 0 {
		derived = sum / float64(n)
	}
	return official, derived
}

// quantityTotalsByType sums quantities associated with the term, grouped by
// source document type. Association is contextual: the quantity's context
// snippet mentions the term's surface form.
func quantityTotalsByType(term string, quantities []model.ExtractedQuantity) map[model.DocumentType]float64 {
	surface := strings.ToLower(strings.ReplaceAll(term, "_", " "))
	raw := strings.ToLower(term)

	totals := make(map[model.DocumentType]float64)
	for _, q := range quantities {
		ctx := strings.ToLower(q.Context)
		if strings.Contains(ctx, surface) || strings.Contains(ctx, raw) {
			totals[q.SourceDocument] += q.Value
		}
	}
	return totals
}

// termOrder returns distinct term names in first-seen order so merging is
// deterministic regardless of map iteration.
func termOrder(matches []model.TermMatch) []string {
	seen := make(map[string]bool, len(matches))
	var order []string
	for _, m := range matches {
		if !seen[m.Term] {
			seen[m.Term] = true
			order = append(order, m.Term)
		}
	}
	return order
}

func relativeVariance(a, b float64) float64 {
	max := a
	if b > max {
		max = b
	}
	if max == 0 {
		return 0
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff / max
}

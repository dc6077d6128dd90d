// Package detect scans document text for catalog terms, attaches nearby
// quantities, and scores each match.
package detect

import (
	"strings"

	"github.com/pace-estimating/pace-cli/internal/config"
	"github.com/pace-estimating/pace-cli/internal/model"
	"github.com/pace-estimating/pace-cli/internal/terms"
)

// Confidence components. A match starts from its pattern-specificity base,
// gains the quantity bonus when a quantity sits within the association
// window, gains the strategy focus boost for focus terms, and is finally
// scaled by the document-type multiplier.
const (
	baseSingleWord = 0.75
	baseMultiWord  = 0.85
	quantityBonus  = 0.10
)

// Detector finds catalog terms in text. Safe for concurrent use.
type Detector struct {
	catalog *terms.Catalog
	cfg     config.DetectConfig
}

// New creates a Detector over the given catalog.
func New(catalog *terms.Catalog, cfg config.DetectConfig) *Detector {
	return &Detector{catalog: catalog, cfg: cfg}
}

// DetectPage returns a TermMatch for every catalog term found on the page.
// The quantity list must come from the same page so window association
// works on matching offsets.
func (d *Detector) DetectPage(text string, page int, doc model.DocumentType, quantities []model.ExtractedQuantity) []model.TermMatch {
	upper := strings.ToUpper(text)
	strategy := d.catalog.StrategyFor(doc)

	var matches []model.TermMatch
	for _, term := range d.catalog.Terms {
		idx, pattern := findTerm(upper, term)
		if idx < 0 {
			continue
		}

		confidence := patternBase(pattern)
		if quantityNearby(idx, quantities, d.cfg.QuantityWindowChars) {
			confidence += quantityBonus
		}
		if strategy.FocusTerms[term.Name] {
			confidence += strategy.FocusBoost
		}
		confidence *= strategy.Multiplier
		if confidence > 1 {
			confidence = 1
		}

		matches = append(matches, model.TermMatch{
			Term:           term.Name,
			Category:       term.Category,
			Priority:       term.Priority,
			Context:        contextWindow(text, idx, idx+len(pattern), d.cfg.ContextChars),
			PageNumber:     page,
			SourceDocument: doc,
			Confidence:     confidence,
		})
	}
	return matches
}

// findTerm locates the first occurrence of any surface form of the term.
// The humanized name (underscores as spaces) is tried before the raw name
// and explicit pattern variants.
func findTerm(upper string, term model.Term) (int, string) {
	candidates := make([]string, 0, len(term.Patterns)+2)
	if humanized := strings.ReplaceAll(term.Name, "_", " "); humanized != term.Name {
		candidates = append(candidates, humanized)
	}
	candidates = append(candidates, term.Name)
	candidates = append(candidates, term.Patterns...)

	for _, c := range candidates {
		if idx := strings.Index(upper, strings.ToUpper(c)); idx >= 0 {
			return idx, c
		}
	}
	return -1, ""
}

func patternBase(pattern string) float64 {
	if strings.ContainsAny(pattern, " -_") {
		return baseMultiWord
	}
	return baseSingleWord
}

// quantityNearby reports whether any quantity falls within the association
// window around the term offset. Quantities carry their page-relative offset,
// so both positions are in the same coordinate space.
func quantityNearby(termIdx int, quantities []model.ExtractedQuantity, window int) bool {
	for _, q := range quantities {
		delta := q.Offset - termIdx
		if delta < 0 {
			delta = -delta
		}
		if delta <= window {
			return true
		}
	}
	return false
}

func contextWindow(text string, start, end, size int) string {
	lo := start - size
	if lo < 0 {
		lo = 0
	}
	hi := end + size
	if hi > len(text) {
		hi = len(text)
	}
	return strings.TrimSpace(strings.ReplaceAll(text[lo:hi], "\n", " "))
}

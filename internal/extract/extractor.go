// Package extract scans document text for numeric quantity callouts keyed
// by unit and material heuristics.
package extract

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pace-estimating/pace-cli/internal/model"
)

const contextChars = 50

// dimensionConfidence applies to LF quantities summed from dimension
// callouts: weaker evidence than an explicit unit annotation.
const dimensionConfidence = 0.7

// Extractor finds quantities in page text. It is stateless and safe for
// concurrent use.
type Extractor struct{}

// New returns a quantity Extractor.
func New() *Extractor { return &Extractor{} }

// ExtractPage scans one page of text and returns every quantity found.
// Numeric parse failures on matched patterns are skipped and logged, never
// fatal. Construction plans additionally sum dimension callouts into a
// single LF quantity.
func (e *Extractor) ExtractPage(text string, page int, doc model.DocumentType) []model.ExtractedQuantity {
	var out []model.ExtractedQuantity

	claimed := make([]bool, len(text))
	for _, p := range unitPatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			if spanClaimed(claimed, loc[0], loc[1]) {
				continue
			}
			raw := strings.ReplaceAll(text[loc[2]:loc[3]], ",", "")
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				zap.L().Warn("extract: unparseable quantity",
					zap.String("raw", raw),
					zap.Int("page", page),
				)
				continue
			}
			claimSpan(claimed, loc[0], loc[1])
			out = append(out, model.ExtractedQuantity{
				Value:          value,
				Unit:           p.unit,
				Context:        contextWindow(text, loc[0], loc[1], contextChars),
				Offset:         loc[0],
				PageNumber:     page,
				SourceDocument: doc,
				Confidence:     p.confidence,
			})
		}
	}

	if doc == model.DocPlans {
		if q, ok := e.sumDimensions(text, page, doc); ok {
			out = append(out, q)
		}
	}

	return out
}

// sumDimensions totals linear dimension callouts (12'-6" style) into one
// LF quantity for the page.
func (e *Extractor) sumDimensions(text string, page int, doc model.DocumentType) (model.ExtractedQuantity, bool) {
	var total float64
	first := -1
	for _, loc := range dimensionPattern.FindAllStringSubmatchIndex(text, -1) {
		feet, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		inches := 0
		if loc[4] >= 0 {
			inches, err = strconv.Atoi(text[loc[4]:loc[5]])
			if err != nil {
				continue
			}
		}
		total += float64(feet) + float64(inches)/12.0
		if first < 0 {
			first = loc[0]
		}
	}
	if total <= 0 {
		return model.ExtractedQuantity{}, false
	}
	return model.ExtractedQuantity{
		Value:          total,
		Unit:           "LF",
		Context:        contextWindow(text, first, first, contextChars),
		Offset:         first,
		PageNumber:     page,
		SourceDocument: doc,
		Confidence:     dimensionConfidence,
	}, true
}

// FinalQuantity applies the material waste factor once:
// final = quantity * (1 + waste). It is a pure function, never cached.
func FinalQuantity(quantity float64, materialType string) float64 {
	return quantity * (1 + WasteFactorFor(materialType))
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

func spanClaimed(claimed []bool, start, end int) bool {
	for i := start; i < end && i < len(claimed); i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}

func claimSpan(claimed []bool, start, end int) {
	for i := start; i < end && i < len(claimed); i++ {
		claimed[i] = true
	}
}

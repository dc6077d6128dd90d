package bid

import "strings"

// WasteFactors keys waste percentages by pricing category. This table is
// deliberately separate from the extractor's material waste table: pricing
// waste is a purchasing allowance, extraction waste inflates takeoff
// quantities. Do not merge them.
var WasteFactors = map[string]float64{
	"formwork":  0.10,
	"lumber":    0.10,
	"hardware":  0.05,
	"specialty": 0.15,
}

// DefaultWasteFactor applies when neither the term nor its category maps to
// a pricing category.
const DefaultWasteFactor = 0.08

// WasteFactorFor resolves a waste factor from term content first, then the
// term's catalog category.
func WasteFactorFor(term, category string) float64 {
	upper := strings.ToUpper(term)

	switch {
	case strings.Contains(upper, "FORM") || strings.Contains(upper, "PLYWOOD"):
		return WasteFactors["formwork"]
	case strings.Contains(upper, "LUMBER") || strings.Contains(upper, "2X") || strings.Contains(upper, "4X"):
		return WasteFactors["lumber"]
	case strings.Contains(upper, "BOLT") || strings.Contains(upper, "SCREW") || strings.Contains(upper, "NAIL"):
		return WasteFactors["hardware"]
	case strings.Contains(upper, "SPECIAL") || strings.Contains(upper, "CUSTOM"):
		return WasteFactors["specialty"]
	}

	if f, ok := WasteFactors[strings.ToLower(category)]; ok {
		return f
	}
	return DefaultWasteFactor
}

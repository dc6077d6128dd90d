package extract

import "strings"

// WasteFactors maps material type to fractional over-purchase allowance.
// NOTE: the pricing engine carries its own category-keyed waste table
// (bid.WasteFactors) with different values; the two tables are intentionally
// separate and must not be merged.
var WasteFactors = map[string]float64{
	"CONCRETE":   0.05,
	"LUMBER":     0.10,
	"STEEL":      0.05,
	"DRYWALL":    0.10,
	"ROOFING":    0.08,
	"FLOORING":   0.07,
	"MASONRY":    0.05,
	"INSULATION": 0.10,
	"FORMWORK":   0.15,
	"PAVING":     0.02,
	"EARTHWORK":  0.00,
}

// DefaultWasteFactor applies when the material type is not in the table.
const DefaultWasteFactor = 0.10

// WasteFactorFor returns the waste factor for a material type, falling back
// to the default.
func WasteFactorFor(materialType string) float64 {
	if wf, ok := WasteFactors[strings.ToUpper(materialType)]; ok {
		return wf
	}
	return DefaultWasteFactor
}

// materialKeywords classifies quantity context into a material type for
// waste lookup and ratio validation.
var materialKeywords = []struct {
	material string
	words    []string
}{
	{"FORMWORK", []string{"formwork", "form", "falsework", "blockout"}},
	{"CONCRETE", []string{"concrete", "conc", "stamped", "retaining"}},
	{"STEEL", []string{"steel", "rebar", "reinforc"}},
	{"LUMBER", []string{"lumber", "timber", "plywood", "2x", "4x"}},
	{"DOORS", []string{"door"}},
	{"WINDOWS", []string{"window"}},
	{"PAVING", []string{"paving", "asphalt", "pavement"}},
	{"EARTHWORK", []string{"excavation", "cut", "fill", "earthwork"}},
	{"FLOORING", []string{"floor", "room", "living", "bedroom"}},
}

// ClassifyMaterial maps quantity context text to a material type key.
// Unmatched context yields "GENERAL", which takes the default waste factor.
func ClassifyMaterial(context string) string {
	lower := strings.ToLower(context)
	for _, mk := range materialKeywords {
		for _, w := range mk.words {
			if strings.Contains(lower, w) {
				return mk.material
			}
		}
	}
	return "GENERAL"
}

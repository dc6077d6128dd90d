package bid

import "strings"

// quantityFactor holds a term's default bid unit and the multiplier applied
// when a quantity has to be derived from a proxy.
type quantityFactor struct {
	baseFactor float64
	unit       string
}

// quantityFactors maps catalog terms to their bid units. Terms not listed
// here fall through to the keyword heuristics in UnitFor.
var quantityFactors = map[string]quantityFactor{
	"BALUSTER":             {baseFactor: 1.0, unit: "EA"},
	"BLOCKOUT":             {baseFactor: 1.0, unit: "EA"},
	"STAMPED_CONCRETE":     {baseFactor: 1.0, unit: "SQFT"},
	"RETAINING_WALL":       {baseFactor: 1.0, unit: "SQFT"},
	"EROSION_CONTROL":      {baseFactor: 1.0, unit: "LF"},
	"FORMWORK":             {baseFactor: 1.0, unit: "SQFT"},
	"FALSEWORK":            {baseFactor: 1.0, unit: "SQFT"},
	"BRIDGE_RAILING":       {baseFactor: 1.0, unit: "LF"},
	"CONCRETE_FINISHING":   {baseFactor: 1.0, unit: "SQFT"},
	"TEMPORARY_STRUCTURES": {baseFactor: 1.0, unit: "EA"},
}

// UnitFor resolves the bid unit for a term: lookup table first, then
// content heuristics, then EA.
func UnitFor(term string) string {
	upper := strings.ToUpper(term)

	if f, ok := quantityFactors[upper]; ok {
		return f.unit
	}

	switch {
	case containsAny(upper, "BALUSTER", "BLOCKOUT", "POST", "PIECE"):
		return "EA"
	case containsAny(upper, "WALL", "FORM", "FINISH", "TEXTURE"):
		return "SQFT"
	case containsAny(upper, "RAIL", "FENCE", "CONTROL"):
		return "LF"
	case containsAny(upper, "CONCRETE", "MIX", "MATERIAL"):
		return "CY"
	}
	return "EA"
}

// baseFactorFor returns the proxy-quantity multiplier for a term, 1.0 when
// unlisted.
func baseFactorFor(term string) float64 {
	if f, ok := quantityFactors[strings.ToUpper(term)]; ok {
		return f.baseFactor
	}
	return 1.0
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

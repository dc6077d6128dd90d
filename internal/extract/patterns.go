package extract

import "regexp"

// unitPattern is one surface pattern for a unit family. Patterns carry a
// fixed confidence: keyword-adjacent callouts score higher than bare
// numeric+unit matches.
type unitPattern struct {
	unit       string
	re         *regexp.Regexp
	confidence float64
}

const number = `(\d+(?:,\d{3})*(?:\.\d+)?)`

// Ordered pattern sets per unit family. Order matters: the first pattern to
// match a span wins, so keyword-qualified patterns come first.
var unitPatterns = []unitPattern{
	// Area.
	{"SQFT", regexp.MustCompile(`(?i)(?:FORMWORK|FORM|PAVING|ASPHALT|PAVEMENT|AREA)[:\s=]+` + number + `\s*(?:SQ\s*FT|SQFT|SF)\b`), 0.9},
	{"SQFT", regexp.MustCompile(`(?i)` + number + `\s*(?:SQ\.?\s*FT|SQFT|SF|SQUARE\s*FEET?)\b`), 0.8},
	{"SY", regexp.MustCompile(`(?i)` + number + `\s*(?:SQ\s*YARDS?|SQYD|SY)\b`), 0.8},

	// Volume.
	{"CY", regexp.MustCompile(`(?i)(?:CONC(?:RETE)?|CUT|FILL|EXCAVATION)\s+` + number + `\s*(?:CY|CUBIC\s*YARDS?|CU\s*YD)\b`), 0.9},
	{"CY", regexp.MustCompile(`(?i)` + number + `\s*(?:CY|CUBIC\s*YARDS?|CU\s*YD)\b`), 0.8},
	{"CF", regexp.MustCompile(`(?i)` + number + `\s*(?:CF|CUBIC\s*FEET?|CU\s*FT)\b`), 0.8},

	// Length.
	{"LF", regexp.MustCompile(`(?i)` + number + `\s*(?:LF|LINEAR\s*FEET?|LINEAR\s*FT|LIN\s*FT)\b`), 0.8},

	// Count.
	{"EA", regexp.MustCompile(`(?i)` + number + `\s*(?:EA|EACH)\b`), 0.8},
	{"EA", regexp.MustCompile(`(?i)` + number + `\s*(?:PCS?|PIECES?|UNITS?)\b`), 0.7},

	// Weight and liquid volume.
	{"TON", regexp.MustCompile(`(?i)` + number + `\s*TONS?\b`), 0.8},
	{"LB", regexp.MustCompile(`(?i)` + number + `\s*(?:LBS?|POUNDS?)\b`), 0.8},
	{"GAL", regexp.MustCompile(`(?i)` + number + `\s*(?:GAL|GALLONS?)\b`), 0.8},
}

// dimensionPattern matches linear dimension callouts like 12'-6" or 8'.
// Inches are optional; matched lengths are summed into a single LF quantity.
var dimensionPattern = regexp.MustCompile(`(\d+)'(?:-(\d+)")?`)

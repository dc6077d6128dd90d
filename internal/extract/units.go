package extract

// Unit conversion factors.
const (
	sqftToSqyd = 1.0 / 9.0
	cuftToCuyd = 1.0 / 27.0
)

// boardFeetPerLF maps nominal lumber size to board feet per linear foot.
var boardFeetPerLF = map[string]float64{
	"2x4":  2.0 / 3.0,
	"2x6":  1.0,
	"2x8":  4.0 / 3.0,
	"2x10": 5.0 / 3.0,
	"2x12": 2.0,
}

// Convert converts a quantity between units. The LF→BF conversion requires
// a nominal lumber size ("2x4" .. "2x12"). Conversions for an unknown pair
// return the input unchanged; callers rely on this explicit no-op, so do not
// turn it into an error.
func Convert(quantity float64, fromUnit, toUnit, materialSize string) float64 {
	if fromUnit == toUnit {
		return quantity
	}
	switch {
	case fromUnit == "SF" && toUnit == "SY",
		fromUnit == "SQFT" && toUnit == "SY":
		return quantity * sqftToSqyd
	case fromUnit == "SY" && toUnit == "SF",
		fromUnit == "SY" && toUnit == "SQFT":
		return quantity / sqftToSqyd
	case fromUnit == "CF" && toUnit == "CY":
		return quantity * cuftToCuyd
	case fromUnit == "CY" && toUnit == "CF":
		return quantity / cuftToCuyd
	case fromUnit == "LF" && toUnit == "BF":
		if mult, ok := boardFeetPerLF[materialSize]; ok {
			return quantity * mult
		}
		return quantity
	}
	return quantity
}

package bid

import (
	"math"
	"strings"

	"github.com/pace-estimating/pace-cli/internal/model"
)

// Lumber takeoff factors. Formwork panels are reused across pours, so the
// reuse factor divides the raw requirement.
const (
	sqftPerPlywoodSheet = 32.0 // 4x8 sheet
	lumberWasteFactor   = 0.15
	formworkReuseFactor = 3.0
	linearWallHeightFt  = 8.0

	bfPerSqft2x4 = 0.5
	bfPerSqft2x6 = 0.3
	bfPerSqft4x4 = 0.1

	plywoodSheetPrice = 45.00
)

// dimensionalLumberPrices are per-piece estimates used when the catalog
// carries no price for a size.
var dimensionalLumberPrices = map[string]float64{
	"2x4": 8.50,
	"2x6": 12.00,
	"4x4": 15.00,
}

// lumberTermKeywords select the terms whose quantities contribute to
// formwork area.
var lumberTermKeywords = []string{
	"form", "falsework", "lumber", "wood", "timber", "board", "plywood",
}

// LumberTakeoffFrom derives the lumber requirement supplement from formwork
// related quantities. Returns nil when the document set has no formwork
// area to size against.
func LumberTakeoffFrom(xref *model.CrossReferenceResult) *model.LumberTakeoff {
	area := formworkArea(xref)
	if area <= 0 {
		return nil
	}

	dimensional := map[string]float64{
		"2x4": withWaste(area * bfPerSqft2x4 / formworkReuseFactor),
		"2x6": withWaste(area * bfPerSqft2x6 / formworkReuseFactor),
		"4x4": withWaste(area * bfPerSqft4x4 / formworkReuseFactor),
	}

	sheets := withWaste(math.Ceil(area / sqftPerPlywoodSheet / formworkReuseFactor))

	var totalBF float64
	var lumberCost float64
	for size, bf := range dimensional {
		totalBF += bf
		lumberCost += bf * dimensionalLumberPrices[size]
	}

	return &model.LumberTakeoff{
		FormworkArea:      area,
		TotalBoardFeet:    totalBF,
		PlywoodSheets:     sheets,
		DimensionalLumber: dimensional,
		WasteFactor:       lumberWasteFactor,
		ReuseFactor:       formworkReuseFactor,
		EstimatedCost:     sheets*plywoodSheetPrice + lumberCost,
	}
}

// formworkArea sums square-foot quantities associated with formwork terms.
// Linear-foot quantities contribute at an assumed wall height.
func formworkArea(xref *model.CrossReferenceResult) float64 {
	var area float64
	for _, q := range xref.Quantities {
		if !lumberContext(q.Context) {
			continue
		}
		switch q.Unit {
		case "SQFT", "SF", "SY":
			area += q.Value
		case "LF":
			area += q.Value * linearWallHeightFt
		}
	}
	return area
}

func lumberContext(context string) bool {
	lower := strings.ToLower(context)
	for _, kw := range lumberTermKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func withWaste(v float64) float64 {
	return math.Ceil(v * (1 + lumberWasteFactor))
}

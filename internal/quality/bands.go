package quality

import "strings"

// ratioBand is an industry-standard min/max envelope for a derived ratio.
type ratioBand struct {
	min, max, typical float64
}

var industryRatios = map[string]ratioBand{
	"sf_per_door":          {min: 100, max: 500, typical: 250},
	"sf_per_window":        {min: 50, max: 200, typical: 100},
	"sf_per_bathroom":      {min: 20, max: 100, typical: 50},
	"lf_electrical_per_sf": {min: 2, max: 12, typical: 6},
	"cy_concrete_per_sf":   {min: 0.05, max: 0.5, typical: 0.2},
	"lbs_rebar_per_cy":     {min: 25, max: 300, typical: 100},
	"bf_lumber_per_sf":     {min: 3, max: 15, typical: 8},
}

// costBand is the expected unit-price envelope for a material/unit pair.
type costBand struct {
	min, max, typical float64
}

var costRanges = map[string]costBand{
	"CONCRETE_CY": {min: 100, max: 250, typical: 150},
	"STEEL_LB":    {min: 0.80, max: 2.00, typical: 1.25},
	"LUMBER_BF":   {min: 0.50, max: 2.00, typical: 0.85},
	"FORMWORK_SF": {min: 4.00, max: 15.00, typical: 8.50},
	"DOOR_EA":     {min: 200, max: 800, typical: 425},
	"WINDOW_EA":   {min: 150, max: 600, typical: 385},
}

// costBandFor resolves the cost band key for a line item from its term
// content and unit. ok=false means no band applies.
func costBandFor(term, unit string) (costBand, bool) {
	upper := strings.ToUpper(term)

	var key string
	switch {
	case strings.Contains(upper, "FORM") && (unit == "SQFT" || unit == "SF"):
		key = "FORMWORK_SF"
	case strings.Contains(upper, "CONCRETE") && unit == "CY":
		key = "CONCRETE_CY"
	case (strings.Contains(upper, "STEEL") || strings.Contains(upper, "REBAR")) && unit == "LB":
		key = "STEEL_LB"
	case strings.Contains(upper, "LUMBER") && unit == "BF":
		key = "LUMBER_BF"
	case strings.Contains(upper, "DOOR") && unit == "EA":
		key = "DOOR_EA"
	case strings.Contains(upper, "WINDOW") && unit == "EA":
		key = "WINDOW_EA"
	default:
		return costBand{}, false
	}
	band, ok := costRanges[key]
	return band, ok
}

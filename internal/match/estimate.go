package match

import (
	"math"
	"strings"

	"github.com/pace-estimating/pace-cli/internal/model"
)

// pricingTier estimates a price for catalog records that carry none. The
// multipliers key off substrings of the product name.
type pricingTier struct {
	basePrice          float64
	sizeMultipliers    map[string]float64
	qualityAdjustments map[string]float64
}

var pricingTiers = map[string]pricingTier{
	"formwork": {
		basePrice: 3.50,
		sizeMultipliers: map[string]float64{
			"4x8": 1.0, "4x10": 1.25, "5x10": 1.5, "custom": 1.2,
		},
		qualityAdjustments: map[string]float64{
			"marine": 1.3, "fire rated": 1.4, "moisture resistant": 1.2,
		},
	},
	"lumber": {
		basePrice: 1.25,
		sizeMultipliers: map[string]float64{
			"2x4": 1.0, "2x6": 1.4, "2x8": 1.8, "2x10": 2.2, "2x12": 2.6,
			"4x4": 2.0, "6x6": 4.0,
		},
		qualityAdjustments: map[string]float64{
			"pressure treated": 1.3, "cedar": 1.5, "redwood": 1.8, "douglas fir": 1.2,
		},
	},
	"hardware": {
		basePrice: 2.00,
		sizeMultipliers: map[string]float64{
			"small": 0.8, "medium": 1.0, "large": 1.3, "heavy": 1.6,
		},
		qualityAdjustments: map[string]float64{
			"galvanized": 1.2, "stainless": 1.5, "zinc plated": 1.1,
		},
	},
	"tools": {
		basePrice: 15.00,
		sizeMultipliers: map[string]float64{
			"hand": 0.7, "power": 1.0, "heavy duty": 1.4, "professional": 1.8,
		},
		qualityAdjustments: map[string]float64{
			"premium": 1.3, "professional": 1.6, "industrial": 2.0,
		},
	},
	"safety": {
		basePrice: 8.00,
		sizeMultipliers: map[string]float64{
			"basic": 0.8, "premium": 1.3, "specialty": 1.6,
		},
		qualityAdjustments: map[string]float64{
			"ansi": 1.2, "osha": 1.3, "premium": 1.4,
		},
	},
}

// EstimatePrice derives a price for a product with no catalog price, using
// the category's base price adjusted by size and quality cues in the name.
// Returns ok=false for categories without a pricing tier.
func EstimatePrice(p model.CatalogProduct) (float64, bool) {
	tier, ok := pricingTiers[strings.ToLower(p.Category)]
	if !ok {
		return 0, false
	}

	name := strings.ToLower(p.Name)

	sizeMult := 1.0
	for size, mult := range tier.sizeMultipliers {
		if strings.Contains(name, size) {
			if mult > sizeMult {
				sizeMult = mult
			}
		}
	}

	qualityMult := 1.0
	for quality, adj := range tier.qualityAdjustments {
		if strings.Contains(name, quality) {
			if adj > qualityMult {
				qualityMult = adj
			}
		}
	}

	price := tier.basePrice * sizeMult * qualityMult
	return math.Round(price*100) / 100, true
}

package bid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pace-estimating/pace-cli/internal/model"
)

func TestLumberTakeoffFrom(t *testing.T) {
	t.Parallel()

	xr := &model.CrossReferenceResult{
		Quantities: []model.ExtractedQuantity{
			{Value: 960, Unit: "SQFT", Context: "formwork for abutment"},
			{Value: 100, Unit: "LF", Context: "falsework stringers"},
			{Value: 500, Unit: "SQFT", Context: "asphalt paving"}, // not lumber related
		},
	}

	takeoff := LumberTakeoffFrom(xr)
	require.NotNil(t, takeoff)

	// 960 SQFT formwork plus 100 LF at the 8 ft assumed wall height.
	assert.InDelta(t, 1760.0, takeoff.FormworkArea, 1e-9)
	assert.Equal(t, lumberWasteFactor, takeoff.WasteFactor)
	assert.Equal(t, formworkReuseFactor, takeoff.ReuseFactor)

	// Raw requirements divide by reuse before the waste ceiling applies.
	// 2x4: 1760 * 0.5 / 3 = 293.33 -> *1.15 -> ceil 338
	assert.InDelta(t, 338.0, takeoff.DimensionalLumber["2x4"], 1e-9)
	// 2x6: 1760 * 0.3 / 3 = 176 -> *1.15 -> ceil 203
	assert.InDelta(t, 203.0, takeoff.DimensionalLumber["2x6"], 1e-9)
	// 4x4: 1760 * 0.1 / 3 = 58.67 -> *1.15 -> ceil 68
	assert.InDelta(t, 68.0, takeoff.DimensionalLumber["4x4"], 1e-9)

	// Sheets: ceil(1760 / 32 / 3) = 19 -> *1.15 -> ceil 22
	assert.InDelta(t, 22.0, takeoff.PlywoodSheets, 1e-9)

	wantBF := 338.0 + 203.0 + 68.0
	assert.InDelta(t, wantBF, takeoff.TotalBoardFeet, 1e-9)

	wantCost := 22*45.00 + 338*8.50 + 203*12.00 + 68*15.00
	assert.InDelta(t, wantCost, takeoff.EstimatedCost, 1e-9)
}

func TestLumberTakeoffNoFormwork(t *testing.T) {
	t.Parallel()

	xr := &model.CrossReferenceResult{
		Quantities: []model.ExtractedQuantity{
			{Value: 45, Unit: "CY", Context: "structural concrete"},
		},
	}
	assert.Nil(t, LumberTakeoffFrom(xr))
}

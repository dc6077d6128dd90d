package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/tealeg/xlsx/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pace-estimating/pace-cli/internal/model"
)

func sampleBid() *model.Bid {
	return &model.Bid{
		RunID:            "run-1",
		ProjectName:      "Creek Bridge Replacement",
		MarkupPercentage: 0.20,
		LineItems: []model.BidLineItem{
			{
				ItemNumber: "001", Description: "BALUSTER - bridge_barrier", SourceTerm: "BALUSTER",
				Quantity: 150, Unit: "EA", UnitPrice: 25, TotalPrice: 3750, WasteFactor: 0.08,
			},
		},
		PricingSummary: model.PricingSummary{
			Subtotal: 3750, MarkupAmount: 750, WasteAdjustments: 300,
			DeliveryFee: 150, Total: 4950, LineItemCount: 1,
		},
		Analysis: model.AnalysisSummary{
			Terms: []model.TermMatch{
				{Term: "BALUSTER", Category: "bridge_barrier", PageNumber: 4,
					SourceDocument: model.DocBidForms, Confidence: 0.9},
			},
			ConsistencyScore: 1.0,
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bid.xlsx")
	metrics := model.QualityMetrics{OverallScore: 92, Grade: "Good"}

	require.NoError(t, WriteWorkbook(path, sampleBid(), metrics))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 4)
	assert.Equal(t, "Line Items", f.Sheets[0].Name)
	assert.Equal(t, "Pricing Summary", f.Sheets[1].Name)
	assert.Equal(t, "Cross References", f.Sheets[2].Name)
	assert.Equal(t, "Quality", f.Sheets[3].Name)

	// Header plus one line item.
	require.GreaterOrEqual(t, len(f.Sheets[0].Rows), 2)
	assert.Equal(t, "001", f.Sheets[0].Rows[1].Cells[0].Value)
	assert.Equal(t, "BALUSTER", f.Sheets[0].Rows[1].Cells[2].Value)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bid.json")
	require.NoError(t, WriteJSON(path, sampleBid()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got model.Bid
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, 4950.0, got.PricingSummary.Total)
}

func TestWriteJSONBadPath(t *testing.T) {
	t.Parallel()

	err := WriteJSON(filepath.Join(t.TempDir(), "missing", "bid.json"), sampleBid())
	assert.Error(t, err)
}

package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pace-estimating/pace-cli/internal/config"
	"github.com/pace-estimating/pace-cli/internal/model"
	"github.com/pace-estimating/pace-cli/internal/terms"
)

func testConfig() *config.Config {
	return &config.Config{
		Bid: config.BidConfig{
			MarkupPercentage:   0.20,
			DeliveryPercentage: 0.03,
			DeliveryMinimum:    150.00,
			MaterialsShare:     0.70,
		},
		Detect: config.DetectConfig{ContextChars: 100, QuantityWindowChars: 150},
		XRef:   config.XRefConfig{VarianceThreshold: 0.15},
		Quality: config.QualityConfig{
			ErrorDeduction: 15, WarningDeduction: 8, InfoDeduction: 2,
			PricingScale: 0.5, MinTermCount: 3, MinQuantityCount: 5,
		},
	}
}

func testProducts() []model.CatalogProduct {
	form := 8.00
	baluster := 25.00
	return []model.CatalogProduct{
		{ID: "FRM-100", Name: "CDX Plywood Form Panel", Category: "formwork",
			Keywords: []string{"plywood", "form", "cdx", "concrete"}, Price: &form},
		{ID: "BAL-200", Name: "Heavy Concrete Baluster Form", Category: "formwork",
			Keywords: []string{"concrete", "form", "heavy", "baluster"}, Price: &baluster},
	}
}

func testDocuments() []model.DocumentText {
	return []model.DocumentText{
		{
			Name: "specs.pdf",
			Type: model.DocSpecifications,
			Pages: []string{
				"Section 51 FORMWORK: 2400 SQFT for the bridge soffit. FALSEWORK erection over the creek span.",
				"Furnish 150 EA baluster units. STAMPED CONCRETE at the plaza, 800 SQFT stamped concrete area.",
			},
		},
		{
			Name: "bidforms.pdf",
			Type: model.DocBidForms,
			Pages: []string{
				"Item 51-A BALUSTER 150 EA. Item 51-B formwork 2400 SQFT.",
			},
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	t.Parallel()
	p := New(testConfig(), terms.Default(), testProducts())

	result, err := p.Run(context.Background(), "Creek Bridge Replacement", "04-123456", testDocuments())
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	assert.Equal(t, "specs.pdf", result.Documents[0].DocumentName)
	assert.NotEmpty(t, result.Documents[0].Terms)
	assert.NotEmpty(t, result.Documents[0].Quantities)

	xr := result.CrossReference
	require.NotNil(t, xr)
	assert.True(t, xr.HasDocumentType(model.DocSpecifications))
	assert.True(t, xr.HasDocumentType(model.DocBidForms))

	b := result.Bid
	require.NotNil(t, b)
	assert.Equal(t, "Creek Bridge Replacement", b.ProjectName)
	assert.NotEmpty(t, b.RunID)
	require.NotEmpty(t, b.LineItems)

	s := b.PricingSummary
	assert.Greater(t, s.Subtotal, 0.0)
	assert.InDelta(t, s.Subtotal+s.MarkupAmount+s.WasteAdjustments+s.DeliveryFee, s.Total, 1e-9)

	assert.Greater(t, result.Quality.OverallScore, 0.0)
	assert.NotEmpty(t, result.Quality.Grade)
}

func TestRunEmptyDocuments(t *testing.T) {
	t.Parallel()
	p := New(testConfig(), terms.Default(), testProducts())

	_, err := p.Run(context.Background(), "p", "1", nil)
	assert.Error(t, err)
}

func TestAnalyzeDocumentsPreservesOrder(t *testing.T) {
	t.Parallel()
	p := New(testConfig(), terms.Default(), nil)

	docs := testDocuments()
	results, err := p.AnalyzeDocuments(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, results, len(docs))

	for i := range docs {
		assert.Equal(t, docs[i].Name, results[i].DocumentName)
		assert.Equal(t, docs[i].Type, results[i].DocumentType)
	}
}

func TestAnalyzeDocumentsCancelledContext(t *testing.T) {
	t.Parallel()
	p := New(testConfig(), terms.Default(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.AnalyzeDocuments(ctx, testDocuments())
	assert.Error(t, err)
}

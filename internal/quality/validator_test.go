package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pace-estimating/pace-cli/internal/config"
	"github.com/pace-estimating/pace-cli/internal/model"
)

func testQualityConfig() config.QualityConfig {
	return config.QualityConfig{
		ErrorDeduction:   15.0,
		WarningDeduction: 8.0,
		InfoDeduction:    2.0,
		PricingScale:     0.5,
		MinTermCount:     3,
		MinQuantityCount: 5,
	}
}

func healthyXRef() *model.CrossReferenceResult {
	return &model.CrossReferenceResult{
		Terms: []model.TermMatch{
			{Term: "FORMWORK", Category: "formwork", Confidence: 0.9},
			{Term: "BALUSTER", Category: "bridge_barrier", Confidence: 0.9},
			{Term: "FALSEWORK", Category: "formwork", Confidence: 0.85},
		},
		Quantities: []model.ExtractedQuantity{
			{Value: 2400, Unit: "SQFT", Context: "formwork area", Confidence: 0.9},
			{Value: 150, Unit: "EA", Context: "baluster units", Confidence: 0.9},
			{Value: 45, Unit: "CY", Context: "structural concrete", Confidence: 0.8},
			{Value: 350, Unit: "LF", Context: "bridge railing", Confidence: 0.85},
			{Value: 5000, Unit: "LB", Context: "epoxy coated rebar", Confidence: 0.8},
		},
		ConsistencyScore: 1.0,
		DocumentTypes:    []model.DocumentType{model.DocSpecifications, model.DocBidForms},
	}
}

func TestValidateHealthyBid(t *testing.T) {
	t.Parallel()
	v := New(testQualityConfig())

	b := &model.Bid{LineItems: []model.BidLineItem{
		{SourceTerm: "FORMWORK", Unit: "SQFT", UnitPrice: 8.00},
	}}

	metrics := v.Validate(b, healthyXRef())

	assert.Equal(t, 100.0, metrics.CompletenessScore)
	assert.Equal(t, 100.0, metrics.AccuracyScore)
	assert.Greater(t, metrics.OverallScore, 85.0)
	assert.Contains(t, []string{"Excellent", "Good"}, metrics.Grade)
	assert.Contains(t, metrics.ValidationSummary, "Quality Assessment")
}

func TestValidateEmptyAnalysis(t *testing.T) {
	t.Parallel()
	v := New(testQualityConfig())

	empty := &model.CrossReferenceResult{
		DocumentTypes: []model.DocumentType{model.DocSpecifications},
	}
	metrics := v.Validate(&model.Bid{}, empty)

	var termError, quantityError bool
	for _, a := range metrics.Alerts {
		if a.Level == model.AlertError && a.Category == model.AlertCategoryCompleteness {
			switch a.Message {
			case "No terminology detected":
				termError = true
			case "No quantities extracted":
				quantityError = true
			}
		}
	}
	assert.True(t, termError)
	assert.True(t, quantityError)

	// Two errors against completeness: 100 - 2*15 = 70.
	assert.Equal(t, 70.0, metrics.CompletenessScore)

	healthy := v.Validate(&model.Bid{LineItems: []model.BidLineItem{
		{SourceTerm: "FORMWORK", Unit: "SQFT", UnitPrice: 8.00},
	}}, healthyXRef())
	assert.Less(t, metrics.OverallScore, healthy.OverallScore)
}

func TestValidateRatioBands(t *testing.T) {
	t.Parallel()
	v := New(testQualityConfig())

	// 10,000 SF with 100 doors is 100 SF per door, inside the band; with 200
	// doors it drops to 50, below it.
	inBand := &model.CrossReferenceResult{
		Quantities: []model.ExtractedQuantity{
			{Value: 10000, Unit: "SF", Context: "floor area", Confidence: 0.9},
			{Value: 100, Unit: "EA", Context: "hollow metal door", Confidence: 0.9},
		},
		DocumentTypes: []model.DocumentType{model.DocSpecifications, model.DocPlans},
	}
	outOfBand := &model.CrossReferenceResult{
		Quantities: []model.ExtractedQuantity{
			{Value: 10000, Unit: "SF", Context: "floor area", Confidence: 0.9},
			{Value: 200, Unit: "EA", Context: "hollow metal door", Confidence: 0.9},
		},
		DocumentTypes: []model.DocumentType{model.DocSpecifications, model.DocPlans},
	}

	assert.Empty(t, ratioAlerts(v.checkRatios(inBand.Quantities)))
	got := ratioAlerts(v.checkRatios(outOfBand.Quantities))
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "door ratio")
}

func TestValidateRebarRatio(t *testing.T) {
	t.Parallel()
	v := New(testQualityConfig())

	// 10 lbs of rebar per CY is far below the 25-300 band.
	quantities := []model.ExtractedQuantity{
		{Value: 100, Unit: "CY", Context: "structural concrete"},
		{Value: 1000, Unit: "LB", Context: "epoxy coated rebar"},
	}
	got := ratioAlerts(v.checkRatios(quantities))
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "rebar ratio")
}

func TestValidatePricingBands(t *testing.T) {
	t.Parallel()
	v := New(testQualityConfig())

	items := []model.BidLineItem{
		{SourceTerm: "FORMWORK", Unit: "SQFT", UnitPrice: 8.00},    // in band 4-15
		{SourceTerm: "FORMWORK", Unit: "SQFT", UnitPrice: 1.00},    // low
		{SourceTerm: "CONCRETE_MIX", Unit: "CY", UnitPrice: 400},   // high, band 100-250
		{SourceTerm: "CONCRETE_MIX", Unit: "CY", UnitPrice: 0},     // unpriced, skipped
		{SourceTerm: "CRIBBING", Unit: "EA", UnitPrice: 99999},     // no band, skipped
	}

	alerts := v.checkPricing(items)
	require.Len(t, alerts, 2)
	assert.Contains(t, alerts[0].Message, "seems low")
	assert.Contains(t, alerts[1].Message, "seems high")
	assert.Contains(t, alerts[1].Recommendation, "$100.00-$250.00")
}

func TestValidateCrossReferenceChecks(t *testing.T) {
	t.Parallel()
	v := New(testQualityConfig())

	// Concrete terminology without any CY quantity draws a warning.
	xr := &model.CrossReferenceResult{
		Terms: []model.TermMatch{
			{Term: "STAMPED_CONCRETE", Category: "concrete", Confidence: 0.9},
		},
		Quantities: []model.ExtractedQuantity{
			{Value: 2400, Unit: "SQFT", Context: "plaza area", Confidence: 0.9},
		},
		DocumentTypes: []model.DocumentType{model.DocSpecifications, model.DocPlans},
	}

	alerts := v.checkCrossReferences(xr)
	require.Len(t, alerts, 1)
	assert.Equal(t, model.AlertWarning, alerts[0].Level)
	assert.Contains(t, alerts[0].Message, "no volume quantities")
}

func TestPricingAlertsDeductAtHalfScale(t *testing.T) {
	t.Parallel()
	v := New(testQualityConfig())

	ratio := []model.Alert{{Level: model.AlertWarning, Category: model.AlertCategoryRatio}}
	pricing := []model.Alert{{Level: model.AlertWarning, Category: model.AlertCategoryPricing}}

	ratioMetrics := v.score(ratio, nil)
	pricingMetrics := v.score(pricing, nil)

	assert.Equal(t, 92.0, ratioMetrics.AccuracyScore)
	assert.Equal(t, 96.0, pricingMetrics.AccuracyScore)
}

func TestScoreFloorsAtZero(t *testing.T) {
	t.Parallel()
	v := New(testQualityConfig())

	var alerts []model.Alert
	for i := 0; i < 10; i++ {
		alerts = append(alerts, model.Alert{Level: model.AlertError, Category: model.AlertCategoryCompleteness})
	}
	metrics := v.score(alerts, nil)
	assert.Equal(t, 0.0, metrics.CompletenessScore)
}

func TestGradeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Excellent", model.GradeFor(95))
	assert.Equal(t, "Good", model.GradeFor(85))
	assert.Equal(t, "Fair", model.GradeFor(75))
	assert.Equal(t, "Poor", model.GradeFor(60))
	assert.Equal(t, "Inadequate", model.GradeFor(59.9))
}

func ratioAlerts(alerts []model.Alert) []model.Alert {
	var out []model.Alert
	for _, a := range alerts {
		if a.Category == model.AlertCategoryRatio {
			out = append(out, a)
		}
	}
	return out
}

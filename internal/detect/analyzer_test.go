package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pace-estimating/pace-cli/internal/model"
	"github.com/pace-estimating/pace-cli/internal/terms"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()
	a := NewAnalyzer(terms.Default(), testDetectConfig())

	doc := model.DocumentText{
		Name: "specs.pdf",
		Type: model.DocSpecifications,
		Pages: []string{
			"Section 51 FORMWORK: 2400 SQFT for the bridge soffit.",
			"Furnish 150 EA baluster units.",
		},
	}

	result := a.Analyze(doc)

	assert.Equal(t, "specs.pdf", result.DocumentName)
	assert.Equal(t, model.DocSpecifications, result.DocumentType)
	assert.Equal(t, 2, result.PageCount)
	assert.NotEmpty(t, result.Terms)
	require.Len(t, result.Quantities, 2)
	assert.Equal(t, 1, result.Quantities[0].PageNumber)
	assert.Equal(t, 2, result.Quantities[1].PageNumber)
	assert.Greater(t, result.TextQuality, 0.0)

	// FORMWORK and BALUSTER are high priority, so info alerts fire.
	var infoAlerts int
	for _, alert := range result.Alerts {
		if alert.Category == model.AlertCategoryTerm {
			infoAlerts++
		}
	}
	assert.Greater(t, infoAlerts, 0)
}

func TestAnalyzeFlagsLargeQuantities(t *testing.T) {
	t.Parallel()
	a := NewAnalyzer(terms.Default(), testDetectConfig())

	doc := model.DocumentText{
		Name:  "plans.pdf",
		Type:  model.DocPlans,
		Pages: []string{"Deck formwork 15000 SQFT total."},
	}

	result := a.Analyze(doc)

	var flagged bool
	for _, alert := range result.Alerts {
		if alert.Category == model.AlertCategoryQuantity && alert.Level == model.AlertWarning {
			flagged = true
		}
	}
	assert.True(t, flagged)
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	t.Parallel()
	a := NewAnalyzer(terms.Default(), testDetectConfig())

	result := a.Analyze(model.DocumentText{Name: "empty.pdf", Type: model.DocSupplemental})
	assert.Zero(t, result.PageCount)
	assert.Empty(t, result.Terms)
	assert.Empty(t, result.Quantities)
	assert.Zero(t, result.TextQuality)
}

func TestTextQuality(t *testing.T) {
	t.Parallel()

	clean := "The contractor shall construct formwork per section 51. All work conforms to the standard specifications."
	assert.Equal(t, 1.0, TextQuality(clean))

	assert.Equal(t, 0.0, TextQuality(""))

	// No sentence punctuation reads as one extraction issue.
	noPunctuation := "formwork falsework blockout baluster railing texture stamped concrete"
	assert.InDelta(t, 0.75, TextQuality(noPunctuation), 1e-9)
}

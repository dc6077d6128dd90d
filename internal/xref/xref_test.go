package xref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pace-estimating/pace-cli/internal/config"
	"github.com/pace-estimating/pace-cli/internal/model"
)

func testXRef() *CrossReferencer {
	return New(config.XRefConfig{VarianceThreshold: 0.15}, DefaultPrecedence())
}

func analysisWith(dt model.DocumentType, quantity float64) *model.DocumentAnalysisResult {
	return &model.DocumentAnalysisResult{
		DocumentName: string(dt) + ".pdf",
		DocumentType: dt,
		Terms: []model.TermMatch{
			{Term: "BALUSTER", Category: "bridge_barrier", SourceDocument: dt, Confidence: 0.9},
		},
		Quantities: []model.ExtractedQuantity{
			{Value: quantity, Unit: "EA", Context: "baluster count", SourceDocument: dt, Confidence: 0.8},
		},
	}
}

func TestMergeEmptyInput(t *testing.T) {
	t.Parallel()
	_, err := testXRef().Merge(nil)
	assert.Error(t, err)
}

func TestMergeFlagsDiscrepancy(t *testing.T) {
	t.Parallel()

	// 100 vs 130 is a 23% variance, above the 15% threshold.
	merged, err := testXRef().Merge([]*model.DocumentAnalysisResult{
		analysisWith(model.DocBidForms, 100),
		analysisWith(model.DocSpecifications, 130),
	})
	require.NoError(t, err)

	v, ok := merged.QuantityVariance["BALUSTER"]
	require.True(t, ok)
	assert.True(t, v.Discrepancy)
	assert.Equal(t, 100.0, v.Official) // bid forms take precedence
	assert.Equal(t, 130.0, v.Derived)
	assert.InDelta(t, 30.0/130.0, v.Variance, 1e-9)
	assert.Equal(t, 0.0, merged.ConsistencyScore)

	var warned bool
	for _, a := range merged.Alerts {
		if a.Level == model.AlertWarning && a.Term == "BALUSTER" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestMergeWithinThreshold(t *testing.T) {
	t.Parallel()

	// 100 vs 108 is a 7.4% variance, within tolerance.
	merged, err := testXRef().Merge([]*model.DocumentAnalysisResult{
		analysisWith(model.DocBidForms, 100),
		analysisWith(model.DocSpecifications, 108),
	})
	require.NoError(t, err)

	v, ok := merged.QuantityVariance["BALUSTER"]
	require.True(t, ok)
	assert.False(t, v.Discrepancy)
	assert.Equal(t, 1.0, merged.ConsistencyScore)
	assert.False(t, merged.LowConfidence)
	assert.Empty(t, merged.Alerts)
}

func TestMergeIdempotent(t *testing.T) {
	t.Parallel()
	c := testXRef()

	inputs := []*model.DocumentAnalysisResult{
		analysisWith(model.DocBidForms, 100),
		analysisWith(model.DocSpecifications, 130),
	}

	first, err := c.Merge(inputs)
	require.NoError(t, err)
	second, err := c.Merge(inputs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMergeSingleDocumentType(t *testing.T) {
	t.Parallel()

	merged, err := testXRef().Merge([]*model.DocumentAnalysisResult{
		analysisWith(model.DocSpecifications, 100),
	})
	require.NoError(t, err)

	// Nothing to compare: neutral consistency, flagged low confidence.
	assert.Equal(t, neutralConsistency, merged.ConsistencyScore)
	assert.True(t, merged.LowConfidence)
	assert.Empty(t, merged.QuantityVariance)
}

func TestMergeUnionsFindings(t *testing.T) {
	t.Parallel()

	merged, err := testXRef().Merge([]*model.DocumentAnalysisResult{
		analysisWith(model.DocBidForms, 100),
		analysisWith(model.DocSpecifications, 100),
	})
	require.NoError(t, err)

	assert.Len(t, merged.Terms, 2)
	assert.Len(t, merged.Quantities, 2)
	assert.Equal(t, []model.DocumentType{model.DocBidForms, model.DocSpecifications}, merged.DocumentTypes)
	assert.True(t, merged.HasDocumentType(model.DocBidForms))
	assert.False(t, merged.HasDocumentType(model.DocPlans))
}

func TestPrecedencePolicyOverride(t *testing.T) {
	t.Parallel()

	// A policy that ranks specifications above bid forms flips which total is
	// official.
	policy := PrecedencePolicy{Order: []model.DocumentType{
		model.DocSpecifications,
		model.DocBidForms,
		model.DocPlans,
		model.DocSupplemental,
	}}
	c := New(config.XRefConfig{VarianceThreshold: 0.15}, policy)

	merged, err := c.Merge([]*model.DocumentAnalysisResult{
		analysisWith(model.DocBidForms, 100),
		analysisWith(model.DocSpecifications, 130),
	})
	require.NoError(t, err)

	v := merged.QuantityVariance["BALUSTER"]
	assert.Equal(t, 130.0, v.Official)
	assert.Equal(t, 100.0, v.Derived)
}

func TestRelativeVariance(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.25, relativeVariance(75, 100), 1e-9)
	assert.InDelta(t, 0.25, relativeVariance(100, 75), 1e-9)
	assert.Equal(t, 0.0, relativeVariance(0, 0))
	assert.Equal(t, 1.0, relativeVariance(0, 50))
}

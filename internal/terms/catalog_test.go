package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pace-estimating/pace-cli/internal/model"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()
	c := Default()

	assert.NotEmpty(t, c.Terms)

	baluster := c.ByName("BALUSTER")
	require.NotNil(t, baluster)
	assert.Equal(t, "bridge_barrier", baluster.Category)
	assert.Equal(t, model.PriorityHigh, baluster.Priority)

	// Lookup is case-insensitive.
	assert.NotNil(t, c.ByName("baluster"))
	assert.Nil(t, c.ByName("NOT_A_TERM"))
}

func TestStrategyFor(t *testing.T) {
	t.Parallel()
	c := Default()

	specs := c.StrategyFor(model.DocSpecifications)
	assert.Equal(t, 1.0, specs.Multiplier)
	assert.True(t, specs.FocusTerms["FORMWORK"])

	// Unknown types fall back to the supplemental strategy.
	unknown := c.StrategyFor(model.DocumentType("mystery"))
	supp := c.StrategyFor(model.DocSupplemental)
	assert.Equal(t, supp.Multiplier, unknown.Multiplier)
}

func TestEveryDocumentTypeHasStrategy(t *testing.T) {
	t.Parallel()
	c := Default()

	for _, dt := range model.AllDocumentTypes {
		s := c.StrategyFor(dt)
		assert.Greater(t, s.Multiplier, 0.0, "document type %s", dt)
	}
}

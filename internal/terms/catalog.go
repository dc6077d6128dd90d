// Package terms holds the static registry of construction terms tracked for
// detection, plus per-document-type detection strategies.
package terms

import (
	"strings"

	"github.com/pace-estimating/pace-cli/internal/model"
)

// Strategy tunes detection for one document type. FocusTerms get an
// additive confidence boost on top of the document-type multiplier.
type Strategy struct {
	Multiplier float64
	FocusBoost float64
	FocusTerms map[string]bool
}

// Catalog is an indexed, immutable collection of terms. Load it once at
// process start and pass it explicitly into each component.
type Catalog struct {
	Terms      []model.Term
	byName     map[string]*model.Term
	strategies map[model.DocumentType]Strategy
}

// New builds a Catalog with indexed lookups from the given terms and
// strategies. Every document type must have a strategy entry.
func New(ts []model.Term, strategies map[model.DocumentType]Strategy) *Catalog {
	c := &Catalog{
		Terms:      ts,
		byName:     make(map[string]*model.Term, len(ts)),
		strategies: strategies,
	}
	for i := range c.Terms {
		c.byName[c.Terms[i].Name] = &c.Terms[i]
	}
	return c
}

// ByName returns the term with the given name, or nil if not tracked.
func (c *Catalog) ByName(name string) *model.Term {
	return c.byName[strings.ToUpper(name)]
}

// StrategyFor returns the detection strategy for a document type. Unknown
// types fall back to the supplemental strategy, the least authoritative.
func (c *Catalog) StrategyFor(dt model.DocumentType) Strategy {
	if s, ok := c.strategies[dt]; ok {
		return s
	}
	return c.strategies[model.DocSupplemental]
}

// Default returns the built-in agency term catalog.
func Default() *Catalog {
	return New(defaultTerms, defaultStrategies)
}

var defaultTerms = []model.Term{
	// Bridge and barrier work.
	{Name: "BALUSTER", Category: "bridge_barrier", Priority: model.PriorityHigh},
	{Name: "TYPE_86H_RAIL", Category: "bridge_barrier", Priority: model.PriorityHigh,
		Patterns: []string{"TYPE 86H RAIL", "86H RAIL"}},
	{Name: "BRIDGE_RAILING", Category: "bridge_barrier", Priority: model.PriorityMedium,
		Patterns: []string{"BRIDGE RAILING", "BRIDGE RAIL"}},

	// Formwork.
	{Name: "FORMWORK", Category: "formwork", Priority: model.PriorityHigh},
	{Name: "FALSEWORK", Category: "formwork", Priority: model.PriorityHigh},
	{Name: "FORM_FACING", Category: "formwork", Priority: model.PriorityHigh,
		Patterns: []string{"FORM FACING"}},
	{Name: "BLOCKOUT", Category: "formwork", Priority: model.PriorityHigh,
		Patterns: []string{"BLOCK OUT", "BLOCK-OUT"}},

	// Concrete and finishes.
	{Name: "STAMPED_CONCRETE", Category: "concrete", Priority: model.PriorityHigh,
		Patterns: []string{"STAMPED CONCRETE"}},
	{Name: "FRACTURED_RIB_TEXTURE", Category: "concrete", Priority: model.PriorityHigh,
		Patterns: []string{"FRACTURED RIB TEXTURE", "FRACTURED RIB"}},
	{Name: "RETAINING_WALL", Category: "concrete", Priority: model.PriorityHigh,
		Patterns: []string{"RETAINING WALL"}},
	{Name: "CONCRETE_FINISHING", Category: "concrete", Priority: model.PriorityMedium,
		Patterns: []string{"CONCRETE FINISHING", "CONCRETE FINISH"}},
	{Name: "ARCHITECTURAL_TREATMENT", Category: "concrete", Priority: model.PriorityHigh,
		Patterns: []string{"ARCHITECTURAL TREATMENT"}},

	// Temporary structures and site protection.
	{Name: "EROSION_CONTROL", Category: "temporary_structures", Priority: model.PriorityHigh,
		Patterns: []string{"EROSION CONTROL"}},
	{Name: "TEMPORARY_STRUCTURES", Category: "temporary_structures", Priority: model.PriorityMedium,
		Patterns: []string{"TEMPORARY STRUCTURES", "TEMPORARY STRUCTURE"}},
	{Name: "CRIBBING", Category: "temporary_structures", Priority: model.PriorityLow},
}

// Document-type multipliers rank source authority for detection confidence:
// specifications carry the most weight, supplemental notes the least.
var defaultStrategies = map[model.DocumentType]Strategy{
	model.DocSpecifications: {
		Multiplier: 1.0,
		FocusBoost: 0.05,
		FocusTerms: focusSet("FORMWORK", "FALSEWORK", "STAMPED_CONCRETE",
			"ARCHITECTURAL_TREATMENT", "FRACTURED_RIB_TEXTURE"),
	},
	model.DocBidForms: {
		Multiplier: 0.95,
		FocusBoost: 0.05,
		FocusTerms: focusSet("BALUSTER", "TYPE_86H_RAIL", "RETAINING_WALL",
			"BRIDGE_RAILING"),
	},
	model.DocPlans: {
		Multiplier: 0.85,
		FocusBoost: 0.05,
		FocusTerms: focusSet("BLOCKOUT", "FORM_FACING", "RETAINING_WALL",
			"EROSION_CONTROL"),
	},
	model.DocSupplemental: {
		Multiplier: 0.75,
		FocusBoost: 0.05,
		FocusTerms: focusSet("TEMPORARY_STRUCTURES", "CRIBBING"),
	},
}

func focusSet(names ...string) map[string]bool {
	s := make(map[string]bool, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

package bid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWasteFactorFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		term     string
		category string
		want     float64
	}{
		{name: "formwork by term", term: "FORMWORK", category: "", want: 0.10},
		{name: "plywood by term", term: "PLYWOOD_SHEATHING", category: "", want: 0.10},
		{name: "lumber by term", term: "2X4_BRACING", category: "", want: 0.10},
		{name: "hardware by term", term: "ANCHOR_BOLT", category: "", want: 0.05},
		{name: "specialty by term", term: "CUSTOM_LINER", category: "", want: 0.15},
		{name: "category fallback", term: "BALUSTER", category: "hardware", want: 0.05},
		{name: "default", term: "BALUSTER", category: "bridge_barrier", want: DefaultWasteFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, WasteFactorFor(tt.term, tt.category))
		})
	}
}

func TestUnitFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		term string
		want string
	}{
		{"BALUSTER", "EA"},
		{"baluster", "EA"}, // case-insensitive
		{"FORMWORK", "SQFT"},
		{"STAMPED_CONCRETE", "SQFT"},
		{"EROSION_CONTROL", "LF"},
		{"BRIDGE_RAILING", "LF"},
		{"SOUND_WALL", "SQFT"},   // heuristic: WALL
		{"GUARD_RAIL", "LF"},     // heuristic: RAIL
		{"CONCRETE_MIX", "CY"},   // heuristic: CONCRETE
		{"ANCHOR_PIECE", "EA"},   // heuristic: PIECE
		{"MISC_ITEM", "EA"},      // default
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, UnitFor(tt.term))
		})
	}
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWasteFactorFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.05, WasteFactorFor("CONCRETE"))
	assert.Equal(t, 0.05, WasteFactorFor("concrete")) // case-insensitive
	assert.Equal(t, 0.15, WasteFactorFor("FORMWORK"))
	assert.Equal(t, 0.00, WasteFactorFor("EARTHWORK"))
	assert.Equal(t, DefaultWasteFactor, WasteFactorFor("NOT_A_MATERIAL"))
}

func TestClassifyMaterial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		context string
		want    string
	}{
		{"formwork for abutment walls", "FORMWORK"},
		{"blockout at rail post", "FORMWORK"},
		{"stamped concrete finish", "CONCRETE"},
		{"place structural concrete", "CONCRETE"},
		{"epoxy coated rebar", "STEEL"},
		{"2x4 stud framing", "LUMBER"},
		{"hollow metal door frame", "DOORS"},
		{"vinyl window assembly", "WINDOWS"},
		{"asphalt paving section", "PAVING"},
		{"roadway excavation", "EARTHWORK"},
		{"miscellaneous site items", "GENERAL"},
	}

	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyMaterial(tt.context))
		})
	}
}

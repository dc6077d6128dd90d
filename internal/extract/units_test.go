package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		quantity float64
		from     string
		to       string
		size     string
		want     float64
	}{
		{name: "SF to SY", quantity: 900, from: "SF", to: "SY", want: 100},
		{name: "SY to SF", quantity: 100, from: "SY", to: "SF", want: 900},
		{name: "SQFT to SY", quantity: 90, from: "SQFT", to: "SY", want: 10},
		{name: "CF to CY", quantity: 54, from: "CF", to: "CY", want: 2},
		{name: "CY to CF", quantity: 2, from: "CY", to: "CF", want: 54},
		{name: "LF to BF 2x4", quantity: 300, from: "LF", to: "BF", size: "2x4", want: 200},
		{name: "LF to BF 2x6", quantity: 300, from: "LF", to: "BF", size: "2x6", want: 300},
		{name: "LF to BF 2x12", quantity: 100, from: "LF", to: "BF", size: "2x12", want: 200},
		{name: "same unit", quantity: 42, from: "EA", to: "EA", want: 42},
		{name: "unknown pair is a no-op", quantity: 42, from: "EA", to: "TON", want: 42},
		{name: "unknown lumber size is a no-op", quantity: 100, from: "LF", to: "BF", size: "3x5", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Convert(tt.quantity, tt.from, tt.to, tt.size)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()

	// SF -> SY -> SF returns the original value.
	sy := Convert(1234.5, "SF", "SY", "")
	back := Convert(sy, "SY", "SF", "")
	assert.InDelta(t, 1234.5, back, 1e-9)
}

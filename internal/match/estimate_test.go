package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pace-estimating/pace-cli/internal/model"
)

func TestEstimatePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		product model.CatalogProduct
		want    float64
		wantOK  bool
	}{
		{
			name:    "formwork base",
			product: model.CatalogProduct{Name: "Form Panel", Category: "formwork"},
			want:    3.50, wantOK: true,
		},
		{
			name:    "formwork sized and rated",
			product: model.CatalogProduct{Name: "Marine 5x10 Form Panel", Category: "formwork"},
			want:    6.83, wantOK: true, // 3.50 * 1.5 * 1.3, rounded to cents
		},
		{
			name:    "lumber pressure treated 2x6",
			product: model.CatalogProduct{Name: "2x6 Pressure Treated", Category: "lumber"},
			want:    2.28, wantOK: true, // 1.25 * 1.4 * 1.3
		},
		{
			name:    "largest size cue wins",
			product: model.CatalogProduct{Name: "2x4 and 2x12 Bundle", Category: "lumber"},
			want:    3.25, wantOK: true, // 1.25 * 2.6
		},
		{
			name:    "unknown category",
			product: model.CatalogProduct{Name: "Widget", Category: "office"},
			want:    0, wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := EstimatePrice(tt.product)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

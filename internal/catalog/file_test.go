package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSourceYAML(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, "catalog.yaml", `
supplier: Western Forms
products:
  - id: PLY-001
    name: CDX Plywood Form Panel
    category: formwork
    keywords: [plywood, form, cdx]
    price: 52.00
  - id: LBR-001
    name: 2x4 Construction Grade Lumber
    category: lumber
    supplier: Pacific Lumber
  - id: ""
    name: Invalid product without id
`)

	products, err := NewFileSource(path).Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "PLY-001", products[0].ID)
	require.NotNil(t, products[0].Price)
	assert.Equal(t, 52.00, *products[0].Price)
	// File-level supplier fills in when the product has none.
	assert.Equal(t, "Western Forms", products[0].Supplier)
	assert.Equal(t, "Pacific Lumber", products[1].Supplier)
	assert.Nil(t, products[1].Price)
}

func TestFileSourceJSON(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, "catalog.json", `{
		"supplier": "Western Forms",
		"products": [
			{"id": "HW-001", "name": "Form Tie", "category": "hardware", "price": 1.85}
		]
	}`)

	products, err := NewFileSource(path).Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "HW-001", products[0].ID)
}

func TestFileSourceMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.yaml")).Products(context.Background())
	assert.Error(t, err)
}

func TestFileSourceMalformed(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, "catalog.yaml", "products: {not: [valid")
	_, err := NewFileSource(path).Products(context.Background())
	assert.Error(t, err)
}

package catalog

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pace-estimating/pace-cli/internal/model"
)

// catalogFile is the on-disk document shape shared by YAML and JSON
// catalogs.
type catalogFile struct {
	Supplier string                 `yaml:"supplier" json:"supplier"`
	Products []model.CatalogProduct `yaml:"products" json:"products"`
}

// FileSource reads the catalog from a local YAML or JSON file. The file is
// re-read on every Products call so catalog edits apply without a restart.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path. Format is chosen
// by extension; anything that is not .json parses as YAML.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Products loads and validates the product list.
func (s *FileSource) Products(ctx context.Context) ([]model.CatalogProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "catalog: load file")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read %s", s.path)
	}

	var doc catalogFile
	if strings.HasSuffix(s.path, ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: parse %s", s.path)
	}

	products := make([]model.CatalogProduct, 0, len(doc.Products))
	for _, p := range doc.Products {
		if p.ID == "" || p.Name == "" {
			zap.L().Warn("catalog: skipping product without id or name",
				zap.String("id", p.ID), zap.String("name", p.Name))
			continue
		}
		if p.Supplier == "" {
			p.Supplier = doc.Supplier
		}
		products = append(products, p)
	}

	zap.L().Info("catalog: file loaded",
		zap.String("path", s.path),
		zap.Int("products", len(products)),
	)
	return products, nil
}

// Package catalog loads the product catalog the matcher prices against,
// from a YAML/JSON file or a PostgreSQL repository.
package catalog

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/pace-estimating/pace-cli/internal/config"
	"github.com/pace-estimating/pace-cli/internal/model"
)

// Source yields the read-only product list for a bid run.
type Source interface {
	Products(ctx context.Context) ([]model.CatalogProduct, error)
}

// Open returns the Source selected by configuration.
func Open(ctx context.Context, cfg config.CatalogConfig) (Source, func(), error) {
	switch cfg.Driver {
	case "file", "":
		return NewFileSource(cfg.Path), func() {}, nil
	case "postgres":
		repo, err := NewPostgresRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		return nil, nil, eris.Errorf("catalog: unknown driver %q", cfg.Driver)
	}
}

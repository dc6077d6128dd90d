package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pace-estimating/pace-cli/internal/db"
	"github.com/pace-estimating/pace-cli/internal/model"
)

const productColumns = `id, name, description, category, keywords, price, supplier, availability`

const createProductsTable = `
CREATE TABLE IF NOT EXISTS catalog_products (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL DEFAULT '',
	keywords     TEXT[] NOT NULL DEFAULT '{}',
	price        DOUBLE PRECISION,
	supplier     TEXT NOT NULL DEFAULT '',
	availability TEXT NOT NULL DEFAULT '',
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresRepository serves and maintains the shared product catalog.
type PostgresRepository struct {
	pool db.Pool
}

// NewPostgresRepository connects a pool to the catalog database.
func NewPostgresRepository(ctx context.Context, connString string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: connect postgres")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "catalog: ping postgres")
	}
	return &PostgresRepository{pool: pool}, nil
}

// NewPostgresRepositoryWithPool wraps an existing pool; used by tests.
func NewPostgresRepositoryWithPool(pool db.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Close releases the connection pool.
func (r *PostgresRepository) Close() {
	r.pool.Close()
}

// EnsureSchema creates the catalog table when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createProductsTable); err != nil {
		return eris.Wrap(err, "catalog: ensure schema")
	}
	return nil
}

// Products returns every catalog product ordered by insertion id so match
// tie-breaking stays deterministic.
func (r *PostgresRepository) Products(ctx context.Context) ([]model.CatalogProduct, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM catalog_products ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: list products")
	}
	defer rows.Close()

	var products []model.CatalogProduct
	for rows.Next() {
		var p model.CatalogProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Keywords, &p.Price, &p.Supplier, &p.Availability); err != nil {
			return nil, eris.Wrap(err, "catalog: scan product")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "catalog: iterate products")
	}

	return products, nil
}

// Import bulk-upserts products from a file catalog into the repository.
func (r *PostgresRepository) Import(ctx context.Context, products []model.CatalogProduct) (int64, error) {
	rows := make([][]any, len(products))
	for i, p := range products {
		rows[i] = []any{p.ID, p.Name, p.Description, p.Category, p.Keywords, p.Price, p.Supplier, p.Availability}
	}

	n, err := db.BulkUpsert(ctx, r.pool, db.UpsertConfig{
		Table:        "catalog_products",
		Columns:      []string{"id", "name", "description", "category", "keywords", "price", "supplier", "availability"},
		ConflictKeys: []string{"id"},
	}, rows)
	if err != nil {
		return 0, eris.Wrap(err, "catalog: import")
	}

	zap.L().Info("catalog: imported", zap.Int64("products", n))
	return n, nil
}

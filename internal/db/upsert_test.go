package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUpsertConfig() UpsertConfig {
	return UpsertConfig{
		Table:        "catalog_products",
		Columns:      []string{"id", "name", "price"},
		ConflictKeys: []string{"id"},
	}
}

func TestBulkUpsert(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := [][]any{
		{"PLY-001", "CDX Plywood", 52.00},
		{"LBR-001", "2x4 Lumber", 8.50},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TEMP TABLE "_tmp_upsert_catalog_products"`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectCopyFrom(pgx.Identifier{"_tmp_upsert_catalog_products"}, []string{"id", "name", "price"}).
		WillReturnResult(2)
	mock.ExpectExec(`INSERT INTO "catalog_products" \("id", "name", "price"\) SELECT .+ ON CONFLICT \("id"\) DO UPDATE SET`).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()
	mock.ExpectRollback()

	n, err := BulkUpsert(context.Background(), mock, testUpsertConfig(), rows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpsertEmptyRows(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	n, err := BulkUpsert(context.Background(), mock, testUpsertConfig(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBulkUpsertValidation(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := [][]any{{"PLY-001"}}

	_, err = BulkUpsert(context.Background(), mock, UpsertConfig{Table: "t", ConflictKeys: []string{"id"}}, rows)
	assert.Error(t, err)

	_, err = BulkUpsert(context.Background(), mock, UpsertConfig{Table: "t", Columns: []string{"id"}}, rows)
	assert.Error(t, err)
}

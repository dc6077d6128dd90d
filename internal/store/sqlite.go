package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/pace-estimating/pace-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS bid_runs (
	id             TEXT PRIMARY KEY,
	project_name   TEXT NOT NULL,
	project_number TEXT NOT NULL,
	total          REAL NOT NULL,
	quality_score  REAL NOT NULL,
	grade          TEXT NOT NULL,
	bid            TEXT NOT NULL,
	quality        TEXT NOT NULL,
	created_at     DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_bid_runs_project_name ON bid_runs(project_name);
CREATE INDEX IF NOT EXISTS idx_bid_runs_grade ON bid_runs(grade);
CREATE INDEX IF NOT EXISTS idx_bid_runs_created_at ON bid_runs(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun persists a completed bid with its quality assessment.
func (s *SQLiteStore) SaveRun(ctx context.Context, b *model.Bid, metrics model.QualityMetrics) error {
	bidJSON, err := json.Marshal(b)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal bid")
	}
	qualityJSON, err := json.Marshal(metrics)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal quality")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO bid_runs (id, project_name, project_number, total, quality_score, grade, bid, quality, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.RunID, b.ProjectName, b.ProjectNumber,
		b.PricingSummary.Total, metrics.OverallScore, metrics.Grade,
		string(bidJSON), string(qualityJSON), b.GeneratedAt,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: insert run %s", b.RunID)
	}
	return nil
}

// GetRun fetches one persisted run with its full bid payload.
func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*RunRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, project_name, project_number, total, quality_score, grade, bid, quality, created_at
		 FROM bid_runs WHERE id = ?`,
		runID,
	)
	return scanRun(row)
}

// ListRuns returns persisted runs newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context, filter RunFilter) ([]RunRecord, error) {
	query := `SELECT id, project_name, project_number, total, quality_score, grade, bid, quality, created_at
		 FROM bid_runs WHERE 1=1`
	var args []any

	if filter.ProjectName != "" {
		query += ` AND project_name = ?`
		args = append(args, filter.ProjectName)
	}
	if filter.Grade != "" {
		query += ` AND grade = ?`
		args = append(args, filter.Grade)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}
	return records, eris.Wrap(rows.Err(), "sqlite: list runs iterate")
}

// DeleteRun removes a persisted run.
func (s *SQLiteStore) DeleteRun(ctx context.Context, runID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bid_runs WHERE id = ?`, runID)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete run %s", runID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Errorf("run not found: %s", runID)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable) (*RunRecord, error) {
	var r RunRecord
	var bidJSON, qualityJSON string

	err := row.Scan(&r.ID, &r.ProjectName, &r.ProjectNumber, &r.Total, &r.QualityScore, &r.Grade, &bidJSON, &qualityJSON, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.New("run not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan run")
	}

	r.Bid = &model.Bid{}
	if err := json.Unmarshal([]byte(bidJSON), r.Bid); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal bid")
	}
	r.Quality = &model.QualityMetrics{}
	if err := json.Unmarshal([]byte(qualityJSON), r.Quality); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal quality")
	}
	return &r, nil
}

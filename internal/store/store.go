// Package store persists completed bid runs locally so past bids can be
// listed, re-exported, and compared.
package store

import (
	"context"
	"time"

	"github.com/pace-estimating/pace-cli/internal/model"
)

// RunRecord is one persisted bid run.
type RunRecord struct {
	ID            string                `json:"id"`
	ProjectName   string                `json:"project_name"`
	ProjectNumber string                `json:"project_number"`
	Total         float64               `json:"total"`
	QualityScore  float64               `json:"quality_score"`
	Grade         string                `json:"grade"`
	Bid           *model.Bid            `json:"bid,omitempty"`
	Quality       *model.QualityMetrics `json:"quality,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// RunFilter narrows ListRuns output.
type RunFilter struct {
	ProjectName string
	Grade       string
	Limit       int
	Offset      int
}

// Store is the bid-run persistence interface.
type Store interface {
	SaveRun(ctx context.Context, b *model.Bid, metrics model.QualityMetrics) error
	GetRun(ctx context.Context, runID string) (*RunRecord, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]RunRecord, error)
	DeleteRun(ctx context.Context, runID string) error
	Close() error
}

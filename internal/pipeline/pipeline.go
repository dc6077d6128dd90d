// Package pipeline orchestrates the specification-to-bid flow: per-document
// analysis fans out concurrently, then cross-referencing, pricing, and
// quality validation run strictly in sequence.
package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pace-estimating/pace-cli/internal/bid"
	"github.com/pace-estimating/pace-cli/internal/config"
	"github.com/pace-estimating/pace-cli/internal/detect"
	"github.com/pace-estimating/pace-cli/internal/match"
	"github.com/pace-estimating/pace-cli/internal/model"
	"github.com/pace-estimating/pace-cli/internal/quality"
	"github.com/pace-estimating/pace-cli/internal/terms"
	"github.com/pace-estimating/pace-cli/internal/xref"
)

// Result bundles everything a bid run produces.
type Result struct {
	Documents      []*model.DocumentAnalysisResult `json:"documents"`
	CrossReference *model.CrossReferenceResult     `json:"cross_reference"`
	Bid            *model.Bid                      `json:"bid"`
	Quality        model.QualityMetrics            `json:"quality"`
}

// Pipeline wires the analysis stages together for repeated runs. Safe for
// concurrent use; all per-run state lives in the stage outputs.
type Pipeline struct {
	analyzer  *detect.Analyzer
	crossRef  *xref.CrossReferencer
	engine    *bid.Engine
	validator *quality.Validator
}

// New builds a Pipeline from configuration, the term catalog, and the
// product list.
func New(cfg *config.Config, catalog *terms.Catalog, products []model.CatalogProduct) *Pipeline {
	return &Pipeline{
		analyzer:  detect.NewAnalyzer(catalog, cfg.Detect),
		crossRef:  xref.New(cfg.XRef, xref.DefaultPrecedence()),
		engine:    bid.New(cfg.Bid, match.New(products)),
		validator: quality.New(cfg.Quality),
	}
}

// Run executes the full flow and returns a best-effort result. Per-document
// and per-term problems surface as alerts; only an empty document set is
// fatal.
func (p *Pipeline) Run(ctx context.Context, projectName, projectNumber string, docs []model.DocumentText) (*Result, error) {
	if len(docs) == 0 {
		return nil, eris.New("pipeline: no documents provided")
	}

	analyses, err := p.AnalyzeDocuments(ctx, docs)
	if err != nil {
		return nil, err
	}

	merged, err := p.crossRef.Merge(analyses)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: cross-reference")
	}

	b, err := p.engine.Generate(projectName, projectNumber, merged)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: generate bid")
	}

	metrics := p.validator.Validate(b, merged)

	zap.L().Info("pipeline: run complete",
		zap.String("run_id", b.RunID),
		zap.Int("documents", len(docs)),
		zap.Int("line_items", len(b.LineItems)),
		zap.Float64("quality_score", metrics.OverallScore),
	)

	return &Result{
		Documents:      analyses,
		CrossReference: merged,
		Bid:            b,
		Quality:        metrics,
	}, nil
}

// AnalyzeDocuments fans document analysis out across goroutines. Document
// analysis shares no mutable state, so the only coordination is the join.
func (p *Pipeline) AnalyzeDocuments(ctx context.Context, docs []model.DocumentText) ([]*model.DocumentAnalysisResult, error) {
	results := make([]*model.DocumentAnalysisResult, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.analyzer.Analyze(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "pipeline: analyze documents")
	}
	return results, nil
}

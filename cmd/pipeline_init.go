package main

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pace-estimating/pace-cli/internal/catalog"
	"github.com/pace-estimating/pace-cli/internal/docsource"
	"github.com/pace-estimating/pace-cli/internal/model"
	"github.com/pace-estimating/pace-cli/internal/pipeline"
	"github.com/pace-estimating/pace-cli/internal/store"
	"github.com/pace-estimating/pace-cli/internal/terms"
)

// pipelineEnv bundles the long-lived collaborators a command needs.
type pipelineEnv struct {
	Pipeline *pipeline.Pipeline
	cleanup  func()
}

// Close releases catalog resources.
func (e *pipelineEnv) Close() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// initPipeline loads the product catalog and assembles the bid pipeline.
func initPipeline(ctx context.Context) (*pipelineEnv, error) {
	src, cleanup, err := catalog.Open(ctx, cfg.Catalog)
	if err != nil {
		return nil, eris.Wrap(err, "init catalog")
	}

	products, err := src.Products(ctx)
	if err != nil {
		cleanup()
		return nil, eris.Wrap(err, "load products")
	}

	return &pipelineEnv{
		Pipeline: pipeline.New(cfg, terms.Default(), products),
		cleanup:  cleanup,
	}, nil
}

// initStore opens the local run store and applies migrations.
func initStore(ctx context.Context) (*store.SQLiteStore, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

// addDocumentFlags registers the per-type document path flags shared by the
// analyze, bid, and validate commands.
func addDocumentFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("specs", nil, "specification document paths (pdf or text)")
	cmd.Flags().StringSlice("bid-forms", nil, "bid form document paths")
	cmd.Flags().StringSlice("plans", nil, "construction plan document paths")
	cmd.Flags().StringSlice("supplemental", nil, "supplemental document paths")
}

// loadDocuments reads every document named by the flags into page-oriented
// text, tagged with its document type.
func loadDocuments(cmd *cobra.Command) ([]model.DocumentText, error) {
	groups := []struct {
		flag    string
		docType model.DocumentType
	}{
		{"specs", model.DocSpecifications},
		{"bid-forms", model.DocBidForms},
		{"plans", model.DocPlans},
		{"supplemental", model.DocSupplemental},
	}

	var docs []model.DocumentText
	for _, g := range groups {
		paths, _ := cmd.Flags().GetStringSlice(g.flag)
		for _, path := range paths {
			doc, err := docsource.Load(path, g.docType)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
	}

	if len(docs) == 0 {
		return nil, eris.New("no documents provided; use --specs, --bid-forms, --plans, or --supplemental")
	}
	return docs, nil
}

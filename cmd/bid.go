package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pace-estimating/pace-cli/internal/export"
	"github.com/pace-estimating/pace-cli/internal/pipeline"
)

var bidCmd = &cobra.Command{
	Use:   "bid",
	Short: "Generate a priced bid from a document package",
	Long:  "Runs the full pipeline: extraction, cross-referencing, product matching, pricing, and quality validation. Persists the run and optionally exports JSON and XLSX artifacts.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		docs, err := loadDocuments(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		number, _ := cmd.Flags().GetString("number")
		if name == "" {
			return eris.New("--name is required")
		}

		if markup, _ := cmd.Flags().GetFloat64("markup"); markup > 0 {
			cfg.Bid.MarkupPercentage = markup
		}
		if cmd.Flags().Changed("delivery") {
			delivery, _ := cmd.Flags().GetFloat64("delivery")
			cfg.Bid.DeliveryOverride = &delivery
		}

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		result, err := env.Pipeline.Run(ctx, name, number, docs)
		if err != nil {
			return eris.Wrap(err, "bid")
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.SaveRun(ctx, result.Bid, result.Quality); err != nil {
			return eris.Wrap(err, "save run")
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := export.WriteJSON(out, result); err != nil {
				return err
			}
		}
		if xlsxPath, _ := cmd.Flags().GetString("xlsx"); xlsxPath != "" {
			if err := export.WriteWorkbook(xlsxPath, result.Bid, result.Quality); err != nil {
				return err
			}
		}

		formatBidSummary(result)
		return nil
	},
}

func init() {
	addDocumentFlags(bidCmd)
	bidCmd.Flags().String("name", "", "project name (required)")
	bidCmd.Flags().String("number", "", "project number")
	bidCmd.Flags().Float64("markup", 0, "markup percentage override (e.g. 0.20)")
	bidCmd.Flags().Float64("delivery", 0, "fixed delivery fee override")
	bidCmd.Flags().String("out", "", "write full result JSON to this path")
	bidCmd.Flags().String("xlsx", "", "write bid workbook to this path")
	rootCmd.AddCommand(bidCmd)
}

// formatBidSummary prints the pricing and quality headline to stdout.
func formatBidSummary(result *pipeline.Result) {
	p := message.NewPrinter(language.English)
	b := result.Bid
	s := b.PricingSummary

	p.Fprintf(os.Stdout, "Bid %s for %s\n", b.RunID, b.ProjectName)
	p.Fprintf(os.Stdout, "  Line items:     %d (%d high priority)\n", s.LineItemCount, s.HighPriorityItems)
	p.Fprintf(os.Stdout, "  Subtotal:       $%.2f\n", s.Subtotal)
	p.Fprintf(os.Stdout, "  Markup:         $%.2f\n", s.MarkupAmount)
	p.Fprintf(os.Stdout, "  Waste:          $%.2f\n", s.WasteAdjustments)
	p.Fprintf(os.Stdout, "  Delivery:       $%.2f\n", s.DeliveryFee)
	p.Fprintf(os.Stdout, "  Total:          $%.2f\n", s.Total)
	p.Fprintf(os.Stdout, "  Confidence:     %.0f%%\n", b.ConfidenceReport.OverallConfidence*100)
	p.Fprintf(os.Stdout, "  Quality:        %.1f (%s)\n", result.Quality.OverallScore, result.Quality.Grade)

	for _, rec := range b.ConfidenceReport.Recommendations {
		fmt.Fprintf(os.Stdout, "  - %s\n", rec)
	}
}

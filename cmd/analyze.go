package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze documents without generating a bid",
	Long:  "Runs term and quantity extraction plus cross-referencing over the given documents and prints the analysis as JSON.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		docs, err := loadDocuments(cmd)
		if err != nil {
			return err
		}

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		analyses, err := env.Pipeline.AnalyzeDocuments(ctx, docs)
		if err != nil {
			return eris.Wrap(err, "analyze")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analyses)
	},
}

func init() {
	addDocumentFlags(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

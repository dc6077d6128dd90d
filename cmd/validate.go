package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the pipeline and report quality only",
	Long:  "Generates a bid internally, then prints the quality assessment without persisting or exporting anything.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		docs, err := loadDocuments(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = "validation"
		}

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		result, err := env.Pipeline.Run(ctx, name, "", docs)
		if err != nil {
			return eris.Wrap(err, "validate")
		}

		q := result.Quality
		fmt.Fprint(os.Stdout, q.ValidationSummary)
		fmt.Fprintf(os.Stdout, "\nScores: overall %.1f, accuracy %.1f, completeness %.1f, consistency %.1f, confidence %.1f\n",
			q.OverallScore, q.AccuracyScore, q.CompletenessScore, q.ConsistencyScore, q.ConfidenceScore)
		for _, a := range q.Alerts {
			fmt.Fprintf(os.Stdout, "  [%s] %s: %s\n", a.Level, a.Category, a.Message)
		}
		return nil
	},
}

func init() {
	addDocumentFlags(validateCmd)
	validateCmd.Flags().String("name", "", "project name for the validation run")
	rootCmd.AddCommand(validateCmd)
}

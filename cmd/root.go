package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pace-estimating/pace-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pace-cli",
	Short: "Construction specification-to-bid pipeline",
	Long:  "Extracts terms and quantities from specification documents, cross-references bid packages, matches catalog products, and produces priced, quality-scored bids.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

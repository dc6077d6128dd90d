package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pace-estimating/pace-cli/internal/catalog"
	"github.com/pace-estimating/pace-cli/internal/model"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and manage the product catalog",
}

// -- catalog list --

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog products",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		src, cleanup, err := catalog.Open(ctx, cfg.Catalog)
		if err != nil {
			return err
		}
		defer cleanup()

		products, err := src.Products(ctx)
		if err != nil {
			return eris.Wrap(err, "catalog list")
		}

		if len(products) == 0 {
			fmt.Fprintln(os.Stderr, "No products found.")
			return nil
		}

		formatProductList(os.Stdout, products)
		return nil
	},
}

// -- catalog import --

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a catalog file into PostgreSQL",
	Long:  "Reads products from a YAML or JSON catalog file and upserts them into the configured PostgreSQL catalog.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if cfg.Catalog.DatabaseURL == "" {
			return eris.New("catalog import requires catalog.database_url")
		}

		products, err := catalog.NewFileSource(args[0]).Products(ctx)
		if err != nil {
			return err
		}

		repo, err := catalog.NewPostgresRepository(ctx, cfg.Catalog.DatabaseURL)
		if err != nil {
			return err
		}
		defer repo.Close()

		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}

		n, err := repo.Import(ctx, products)
		if err != nil {
			return eris.Wrap(err, "catalog import")
		}

		fmt.Fprintf(os.Stdout, "Imported %d products.\n", n)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	rootCmd.AddCommand(catalogCmd)
}

// formatProductList writes a tabular product listing to w.
func formatProductList(out io.Writer, products []model.CatalogProduct) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSUPPLIER")
	_, _ = fmt.Fprintln(w, "--\t----\t--------\t-----\t--------")

	for _, p := range products {
		price := "-"
		if p.Price != nil {
			price = fmt.Sprintf("$%.2f", *p.Price)
		}

		name := p.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, name, p.Category, price, p.Supplier)
	}
	_ = w.Flush()
}

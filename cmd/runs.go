package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pace-estimating/pace-cli/internal/export"
	"github.com/pace-estimating/pace-cli/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect bid run history",
	Long:  "Commands for listing, viewing, exporting, and deleting persisted bid runs.",
}

// -- runs list --

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bid runs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		project, _ := cmd.Flags().GetString("project")
		grade, _ := cmd.Flags().GetString("grade")
		limit, _ := cmd.Flags().GetInt("limit")

		runs, err := st.ListRuns(ctx, store.RunFilter{
			ProjectName: project,
			Grade:       grade,
			Limit:       limit,
		})
		if err != nil {
			return eris.Wrap(err, "runs list")
		}

		if len(runs) == 0 {
			fmt.Fprintln(os.Stderr, "No runs found.")
			return nil
		}

		formatRunsList(os.Stdout, runs)
		return nil
	},
}

// -- runs show --

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show full details of a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		run, err := st.GetRun(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "runs show")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	},
}

// -- runs export --

var runsExportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Re-export a persisted run as an XLSX workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		run, err := st.GetRun(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "runs export")
		}
		if run.Bid == nil || run.Quality == nil {
			return eris.Errorf("run %s has no stored bid payload", args[0])
		}

		out, _ := cmd.Flags().GetString("xlsx")
		if out == "" {
			out = fmt.Sprintf("bid-%s.xlsx", run.ID)
		}

		if err := export.WriteWorkbook(out, run.Bid, *run.Quality); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", out)
		return nil
	},
}

// -- runs delete --

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a persisted run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.DeleteRun(ctx, args[0]); err != nil {
			return eris.Wrap(err, "runs delete")
		}
		fmt.Fprintf(os.Stdout, "Deleted run %s\n", args[0])
		return nil
	},
}

func init() {
	runsListCmd.Flags().String("project", "", "filter by project name")
	runsListCmd.Flags().String("grade", "", "filter by grade (Excellent, Good, Fair, Poor, Inadequate)")
	runsListCmd.Flags().Int("limit", 50, "max number of runs to display")

	runsExportCmd.Flags().String("xlsx", "", "output workbook path (default bid-<run-id>.xlsx)")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsDeleteCmd)
	rootCmd.AddCommand(runsCmd)
}

// formatRunsList writes a tabular list of runs to w.
func formatRunsList(out io.Writer, runs []store.RunRecord) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tPROJECT\tTOTAL\tQUALITY\tGRADE\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t-------\t-----\t-------\t-----\t-------")

	for _, r := range runs {
		project := r.ProjectName
		if len(project) > 30 {
			project = project[:27] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t$%.2f\t%.1f\t%s\t%s\n",
			truncateID(r.ID),
			project,
			r.Total,
			r.QualityScore,
			r.Grade,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

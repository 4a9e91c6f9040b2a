// ABOUTME: Root Cobra command for the asa24 CLI.
// ABOUTME: Loads configuration and the dataset snapshot via PersistentPreRunE.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/config"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/dataset"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/report"
)

var (
	dataDirFlag   string
	subjectFilter []string

	ds *dataset.Dataset
)

var rootCmd = &cobra.Command{
	Use:   "asa24",
	Short: "Multi-subject ASA24 dietary recall analyzer",
	Long: `asa24 analyzes ASA24 (Automated Self-Administered 24-Hour Dietary
Assessment Tool) export files for multiple subjects and recall visits.

WHAT IT PRODUCES:

  Nutrients     daily energy, macro, vitamin, and mineral intake per visit
  Food Groups   cup/oz equivalents for fruits, vegetables, grains, dairy...
  Supplements   supplement intake records
  Meals         item counts and macro totals per meal occasion
  Food Items    the full item-level detail with meal and visit labels
  HEI           13-component HEI-2015 diet quality score (0-100)

QUICK START:

  $ asa24 subjects                       # List subjects in the data directory
  $ asa24 nutrients                      # Nutrient summary for everyone
  $ asa24 hei -s momma001                # HEI-2015 scores for one subject
  $ asa24 meals -s momma001 -s momma002  # Meal summary for two subjects
  $ asa24 export hei --format csv        # Export scores as CSV

DATA DIRECTORY:

  Export files are CSVs named like STUDY_..._Totals.csv; the trailing
  segment picks the table (Totals, Items, INS). The directory comes from
  --data, or ~/.config/asa24/config.json, or ./data.

MCP INTEGRATION:

  Run 'asa24 mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "asa24": { "command": "asa24", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the data directory skip the load.
		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		dir := dataDirFlag
		if dir == "" {
			dir = cfg.GetDataDir()
		}

		ds, err = dataset.Load(dir)
		if err != nil {
			return fmt.Errorf("failed to load data directory: %w", err)
		}

		return validateSubjects(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// validateSubjects warns about requested subjects absent from the index.
// They simply match zero rows, which is usually a typo worth flagging.
func validateSubjects(cmd *cobra.Command) error {
	if len(subjectFilter) == 0 {
		return nil
	}
	known := map[string]struct{}{}
	for _, id := range ds.Subjects() {
		known[id] = struct{}{}
	}
	faint := color.New(color.Faint)
	for _, id := range subjectFilter {
		if _, ok := known[id]; !ok {
			faint.Fprintf(cmd.ErrOrStderr(), "warning: subject %q not found in loaded data\n", id)
		}
	}
	return nil
}

// printReport renders a report to the command output.
func printReport(cmd *cobra.Command, r *report.Report) error {
	out := cmd.OutOrStdout()
	if r.Empty() {
		fmt.Fprintln(out, "No records found.")
		return nil
	}
	fmt.Fprintln(out, renderTable(r.Columns, r.Rows, columnAligns(r)))
	color.New(color.Faint).Fprintf(out, "%d rows\n", r.Len())
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDirFlag, "data", "d", "", "directory containing ASA24 CSV export files")
	rootCmd.PersistentFlags().StringSliceVarP(&subjectFilter, "subjects", "s", nil, "restrict analysis to these subject ids (repeatable)")
}

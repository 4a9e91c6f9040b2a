// ABOUTME: CLI command for exporting reports to files or stdout.
// ABOUTME: Wraps any report in a stamped envelope and serializes it.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/export"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/hei"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/report"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <report>",
	Short: "Export a report as JSON, YAML, CSV, or Markdown",
	Long: `Export a report in a machine-readable format. The report argument is
one of:

  nutrients     daily nutrient intake summary
  food-groups   food group intake summary
  supplements   supplement intake records
  meals         per-meal item counts and macro totals
  items         detailed food item list
  hei           HEI-2015 diet quality scores

JSON and YAML exports carry an envelope with a version, export id, and
timestamp; CSV and Markdown carry just the tabular payload.

Examples:
  asa24 export hei --format csv --out scores.csv
  asa24 export nutrients -s momma001 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := reportByName(args[0])
		if err != nil {
			return err
		}

		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		env := export.NewEnvelope(r)
		if exportOut == "" {
			data, err := env.Render(format)
			if err != nil {
				return fmt.Errorf("failed to render export: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		if err := env.WriteFile(exportOut, format); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", r.Len(), exportOut)
		return nil
	},
}

// reportByName builds the named report against the loaded dataset.
func reportByName(name string) (*report.Report, error) {
	switch name {
	case "nutrients":
		return report.NutrientSummary(ds, subjectFilter)
	case "food-groups":
		return report.FoodGroupSummary(ds, subjectFilter)
	case "supplements":
		return report.SupplementSummary(ds, subjectFilter)
	case "meals":
		return report.MealSummary(ds, subjectFilter)
	case "items":
		return report.FoodItems(ds, subjectFilter)
	case "hei":
		scores, err := hei.Scores(ds, subjectFilter)
		if err != nil {
			return nil, err
		}
		return hei.ToReport(scores), nil
	default:
		return nil, fmt.Errorf("unknown report: %q (expected nutrients, food-groups, supplements, meals, items, or hei)", name)
	}
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format (json, yaml, csv, markdown)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

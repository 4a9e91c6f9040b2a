// ABOUTME: CLI command for the daily nutrient intake summary.
// ABOUTME: Projects the Totals table keyed by subject and visit.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/report"
)

var nutrientsCmd = &cobra.Command{
	Use:     "nutrients",
	Aliases: []string{"nutrient-summary"},
	Short:   "Show the daily nutrient intake summary",
	Long: `Show daily nutrient totals per subject and recall visit: energy,
macronutrients, vitamins, and minerals, relabeled from their ASA24
column codes (KCAL becomes "Energy (kcal)" and so on).

Newer exports carry extended nutrients (omega-3 fields, trace minerals);
those columns appear automatically when present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := report.NutrientSummary(ds, subjectFilter)
		if err != nil {
			return fmt.Errorf("failed to build nutrient summary: %w", err)
		}
		return printReport(cmd, r)
	},
}

func init() {
	rootCmd.AddCommand(nutrientsCmd)
}

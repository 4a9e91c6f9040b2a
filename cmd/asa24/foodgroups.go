// ABOUTME: CLI command for the food group intake summary.
// ABOUTME: Projects cup/oz equivalents from the Totals table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/report"
)

var foodGroupsCmd = &cobra.Command{
	Use:     "food-groups",
	Aliases: []string{"fg", "groups"},
	Short:   "Show the food group intake summary",
	Long: `Show food pattern equivalents per subject and recall visit: fruits,
vegetables, grains, protein foods, dairy, added sugars, and oils, in cup,
ounce, and teaspoon equivalents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := report.FoodGroupSummary(ds, subjectFilter)
		if err != nil {
			return fmt.Errorf("failed to build food group summary: %w", err)
		}
		return printReport(cmd, r)
	},
}

func init() {
	rootCmd.AddCommand(foodGroupsCmd)
}

// ABOUTME: CLI command for the per-meal intake summary.
// ABOUTME: Groups Items rows by subject, visit, and meal occasion.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/report"
)

var mealsCmd = &cobra.Command{
	Use:   "meals",
	Short: "Show item counts and macro totals per meal",
	Long: `Group food items by subject, visit, and meal occasion (Breakfast,
Morning Snack, Lunch, ...), counting items and summing calories, protein,
fat, and carbohydrate. Sums are rounded to one decimal place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := report.MealSummary(ds, subjectFilter)
		if err != nil {
			return fmt.Errorf("failed to build meal summary: %w", err)
		}
		return printReport(cmd, r)
	},
}

func init() {
	rootCmd.AddCommand(mealsCmd)
}

// ABOUTME: CLI command for the detailed food item list.
// ABOUTME: One row per consumed item with visit and meal labels attached.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/report"
)

var itemsCmd = &cobra.Command{
	Use:     "items",
	Aliases: []string{"food-items"},
	Short:   "Show the detailed food item list",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := report.FoodItems(ds, subjectFilter)
		if err != nil {
			return fmt.Errorf("failed to build food item list: %w", err)
		}
		return printReport(cmd, r)
	},
}

func init() {
	rootCmd.AddCommand(itemsCmd)
}

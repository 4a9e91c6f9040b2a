// ABOUTME: CLI command for the supplement intake summary.
// ABOUTME: Lists INS records with visit labels.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/report"
)

var supplementsCmd = &cobra.Command{
	Use:     "supplements",
	Aliases: []string{"ins"},
	Short:   "Show supplement intake records",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := report.SupplementSummary(ds, subjectFilter)
		if err != nil {
			return fmt.Errorf("failed to build supplement summary: %w", err)
		}
		return printReport(cmd, r)
	},
}

func init() {
	rootCmd.AddCommand(supplementsCmd)
}

// ABOUTME: CLI command for HEI-2015 diet quality scores.
// ABOUTME: Scores every Totals record and renders the component table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/hei"
)

var heiCmd = &cobra.Command{
	Use:   "hei",
	Short: "Show HEI-2015 diet quality scores",
	Long: `Compute the Healthy Eating Index 2015 score for every daily recall:
13 component scores from energy-normalized intake densities, summed to a
0-100 total. Adequacy components (fruits, vegetables, whole grains...)
reward higher density; moderation components (refined grains, sodium,
added sugars, saturated fat) reward lower.

Older exports missing the fat summary columns degrade gracefully: the
engine falls back to individual fatty-acid fields, then to fixed midpoint
scores.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scores, err := hei.Scores(ds, subjectFilter)
		if err != nil {
			return fmt.Errorf("failed to score records: %w", err)
		}
		return printReport(cmd, hei.ToReport(scores))
	},
}

func init() {
	rootCmd.AddCommand(heiCmd)
}

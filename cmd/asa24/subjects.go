// ABOUTME: CLI command for listing the derived subject index.
// ABOUTME: Shows every subject id seen across the loaded export tables.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:     "subjects",
	Aliases: []string{"ls"},
	Short:   "List subjects found in the loaded data",
	Long: `List every distinct subject identifier observed across all loaded
export tables: the union, so a subject appearing only in the supplement
file still shows up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		subjects := ds.Subjects()
		if len(subjects) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No subjects found.")
			return nil
		}
		for _, id := range subjects {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		color.New(color.Faint).Fprintf(cmd.OutOrStdout(), "%d subjects\n", len(subjects))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
}

// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the loaded dataset.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout and exposes the
loaded dataset read-only.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "asa24": {
        "command": "asa24",
        "args": ["mcp", "--data", "/path/to/exports"]
      }
    }
  }

AVAILABLE TOOLS:

  list_subjects           List subject ids found in the data
  get_nutrient_summary    Daily nutrient intake per subject and visit
  get_food_group_summary  Food group cup/oz equivalents
  get_supplement_summary  Supplement intake records
  get_meal_summary        Item counts and macro totals per meal
  get_food_items          Detailed food item list
  get_hei_scores          HEI-2015 diet quality scores

AVAILABLE RESOURCES:

  asa24://subjects        Subject index
  asa24://tables          Loaded table categories and shapes
  asa24://hei             HEI-2015 scores for everyone`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(ds)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

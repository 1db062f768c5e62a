package cmd

import (
	"github.com/huangsam/vendorrank/core"
	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd prints or exports the rankings without opening a window.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Show the vendors ranked by final score.",
	Long: `Score every vendor per category, combine the active categories into a final
score and print both the rank and score tables.

Nothing is interactive here; use --disable to leave categories out.

Examples:
  # Print the rankings
  vendorrank rank -f vendors.xlsx

  # Rank without the Outlook category
  vendorrank rank -f vendors.xlsx --disable Outlook

  # Export findings to CSV for tracking
  vendorrank rank -f vendors.xlsx --output csv --output-file ranking.csv

  # Long-format Parquet for analytics tools
  vendorrank rank -f vendors.xlsx --output parquet --output-file ranking.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(rootCtx, cfg, loader); err != nil {
			contract.LogFatal("Cannot rank vendors", err)
		}
	},
}

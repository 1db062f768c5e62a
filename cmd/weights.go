package cmd

import (
	"github.com/huangsam/vendorrank/core"
	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/spf13/cobra"
)

// weightsCmd displays the normalized weight definitions of a workbook.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Display the normalized formula of every category.",
	Long: `Show how each category turns metrics into a score and how the categories
combine into the final score, after weight normalization.

No vendor is scored here; this is purely informational.

Examples:
  # Show the formulas
  vendorrank weights -f vendors.xlsx

  # See how the final score changes without Outlook
  vendorrank weights -f vendors.xlsx --disable Outlook --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWeights(rootCtx, cfg, loader); err != nil {
			contract.LogFatal("Cannot display weights", err)
		}
	},
}

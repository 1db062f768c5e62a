package cmd

import (
	"github.com/huangsam/vendorrank/core"
	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/spf13/cobra"
)

// plotCmd renders the score vs. price plot to a file.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the score vs. price plot to a PNG or SVG file.",
	Long: `Render the plot shown by the interactive window without opening it.

Final score runs along x and negative price along y, so the best deals sit in
the top right. Vendors on the price frontier are highlighted.

Examples:
  # Write a PNG
  vendorrank plot -f vendors.xlsx --plot-file vendors.png

  # Write an SVG with the Outlook category switched off
  vendorrank plot -f vendors.xlsx --plot-file vendors.svg --disable Outlook`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePlot(rootCtx, cfg, loader); err != nil {
			contract.LogFatal("Cannot render plot", err)
		}
	},
}

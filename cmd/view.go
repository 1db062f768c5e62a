package cmd

import (
	"context"
	"io"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/huangsam/vendorrank/core"
	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/huangsam/vendorrank/internal/gui"
	"github.com/huangsam/vendorrank/internal/outwriter"
	"github.com/huangsam/vendorrank/schema"
	"github.com/spf13/cobra"
)

// viewCmd prints the rankings and opens the interactive window.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print the rankings and open the score vs. price window.",
	Long: `Load the workbook, print the ranking and score tables, then open a window
with the score vs. price plot and one checkbox per category.

Each checkbox toggles its category in or out of the final score. Every toggle
reprints the tables and redraws the plot.

Examples:
  # Same as running vendorrank without a subcommand
  vendorrank view -f vendors.xlsx

  # Open with a custom window title
  vendorrank view -f vendors.xlsx --title "Shortlist Q3"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeView(rootCtx, cfg, loader); err != nil {
			contract.LogFatal("Cannot open vendor view", err)
		}
	},
}

// executeView prints the initial tables and hands control to the window until it closes.
func executeView(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader) error {
	session, err := core.LoadSession(ctx, cfg, loader)
	if err != nil {
		return err
	}
	printer := consoleObserver(os.Stdout, cfg)
	session.Subscribe(printer)
	printer(session.Result())

	gui.New(app.New(), session, cfg).ShowAndRun()
	return nil
}

// consoleObserver reprints the tables after every recomputation.
// Scoring errors are warnings because the window stays usable.
func consoleObserver(w io.Writer, cfg *contract.Config) core.Observer {
	ow := outwriter.NewOutWriter()
	return func(result schema.Result, err error) {
		if err != nil {
			contract.LogWarn("Cannot score active categories", err)
			return
		}
		if err := ow.WriteTables(w, result, cfg); err != nil {
			contract.LogWarn("Cannot print tables", err)
		}
	}
}

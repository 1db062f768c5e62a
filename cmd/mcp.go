package cmd

import (
	"github.com/huangsam/vendorrank/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the vendorrank MCP server",
	Long:  `Launch an MCP server that allows AI agents to rank vendors of a workbook via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, loader)
	},
}

// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the vendorrank MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, loader contract.WorkbookLoader) *server.MCPServer {
	s := server.NewMCPServer(
		"Vendor Ranking Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		loader:  loader,
	}

	// --- 1. Tool: list_categories ---
	s.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List the scoring categories of a vendor workbook with their normalized metric and score weights."),
		mcp.WithString("file", mcp.Description("Path to the .xlsx workbook."), mcp.Required()),
		mcp.WithString("disabled", mcp.Description("Comma-separated categories to leave out of the final score.")),
	), h.handleListCategories)

	// --- 2. Tool: rank_vendors ---
	s.AddTool(mcp.NewTool("rank_vendors",
		mcp.WithDescription("Score and rank the vendors of a workbook, with the price frontier of the score vs. price plot."),
		mcp.WithString("file", mcp.Description("Path to the .xlsx workbook."), mcp.Required()),
		mcp.WithString("disabled", mcp.Description("Comma-separated categories to leave out of the final score.")),
	), h.handleRankVendors)

	return s
}

// StartMCPServer starts the vendorrank MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, loader contract.WorkbookLoader) error {
	s := NewMCPServer(baseCfg, loader)
	return server.ServeStdio(s)
}

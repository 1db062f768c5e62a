package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/vendorrank/core"
	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/huangsam/vendorrank/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	loader  contract.WorkbookLoader
}

type categoriesResponse struct {
	Categories []schema.CategoryState   `json:"categories"`
	Weights    schema.NormalizedWeights `json:"weights"`
}

type rankingResponse struct {
	Categories []schema.CategoryState `json:"categories"`
	Frontier   []string               `json:"frontier"`
	Vendors    []schema.VendorResult  `json:"vendors"`
}

// requestConfig applies the common tool arguments to a copy of the base config.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if f := request.GetString("file", ""); f != "" {
		cfg.File = f
	}
	if d := request.GetString("disabled", ""); d != "" {
		cfg.Disabled = contract.ParseList(d)
	}
	return cfg
}

func (h *toolHandler) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	weights, states, err := core.GetWeightDefinitions(core.WithSuppressHeader(ctx), cfg, h.loader)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading categories failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(categoriesResponse{Categories: states, Weights: weights}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRankVendors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	result, err := core.GetRankResult(core.WithSuppressHeader(ctx), cfg, h.loader)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	resp := rankingResponse{
		Categories: result.States,
		Frontier:   result.Frontier,
		Vendors:    schema.EnrichResult(result),
	}
	if resp.Frontier == nil {
		resp.Frontier = []string{}
	}
	jsonData, _ := json.MarshalIndent(resp, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

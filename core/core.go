// Package core has core logic for normalization, scoring and ranking.
package core

import (
	"context"
	"fmt"

	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/huangsam/vendorrank/internal/outwriter"
	"github.com/huangsam/vendorrank/internal/plot"
	"github.com/huangsam/vendorrank/schema"
)

// ExecutorFunc defines the function signature for executing the headless commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader) error

// LoadModel reads the configured workbook and prepares the base tables.
// Every error returned here is a load error.
func LoadModel(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader) (*Model, error) {
	if err := contract.RequireFile(cfg); err != nil {
		return nil, err
	}
	wb, err := loader.Load(cfg.File, cfg.Layout)
	if err != nil {
		return nil, err
	}
	m, err := NewModel(wb, cfg.Layout.PriceColumn)
	if err != nil {
		return nil, fmt.Errorf("invalid workbook %s: %w", cfg.File, err)
	}
	if !shouldSuppressHeader(ctx) {
		contract.LogInfo("📂 Loaded %d vendors, %d metrics and %d categories from %s",
			len(m.ratios.Entities), len(m.ratios.Metrics), len(m.weights.Categories), cfg.File)
	}
	return m, nil
}

// LoadSession reads the workbook and starts a session with the configured categories disabled.
func LoadSession(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader) (*Session, error) {
	m, err := LoadModel(ctx, cfg, loader)
	if err != nil {
		return nil, err
	}
	s, err := NewSession(m, cfg.Disabled)
	if err != nil {
		return nil, fmt.Errorf("cannot score with categories disabled %v: %w", cfg.Disabled, err)
	}
	return s, nil
}

// GetRankResult loads the workbook and computes the ranking without printing it.
func GetRankResult(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader) (schema.Result, error) {
	s, err := LoadSession(ctx, cfg, loader)
	if err != nil {
		return schema.Result{}, err
	}
	result, _ := s.Result()
	return result, nil
}

// GetWeightDefinitions loads the workbook and returns the normalized weights of the
// active categories together with the state of every category.
func GetWeightDefinitions(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader) (schema.NormalizedWeights, []schema.CategoryState, error) {
	s, err := LoadSession(ctx, cfg, loader)
	if err != nil {
		return schema.NormalizedWeights{}, nil, err
	}
	a := s.Activation()
	weights, err := NormalizeWeights(a.EffectiveWeights(s.Model().Weights()))
	if err != nil {
		return schema.NormalizedWeights{}, nil, err
	}
	return weights, a.States(), nil
}

// ExecuteRank computes the ranking and writes it in the configured output format.
// It serves as the main entry point for the 'rank' command.
func ExecuteRank(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader) error {
	result, err := GetRankResult(ctx, cfg, loader)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteResult(result, cfg)
}

// ExecutePlot renders the score vs. price plot into the configured plot file.
// It serves as the main entry point for the 'plot' command.
func ExecutePlot(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader) error {
	if cfg.PlotFile == "" {
		return fmt.Errorf("--plot-file is required")
	}
	result, err := GetRankResult(ctx, cfg, loader)
	if err != nil {
		return err
	}
	opts := plot.Options{Title: cfg.PlotTitle, Width: cfg.WindowWidth, Height: cfg.WindowHeight}
	if err := plot.WriteFile(cfg.PlotFile, result.Points, cfg.PlotFormat, opts); err != nil {
		return err
	}
	if !shouldSuppressHeader(ctx) {
		contract.LogInfo("💾 Wrote %s plot of %d vendors to %s", cfg.PlotFormat, len(result.Points), cfg.PlotFile)
	}
	return nil
}

// ExecuteWeights prints the normalized weight definitions of the workbook.
// It serves as the main entry point for the 'weights' command.
func ExecuteWeights(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader) error {
	weights, states, err := GetWeightDefinitions(ctx, cfg, loader)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteWeights(weights, states, cfg)
}

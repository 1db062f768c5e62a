package core

import (
	"github.com/huangsam/vendorrank/schema"
)

// Model is the immutable base every recomputation starts from: the metric
// ratios with price removed, the prices, and the full category weight table.
type Model struct {
	ratios  schema.RatioTable
	prices  schema.Prices
	weights schema.WeightTable
}

// NewModel splits the price column off the ratios and checks that the two tables
// line up: every weighted metric must exist in the company data and every metric
// must be normalizable. Problems found here are load errors.
func NewModel(wb schema.Workbook, priceColumn string) (*Model, error) {
	ratios, prices, err := SplitPrice(wb.Ratios, priceColumn)
	if err != nil {
		return nil, err
	}
	for _, metric := range wb.Weights.Metrics {
		if ratios.MetricIndex(metric) < 0 {
			return nil, &MetricError{Metric: metric, Err: ErrUnknownMetric}
		}
	}
	if _, err := NormalizeRatios(ratios); err != nil {
		return nil, err
	}
	return &Model{ratios: ratios, prices: prices, weights: wb.Weights}, nil
}

// Ratios returns a copy of the scored ratio table.
func (m *Model) Ratios() schema.RatioTable {
	return m.ratios.Clone()
}

// Prices returns a copy of the per-entity prices.
func (m *Model) Prices() schema.Prices {
	out := make(schema.Prices, len(m.prices))
	for k, v := range m.prices {
		out[k] = v
	}
	return out
}

// Weights returns the full weight table, including inactive categories.
func (m *Model) Weights() schema.WeightTable {
	return m.weights
}

// Categories lists every category in workbook order.
func (m *Model) Categories() []string {
	return append([]string(nil), m.weights.Categories...)
}

// Evaluate recomputes everything from the base tables and the given activation.
// On error the result still carries the category states so a UI can stay in sync.
func Evaluate(m *Model, a Activation) (schema.Result, error) {
	result := schema.Result{States: a.States()}

	ratios, err := NormalizeRatios(m.ratios)
	if err != nil {
		return result, err
	}
	weights, err := NormalizeWeights(a.EffectiveWeights(m.weights))
	if err != nil {
		return result, err
	}
	scores, ranks, err := ComputeScores(ratios, weights)
	if err != nil {
		return result, err
	}

	points := make([]schema.PlotPoint, len(scores.Rows))
	for i, row := range scores.Rows {
		points[i] = schema.PlotPoint{
			Entity: row.Entity,
			Score:  row.Final,
			Price:  m.prices[row.Entity],
		}
	}

	result.Scores = scores
	result.Ranks = ranks
	result.Frontier = markFrontier(points)
	result.Points = points
	return result, nil
}

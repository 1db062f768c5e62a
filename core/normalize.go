package core

import (
	"math"

	"github.com/huangsam/vendorrank/schema"
)

// NormalizeRatios divides every metric column by its maximum across all entities.
// The caller must already have removed non-metric columns such as price.
// A column whose maximum is zero cannot be normalized and yields a *MetricError.
func NormalizeRatios(t schema.RatioTable) (schema.RatioTable, error) {
	out := t.Clone()
	for j, metric := range t.Metrics {
		colMax := math.Inf(-1)
		for i := range t.Values {
			colMax = math.Max(colMax, t.Values[i][j])
		}
		if len(t.Values) > 0 && colMax == 0 {
			return schema.RatioTable{}, &MetricError{Metric: metric, Err: ErrZeroMaxMetric}
		}
		for i := range out.Values {
			out.Values[i][j] = t.Values[i][j] / colMax
		}
	}
	return out, nil
}

// NormalizeWeights splits the SCORE WEIGHT column off a weight table and normalizes
// both parts: score weights sum to 1 across the categories present, and each
// category's metric weights sum to 1.
func NormalizeWeights(w schema.WeightTable) (schema.NormalizedWeights, error) {
	if len(w.Categories) == 0 {
		return schema.NormalizedWeights{}, ErrNoActiveCategories
	}

	var scoreSum float64
	for _, v := range w.ScoreWeights {
		scoreSum += v
	}
	if scoreSum == 0 {
		return schema.NormalizedWeights{}, ErrZeroScoreWeight
	}

	out := schema.NormalizedWeights{
		Categories:   append([]string(nil), w.Categories...),
		Metrics:      append([]string(nil), w.Metrics...),
		Weights:      make([][]float64, len(w.Weights)),
		ScoreWeights: make([]float64, len(w.ScoreWeights)),
	}
	for k, v := range w.ScoreWeights {
		out.ScoreWeights[k] = v / scoreSum
	}

	for k, row := range w.Weights {
		var rowSum float64
		for _, v := range row {
			rowSum += v
		}
		if rowSum == 0 {
			return schema.NormalizedWeights{}, &CategoryError{Category: w.Categories[k], Err: ErrZeroWeightRow}
		}
		out.Weights[k] = make([]float64, len(row))
		for m, v := range row {
			out.Weights[k][m] = v / rowSum
		}
	}
	return out, nil
}

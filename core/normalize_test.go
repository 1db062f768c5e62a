package core

import (
	"math"
	"testing"

	"github.com/huangsam/vendorrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRatios(t *testing.T) {
	t.Run("divides by column maximum", func(t *testing.T) {
		in := schema.RatioTable{
			Entities: []string{"a", "b", "c"},
			Metrics:  []string{"x", "y"},
			Values:   [][]float64{{2, 10}, {4, 5}, {1, 0}},
		}
		out, err := NormalizeRatios(in)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{0.5, 1}, {1, 0.5}, {0.25, 0}}, out.Values)
		assert.Equal(t, in.Entities, out.Entities)
		assert.Equal(t, in.Metrics, out.Metrics)
	})

	t.Run("input is not modified", func(t *testing.T) {
		in := schema.RatioTable{
			Entities: []string{"a", "b"},
			Metrics:  []string{"x"},
			Values:   [][]float64{{2}, {4}},
		}
		_, err := NormalizeRatios(in)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{2}, {4}}, in.Values)
	})

	t.Run("every column peaks at one", func(t *testing.T) {
		out, err := NormalizeRatios(mixedWorkbook().Ratios)
		require.NoError(t, err)
		for j := range out.Metrics {
			peak := math.Inf(-1)
			for _, v := range out.Column(j) {
				peak = math.Max(peak, v)
			}
			assert.Equal(t, 1.0, peak, "column %s", out.Metrics[j])
		}
	})

	t.Run("zero maximum names the metric", func(t *testing.T) {
		in := schema.RatioTable{
			Entities: []string{"a", "b"},
			Metrics:  []string{"x", "dead"},
			Values:   [][]float64{{1, 0}, {2, 0}},
		}
		_, err := NormalizeRatios(in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrZeroMaxMetric)

		var metricErr *MetricError
		require.ErrorAs(t, err, &metricErr)
		assert.Equal(t, "dead", metricErr.Metric)
	})

	t.Run("empty table", func(t *testing.T) {
		out, err := NormalizeRatios(schema.RatioTable{Metrics: []string{"x"}})
		require.NoError(t, err)
		assert.Empty(t, out.Values)
	})
}

func TestNormalizeWeights(t *testing.T) {
	t.Run("rows and score weights sum to one", func(t *testing.T) {
		out, err := NormalizeWeights(mixedWorkbook().Weights)
		require.NoError(t, err)

		var scoreSum float64
		for _, v := range out.ScoreWeights {
			scoreSum += v
		}
		assert.InDelta(t, 1.0, scoreSum, 1e-12)

		for k, row := range out.Weights {
			var rowSum float64
			for _, v := range row {
				rowSum += v
			}
			assert.InDelta(t, 1.0, rowSum, 1e-12, "category %s", out.Categories[k])
		}
	})

	t.Run("exact values", func(t *testing.T) {
		out, err := NormalizeWeights(mixedWorkbook().Weights)
		require.NoError(t, err)
		assert.Equal(t, []float64{0.75, 0.25, 0}, out.Weights[0])
		assert.Equal(t, []float64{0, 0.5, 0.5}, out.Weights[1])
		assert.InDeltaSlice(t, []float64{0.4, 0.35, 0.25}, out.ScoreWeights, 1e-12)
	})

	t.Run("zero weight row names the category", func(t *testing.T) {
		w := mixedWorkbook().Weights
		w.Weights[1] = []float64{0, 0, 0}
		_, err := NormalizeWeights(w)
		assert.ErrorIs(t, err, ErrZeroWeightRow)

		var catErr *CategoryError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, "Finance", catErr.Category)
	})

	t.Run("zero score weights", func(t *testing.T) {
		w := mixedWorkbook().Weights
		w.ScoreWeights = []float64{0, 0, 0}
		_, err := NormalizeWeights(w)
		assert.ErrorIs(t, err, ErrZeroScoreWeight)
	})

	t.Run("no categories", func(t *testing.T) {
		_, err := NormalizeWeights(schema.WeightTable{Metrics: []string{"x"}})
		assert.ErrorIs(t, err, ErrNoActiveCategories)
	})

	t.Run("input is not modified", func(t *testing.T) {
		w := mixedWorkbook().Weights
		_, err := NormalizeWeights(w)
		require.NoError(t, err)
		assert.Equal(t, mixedWorkbook().Weights, w)
	})
}

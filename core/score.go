package core

import (
	"github.com/huangsam/vendorrank/schema"
)

// ComputeScores applies normalized weights to normalized ratios.
//
// The score of entity c in category k is sum_m ratio[c,m] * weight[k,m], with
// metrics matched by name. Metrics present in the ratios but not in the weights
// weigh nothing. The final score is sum_k score[c,k] * scoreweight[k].
//
// Both tables are recomputed in full on every call. The score table is sorted by
// final score descending, the rank table by final rank ascending.
func ComputeScores(ratios schema.RatioTable, weights schema.NormalizedWeights) (schema.ScoreTable, schema.RankTable, error) {
	if len(weights.Categories) == 0 {
		return schema.ScoreTable{}, schema.RankTable{}, ErrNoActiveCategories
	}

	columns := make([]int, len(weights.Metrics))
	for m, metric := range weights.Metrics {
		columns[m] = ratios.MetricIndex(metric)
		if columns[m] < 0 {
			return schema.ScoreTable{}, schema.RankTable{}, &MetricError{Metric: metric, Err: ErrUnknownMetric}
		}
	}

	numEntities := len(ratios.Entities)
	numCategories := len(weights.Categories)

	categoryScores := make([][]float64, numEntities)
	finals := make([]float64, numEntities)
	for c := range numEntities {
		categoryScores[c] = make([]float64, numCategories)
		var total float64
		for k := range numCategories {
			var value float64
			for m, col := range columns {
				value += ratios.Values[c][col] * weights.Weights[k][m]
			}
			categoryScores[c][k] = value
			total += value * weights.ScoreWeights[k]
		}
		finals[c] = total
	}

	finalRanks := CompetitionRanks(finals)
	categoryRanks := make([][]int, numCategories)
	for k := range numCategories {
		column := make([]float64, numEntities)
		for c := range numEntities {
			column[c] = categoryScores[c][k]
		}
		categoryRanks[k] = CompetitionRanks(column)
	}

	scores := schema.ScoreTable{
		Categories: append([]string(nil), weights.Categories...),
		Rows:       make([]schema.ScoreRow, 0, numEntities),
	}
	ranks := schema.RankTable{
		Categories: append([]string(nil), weights.Categories...),
		Rows:       make([]schema.RankRow, 0, numEntities),
	}
	for _, c := range descendingOrder(finals) {
		rowRanks := make([]int, numCategories)
		for k := range numCategories {
			rowRanks[k] = categoryRanks[k][c]
		}
		scores.Rows = append(scores.Rows, schema.ScoreRow{
			Entity:     ratios.Entities[c],
			Final:      finals[c],
			Categories: categoryScores[c],
		})
		ranks.Rows = append(ranks.Rows, schema.RankRow{
			Entity:     ratios.Entities[c],
			Final:      finalRanks[c],
			Categories: rowRanks,
		})
	}
	return scores, ranks, nil
}

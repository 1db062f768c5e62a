package core

import (
	"testing"

	"github.com/huangsam/vendorrank/schema"
	"github.com/stretchr/testify/require"
)

// sampleWorkbook has three vendors and two categories that each weigh one metric.
// Acme leads both metrics, Bolt sits at half of Acme, Crux is all zeros.
func sampleWorkbook() schema.Workbook {
	return schema.Workbook{
		Ratios: schema.RatioTable{
			Entities: []string{"Acme", "Bolt", "Crux"},
			Metrics:  []string{"Uptime", "Margin", schema.DefaultPriceColumn},
			Values: [][]float64{
				{10, 4, 100},
				{5, 2, 50},
				{0, 0, 10},
			},
		},
		Weights: schema.WeightTable{
			Categories:   []string{"Quality", "Finance"},
			Metrics:      []string{"Uptime", "Margin"},
			Weights:      [][]float64{{1, 0}, {0, 1}},
			ScoreWeights: []float64{0.5, 0.5},
		},
	}
}

// mixedWorkbook has overlapping category profiles so scores differ per category.
func mixedWorkbook() schema.Workbook {
	return schema.Workbook{
		Ratios: schema.RatioTable{
			Entities: []string{"Acme", "Bolt", "Crux", "Dyna"},
			Metrics:  []string{"Uptime", "Margin", "Growth", schema.DefaultPriceColumn},
			Values: [][]float64{
				{0.9, 0.10, 0.30, 1200},
				{0.7, 0.25, 0.10, 800},
				{0.8, 0.05, 0.45, 950},
				{0.6, 0.20, 0.20, 1500},
			},
		},
		Weights: schema.WeightTable{
			Categories:   []string{"Quality", "Finance", "Outlook"},
			Metrics:      []string{"Uptime", "Margin", "Growth"},
			Weights:      [][]float64{{3, 1, 0}, {0, 2, 2}, {1, 1, 4}},
			ScoreWeights: []float64{40, 35, 25},
		},
	}
}

func mustModel(t *testing.T, wb schema.Workbook) *Model {
	t.Helper()
	m, err := NewModel(wb, schema.DefaultPriceColumn)
	require.NoError(t, err)
	return m
}

func scoreOf(t *testing.T, table schema.ScoreTable, entity string) schema.ScoreRow {
	t.Helper()
	for _, row := range table.Rows {
		if row.Entity == entity {
			return row
		}
	}
	t.Fatalf("entity %q not in score table", entity)
	return schema.ScoreRow{}
}

func rankOf(t *testing.T, table schema.RankTable, entity string) schema.RankRow {
	t.Helper()
	for _, row := range table.Rows {
		if row.Entity == entity {
			return row
		}
	}
	t.Fatalf("entity %q not in rank table", entity)
	return schema.RankRow{}
}

// Package schema has the tables, results and constants shared by all parts of vendorrank.
package schema

// RatioTable holds the raw metric values of every entity.
// Values is indexed as Values[entity][metric].
type RatioTable struct {
	Entities []string    `json:"entities"`
	Metrics  []string    `json:"metrics"`
	Values   [][]float64 `json:"values"`
}

// MetricIndex returns the column position of a metric, or -1 if absent.
func (t RatioTable) MetricIndex(name string) int {
	for i, m := range t.Metrics {
		if m == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the values of one metric column.
func (t RatioTable) Column(j int) []float64 {
	col := make([]float64, len(t.Values))
	for i, row := range t.Values {
		col[i] = row[j]
	}
	return col
}

// Clone returns a deep copy of the table.
func (t RatioTable) Clone() RatioTable {
	clone := RatioTable{
		Entities: append([]string(nil), t.Entities...),
		Metrics:  append([]string(nil), t.Metrics...),
		Values:   make([][]float64, len(t.Values)),
	}
	for i, row := range t.Values {
		clone.Values[i] = append([]float64(nil), row...)
	}
	return clone
}

// WeightTable holds the metric weights of every category plus the raw
// SCORE WEIGHT column giving each category's share of the final score.
// Weights is indexed as Weights[category][metric].
type WeightTable struct {
	Categories   []string    `json:"categories"`
	Metrics      []string    `json:"metrics"`
	Weights      [][]float64 `json:"weights"`
	ScoreWeights []float64   `json:"score_weights"`
}

// CategoryIndex returns the row position of a category, or -1 if absent.
func (t WeightTable) CategoryIndex(name string) int {
	for i, c := range t.Categories {
		if c == name {
			return i
		}
	}
	return -1
}

// NormalizedWeights is a WeightTable after normalization: every metric row
// sums to 1 and ScoreWeights sums to 1 across the categories present.
type NormalizedWeights struct {
	Categories   []string    `json:"categories"`
	Metrics      []string    `json:"metrics"`
	Weights      [][]float64 `json:"weights"`
	ScoreWeights []float64   `json:"score_weights"`
}

// Prices maps every entity to its price. Prices never take part in scoring.
type Prices map[string]float64

// CategoryState is a category name and whether it currently counts toward the final score.
type CategoryState struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ScoreRow holds the scores of one entity.
type ScoreRow struct {
	Entity     string    `json:"entity"`
	Final      float64   `json:"final_score"`
	Categories []float64 `json:"category_scores"`
}

// ScoreTable holds per-category and final scores, sorted by final score descending.
type ScoreTable struct {
	Categories []string   `json:"categories"`
	Rows       []ScoreRow `json:"rows"`
}

// RankRow holds the ranks of one entity.
type RankRow struct {
	Entity     string `json:"entity"`
	Final      int    `json:"final_rank"`
	Categories []int  `json:"category_ranks"`
}

// RankTable holds per-category and final ranks, sorted by final rank ascending.
type RankTable struct {
	Categories []string  `json:"categories"`
	Rows       []RankRow `json:"rows"`
}

// PlotPoint is one entity positioned on the score vs. price plot.
type PlotPoint struct {
	Entity   string  `json:"entity"`
	Score    float64 `json:"score"`
	Price    float64 `json:"price"`
	Frontier bool    `json:"frontier"`
}

// Result is everything the presentation layer needs after a recomputation.
type Result struct {
	Scores   ScoreTable      `json:"scores"`
	Ranks    RankTable       `json:"ranks"`
	Points   []PlotPoint     `json:"points"`
	Frontier []string        `json:"frontier"`
	States   []CategoryState `json:"categories"`
}

// Workbook holds the two tables read from the input spreadsheet.
type Workbook struct {
	Ratios  RatioTable  `json:"ratios"`
	Weights WeightTable `json:"weights"`
}

// WorkbookLayout names the sheets and reserved columns of the input spreadsheet.
type WorkbookLayout struct {
	RatiosSheet       string
	WeightsSheet      string
	PriceColumn       string
	ScoreWeightColumn string
}

// DefaultWorkbookLayout returns the layout of the reference workbook.
func DefaultWorkbookLayout() WorkbookLayout {
	return WorkbookLayout{
		RatiosSheet:       DefaultRatiosSheet,
		WeightsSheet:      DefaultWeightsSheet,
		PriceColumn:       DefaultPriceColumn,
		ScoreWeightColumn: DefaultScoreWeightColumn,
	}
}

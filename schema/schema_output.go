package schema

// VendorResult flattens the score and rank of one entity for export.
type VendorResult struct {
	Rank           int                `json:"rank"`
	Label          string             `json:"label"`
	Entity         string             `json:"entity"`
	FinalScore     float64            `json:"final_score"`
	Price          float64            `json:"price"`
	Frontier       bool               `json:"frontier"`
	CategoryScores map[string]float64 `json:"category_scores"`
	CategoryRanks  map[string]int     `json:"category_ranks"`
}

// GetPlainLabel returns a plain text label describing a final score in [0,1].
func GetPlainLabel(score float64) string {
	switch {
	case score >= 0.8:
		return "Excellent"
	case score >= 0.6:
		return "Strong"
	case score >= 0.4:
		return "Fair"
	default:
		return "Weak"
	}
}

// EnrichResult joins the score table, rank table and plot points of a result
// into one record per entity, in final score order.
func EnrichResult(r Result) []VendorResult {
	ranks := make(map[string]RankRow, len(r.Ranks.Rows))
	for _, row := range r.Ranks.Rows {
		ranks[row.Entity] = row
	}
	points := make(map[string]PlotPoint, len(r.Points))
	for _, p := range r.Points {
		points[p.Entity] = p
	}

	output := make([]VendorResult, len(r.Scores.Rows))
	for i, row := range r.Scores.Rows {
		rank := ranks[row.Entity]
		point := points[row.Entity]
		scores := make(map[string]float64, len(r.Scores.Categories))
		ranksByCategory := make(map[string]int, len(r.Scores.Categories))
		for j, category := range r.Scores.Categories {
			scores[category] = row.Categories[j]
			if j < len(rank.Categories) {
				ranksByCategory[category] = rank.Categories[j]
			}
		}
		output[i] = VendorResult{
			Rank:           rank.Final,
			Label:          GetPlainLabel(row.Final),
			Entity:         row.Entity,
			FinalScore:     row.Final,
			Price:          point.Price,
			Frontier:       point.Frontier,
			CategoryScores: scores,
			CategoryRanks:  ranksByCategory,
		}
	}
	return output
}

// CategoryDefinition describes how one category turns metrics into a score.
type CategoryDefinition struct {
	Name        string             `json:"name"`
	Active      bool               `json:"active"`
	ScoreWeight float64            `json:"score_weight"`
	Weights     map[string]float64 `json:"weights"`
	Formula     string             `json:"formula"`
}

// WeightsRenderModel holds the normalized weight definitions of a workbook for display.
type WeightsRenderModel struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Final       string               `json:"final_formula"`
	Categories  []CategoryDefinition `json:"categories"`
}

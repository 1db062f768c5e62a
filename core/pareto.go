package core

import "github.com/huangsam/vendorrank/schema"

// markFrontier flags the points on the score vs. price Pareto frontier and returns
// their entity names in input order. A point is dominated when another point has a
// score at least as high and a price at least as low, and is strictly better on one.
// O(n^2) dominance check, fine for the tens of vendors a workbook holds.
func markFrontier(points []schema.PlotPoint) []string {
	var frontier []string
	for i := range points {
		dominated := false
		for j := range points {
			if i != j && dominates(points[j], points[i]) {
				dominated = true
				break
			}
		}
		points[i].Frontier = !dominated
		if !dominated {
			frontier = append(frontier, points[i].Entity)
		}
	}
	return frontier
}

// dominates returns true if a dominates b: higher score is better, lower price is better.
func dominates(a, b schema.PlotPoint) bool {
	if a.Score < b.Score || a.Price > b.Price {
		return false
	}
	return a.Score > b.Score || a.Price < b.Price
}

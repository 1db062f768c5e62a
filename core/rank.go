package core

import (
	"sort"
)

// CompetitionRanks ranks values from highest to lowest using standard competition
// ranking: equal values share the best rank of their group and the next distinct
// value skips ahead ("1224"). Rank 1 is the highest value.
func CompetitionRanks(values []float64) []int {
	order := descendingOrder(values)
	ranks := make([]int, len(values))
	for pos, idx := range order {
		if pos > 0 && values[idx] == values[order[pos-1]] {
			ranks[idx] = ranks[order[pos-1]]
			continue
		}
		ranks[idx] = pos + 1
	}
	return ranks
}

// descendingOrder returns the indices of values sorted from highest to lowest.
// Equal values keep their original relative order.
func descendingOrder(values []float64) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] > values[order[b]]
	})
	return order
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompetitionRanks(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected []int
	}{
		{"empty", nil, []int{}},
		{"single", []float64{0.3}, []int{1}},
		{"distinct", []float64{0.1, 0.9, 0.5}, []int{3, 1, 2}},
		{"tie in the middle", []float64{0.9, 0.5, 0.5, 0.1}, []int{1, 2, 2, 4}},
		{"tie at the top", []float64{0.7, 0.7, 0.2}, []int{1, 1, 3}},
		{"all equal", []float64{0, 0, 0}, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompetitionRanks(tt.values))
		})
	}
}

// TestCompetitionRanksConsistency checks that ranks order exactly as the values do.
func TestCompetitionRanksConsistency(t *testing.T) {
	values := []float64{0.42, 0.87, 0.42, 0.13, 0.87, 0.5}
	ranks := CompetitionRanks(values)
	for a := range values {
		for b := range values {
			switch {
			case values[a] > values[b]:
				assert.Less(t, ranks[a], ranks[b])
			case values[a] == values[b]:
				assert.Equal(t, ranks[a], ranks[b])
			}
		}
	}
}

func TestDescendingOrder(t *testing.T) {
	t.Run("stable for ties", func(t *testing.T) {
		assert.Equal(t, []int{1, 0, 2, 3}, descendingOrder([]float64{0.5, 0.9, 0.5, 0.1}))
	})

	t.Run("scores in descending order", func(t *testing.T) {
		values := []float64{0.3, 0.8, 0.1, 0.6}
		order := descendingOrder(values)
		for i := 1; i < len(order); i++ {
			assert.LessOrEqual(t, values[order[i]], values[order[i-1]])
		}
	})
}

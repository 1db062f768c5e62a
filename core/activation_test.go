package core

import (
	"testing"

	"github.com/huangsam/vendorrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivation(t *testing.T) {
	base := NewActivation([]string{"Quality", "Finance", "Outlook"})

	t.Run("starts all active", func(t *testing.T) {
		assert.Equal(t, []string{"Quality", "Finance", "Outlook"}, base.ActiveNames())
		for _, s := range base.States() {
			assert.True(t, s.Active, s.Name)
		}
	})

	t.Run("toggle returns a new value", func(t *testing.T) {
		next, err := base.Toggle("Finance")
		require.NoError(t, err)
		assert.False(t, next.IsActive("Finance"))
		assert.True(t, base.IsActive("Finance"), "receiver must not change")
		assert.Equal(t, []string{"Quality", "Outlook"}, next.ActiveNames())
	})

	t.Run("toggle twice restores", func(t *testing.T) {
		once, err := base.Toggle("Quality")
		require.NoError(t, err)
		twice, err := once.Toggle("Quality")
		require.NoError(t, err)
		assert.Equal(t, base.States(), twice.States())
	})

	t.Run("set is idempotent", func(t *testing.T) {
		off, err := base.Set("Outlook", false)
		require.NoError(t, err)
		again, err := off.Set("Outlook", false)
		require.NoError(t, err)
		assert.Equal(t, off.States(), again.States())
	})

	t.Run("unknown category", func(t *testing.T) {
		same, err := base.Toggle("Nope")
		assert.ErrorIs(t, err, ErrUnknownCategory)
		var catErr *CategoryError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, "Nope", catErr.Category)
		assert.Equal(t, base.States(), same.States())

		_, err = base.Set("Nope", true)
		assert.ErrorIs(t, err, ErrUnknownCategory)
		assert.False(t, base.IsActive("Nope"))
	})

	t.Run("zero value has no categories", func(t *testing.T) {
		var a Activation
		assert.Empty(t, a.ActiveNames())
		assert.Empty(t, a.States())
	})
}

func TestEffectiveWeights(t *testing.T) {
	full := mixedWorkbook().Weights

	t.Run("all active keeps the table", func(t *testing.T) {
		eff := NewActivation(full.Categories).EffectiveWeights(full)
		assert.Equal(t, full, eff)
	})

	t.Run("drops inactive rows", func(t *testing.T) {
		a, err := NewActivation(full.Categories).Set("Finance", false)
		require.NoError(t, err)
		eff := a.EffectiveWeights(full)
		assert.Equal(t, []string{"Quality", "Outlook"}, eff.Categories)
		assert.Equal(t, [][]float64{{3, 1, 0}, {1, 1, 4}}, eff.Weights)
		assert.Equal(t, []float64{40, 25}, eff.ScoreWeights)
		assert.Equal(t, full.Metrics, eff.Metrics)
	})

	t.Run("does not share rows with base", func(t *testing.T) {
		eff := NewActivation(full.Categories).EffectiveWeights(full)
		eff.Weights[0][0] = 99
		assert.Equal(t, 3.0, full.Weights[0][0])
	})

	t.Run("none active", func(t *testing.T) {
		a := NewActivation(full.Categories)
		for _, c := range full.Categories {
			var err error
			a, err = a.Set(c, false)
			require.NoError(t, err)
		}
		eff := a.EffectiveWeights(full)
		assert.Empty(t, eff.Categories)
		_, err := NormalizeWeights(eff)
		assert.ErrorIs(t, err, ErrNoActiveCategories)
	})

	t.Run("score weights renormalize over active categories", func(t *testing.T) {
		a, err := NewActivation(full.Categories).Set("Quality", false)
		require.NoError(t, err)
		norm, err := NormalizeWeights(a.EffectiveWeights(full))
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{35.0 / 60, 25.0 / 60}, norm.ScoreWeights, 1e-12)
	})
}

func TestActiveNamesHelper(t *testing.T) {
	states := []schema.CategoryState{{Name: "a", Active: true}, {Name: "b"}, {Name: "c", Active: true}}
	assert.Equal(t, []string{"a", "c"}, schema.ActiveNames(states))
}

package core

import (
	"github.com/huangsam/vendorrank/schema"
)

// Activation records which scoring categories are currently included.
// It is a value: Toggle and Set return a new Activation and never modify the receiver,
// so the caller owns the only copy that matters.
type Activation struct {
	names  []string
	active []bool
}

// NewActivation returns an activation with every category active.
func NewActivation(categories []string) Activation {
	a := Activation{
		names:  append([]string(nil), categories...),
		active: make([]bool, len(categories)),
	}
	for i := range a.active {
		a.active[i] = true
	}
	return a
}

func (a Activation) index(name string) int {
	for i, n := range a.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (a Activation) clone() Activation {
	return Activation{
		names:  append([]string(nil), a.names...),
		active: append([]bool(nil), a.active...),
	}
}

// Toggle flips one category. Unknown names are rejected and the receiver is returned unchanged.
func (a Activation) Toggle(name string) (Activation, error) {
	i := a.index(name)
	if i < 0 {
		return a, &CategoryError{Category: name, Err: ErrUnknownCategory}
	}
	next := a.clone()
	next.active[i] = !next.active[i]
	return next, nil
}

// Set forces one category on or off.
func (a Activation) Set(name string, active bool) (Activation, error) {
	i := a.index(name)
	if i < 0 {
		return a, &CategoryError{Category: name, Err: ErrUnknownCategory}
	}
	next := a.clone()
	next.active[i] = active
	return next, nil
}

// IsActive reports whether a known category is active. Unknown names are never active.
func (a Activation) IsActive(name string) bool {
	i := a.index(name)
	return i >= 0 && a.active[i]
}

// States lists every category with its activation, in workbook order.
func (a Activation) States() []schema.CategoryState {
	states := make([]schema.CategoryState, len(a.names))
	for i, n := range a.names {
		states[i] = schema.CategoryState{Name: n, Active: a.active[i]}
	}
	return states
}

// ActiveNames lists the active categories in workbook order.
func (a Activation) ActiveNames() []string {
	return schema.ActiveNames(a.States())
}

// EffectiveWeights restricts the full weight table to the active categories.
// It is always derived from base, so repeated toggles never compound.
func (a Activation) EffectiveWeights(base schema.WeightTable) schema.WeightTable {
	out := schema.WeightTable{
		Metrics: append([]string(nil), base.Metrics...),
	}
	for k, category := range base.Categories {
		if !a.IsActive(category) {
			continue
		}
		out.Categories = append(out.Categories, category)
		out.Weights = append(out.Weights, append([]float64(nil), base.Weights[k]...))
		out.ScoreWeights = append(out.ScoreWeights, base.ScoreWeights[k])
	}
	return out
}

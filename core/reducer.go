package core

import (
	"errors"
	"fmt"

	"github.com/huangsam/vendorrank/schema"
)

// Event is a user action that changes the category activation.
type Event interface {
	apply(Activation) (Activation, error)
}

// ToggleCategory flips one category between active and inactive.
type ToggleCategory struct {
	Name string
}

func (e ToggleCategory) apply(a Activation) (Activation, error) {
	return a.Toggle(e.Name)
}

// SetCategory forces one category on or off.
type SetCategory struct {
	Name   string
	Active bool
}

func (e SetCategory) apply(a Activation) (Activation, error) {
	return a.Set(e.Name, e.Active)
}

// Reduce applies an event to an activation and recomputes the result from scratch.
// A rejected event returns the activation unchanged. An accepted event always
// returns the new activation, even when scoring then fails.
func Reduce(m *Model, a Activation, ev Event) (Activation, schema.Result, error) {
	if ev == nil {
		return a, schema.Result{States: a.States()}, errors.New("nil event")
	}
	next, err := ev.apply(a)
	if err != nil {
		return a, schema.Result{States: a.States()}, err
	}
	result, err := Evaluate(m, next)
	if err != nil {
		return next, result, fmt.Errorf("cannot score with categories %v: %w", next.ActiveNames(), err)
	}
	return next, result, nil
}

package core

import (
	"errors"

	"github.com/huangsam/vendorrank/schema"
)

// Observer is notified after every accepted event with the new result or scoring error.
type Observer func(schema.Result, error)

// Session owns the activation for one run and feeds events through Reduce.
// It is not safe for concurrent use; events are expected one at a time.
type Session struct {
	model      *Model
	activation Activation
	result     schema.Result
	err        error
	observers  []Observer
}

// NewSession starts with every category active except the disabled ones and
// computes the initial result. Any error here is a load error.
func NewSession(m *Model, disabled []string) (*Session, error) {
	a := NewActivation(m.Categories())
	for _, name := range disabled {
		var err error
		if a, err = a.Set(name, false); err != nil {
			return nil, err
		}
	}
	result, err := Evaluate(m, a)
	if err != nil {
		return nil, err
	}
	return &Session{model: m, activation: a, result: result}, nil
}

// Subscribe registers an observer for future events.
func (s *Session) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Dispatch runs an event through the reducer. Rejected events leave the session
// untouched and notify nobody.
func (s *Session) Dispatch(ev Event) (schema.Result, error) {
	next, result, err := Reduce(s.model, s.activation, ev)
	if err != nil && errors.Is(err, ErrUnknownCategory) {
		return result, err
	}
	s.activation = next
	s.result, s.err = result, err
	for _, o := range s.observers {
		o(result, err)
	}
	return result, err
}

// Model returns the base tables of the session.
func (s *Session) Model() *Model {
	return s.model
}

// Activation returns the current activation.
func (s *Session) Activation() Activation {
	return s.activation
}

// Result returns the latest result and the scoring error that came with it, if any.
func (s *Session) Result() (schema.Result, error) {
	return s.result, s.err
}

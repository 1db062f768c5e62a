package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for scoring edge cases that would otherwise divide by zero.
var (
	ErrZeroMaxMetric      = errors.New("metric maximum is zero across all entities")
	ErrZeroWeightRow      = errors.New("category metric weights sum to zero")
	ErrZeroScoreWeight    = errors.New("score weights of active categories sum to zero")
	ErrNoActiveCategories = errors.New("no active categories")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownMetric      = errors.New("weighted metric missing from company data")
)

// MetricError identifies the metric that made a computation impossible.
type MetricError struct {
	Metric string
	Err    error
}

func (e *MetricError) Error() string {
	return fmt.Sprintf("metric %q: %v", e.Metric, e.Err)
}

func (e *MetricError) Unwrap() error {
	return e.Err
}

// CategoryError identifies the category that made a computation or toggle impossible.
type CategoryError struct {
	Category string
	Err      error
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("category %q: %v", e.Category, e.Err)
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

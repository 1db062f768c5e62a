// Package outwriter has output and writer logic.
package outwriter

import (
	"io"

	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/huangsam/vendorrank/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteResult prints a ranking using the configured output format.
func (ow *OutWriter) WriteResult(result schema.Result, cfg *contract.Config) error {
	return PrintResults(result, cfg)
}

// WriteTables prints the ranking and score tables as text, whatever the configured format.
// This is the console dump shown on load and after every category toggle.
func (ow *OutWriter) WriteTables(w io.Writer, result schema.Result, cfg *contract.Config) error {
	return writeResultTables(w, result, cfg)
}

// WriteWeights prints the normalized weight definitions using the configured output format.
func (ow *OutWriter) WriteWeights(weights schema.NormalizedWeights, states []schema.CategoryState, cfg *contract.Config) error {
	return PrintWeightDefinitions(weights, states, cfg)
}

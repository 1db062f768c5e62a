// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/huangsam/vendorrank/schema"

// WorkbookLoader reads the company data and category weights of a spreadsheet.
// This allows the scoring flow to be tested without a real workbook on disk.
type WorkbookLoader interface {
	// Load returns the raw ratio table (price column included) and the raw weight table.
	Load(path string, layout schema.WorkbookLayout) (schema.Workbook, error)
}

// Package workbook reads the vendor spreadsheet with github.com/xuri/excelize/v2.
//
// The ratios sheet has a header row whose first cell names the entity column and whose
// remaining cells name metrics, one of them the price. The weights sheet has the same
// shape with categories as rows and an extra score weight column. Empty cells read as 0.
package workbook

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/huangsam/vendorrank/schema"
	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet is returned when a sheet has no header or no data rows.
var ErrEmptySheet = errors.New("sheet has no data")

// ExcelLoader loads workbooks from .xlsx files on disk.
type ExcelLoader struct{}

var _ contract.WorkbookLoader = &ExcelLoader{} // Compile-time check

// NewExcelLoader creates a new xlsx loader.
func NewExcelLoader() *ExcelLoader {
	return &ExcelLoader{}
}

// Load implements the WorkbookLoader interface.
func (l *ExcelLoader) Load(path string, layout schema.WorkbookLayout) (schema.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return schema.Workbook{}, fmt.Errorf("cannot open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	ratioRows, err := readSheet(f, layout.RatiosSheet)
	if err != nil {
		return schema.Workbook{}, err
	}
	weightRows, err := readSheet(f, layout.WeightsSheet)
	if err != nil {
		return schema.Workbook{}, err
	}

	ratios, err := parseRatios(ratioRows, layout)
	if err != nil {
		return schema.Workbook{}, fmt.Errorf("sheet %q: %w", layout.RatiosSheet, err)
	}
	weights, err := parseWeights(weightRows, layout)
	if err != nil {
		return schema.Workbook{}, fmt.Errorf("sheet %q: %w", layout.WeightsSheet, err)
	}
	return schema.Workbook{Ratios: ratios, Weights: weights}, nil
}

// readSheet returns the raw cell values of a sheet, without number formatting applied.
func readSheet(f *excelize.File, sheet string) ([][]string, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("sheet %q not found (have %s)", sheet, strings.Join(f.GetSheetList(), ", "))
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// grid is a parsed sheet: row labels, column labels and numeric cells.
type grid struct {
	rows    []string
	columns []string
	values  [][]float64
}

// parseGrid reads a header row followed by labeled numeric rows. Fully blank rows are skipped.
func parseGrid(rows [][]string, what string) (grid, error) {
	if len(rows) == 0 {
		return grid{}, ErrEmptySheet
	}

	header := rows[0]
	if len(header) < 2 {
		return grid{}, fmt.Errorf("header needs an identifier column and at least one %s column", what)
	}
	var g grid
	seen := make(map[string]bool, len(header))
	for j, cell := range header[1:] {
		name := strings.TrimSpace(cell)
		if name == "" {
			return grid{}, fmt.Errorf("header cell %s is empty", cellName(j+1, 0))
		}
		if seen[name] {
			return grid{}, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
		g.columns = append(g.columns, name)
	}

	seenRows := make(map[string]bool, len(rows))
	for i, row := range rows[1:] {
		r := i + 1
		if isBlank(row) {
			continue
		}
		if len(row) > len(header) {
			return grid{}, fmt.Errorf("row %d has %d cells but the header has %d", r+1, len(row), len(header))
		}
		label := strings.TrimSpace(row[0])
		if label == "" {
			return grid{}, fmt.Errorf("cell %s: missing identifier", cellName(0, r))
		}
		if seenRows[label] {
			return grid{}, fmt.Errorf("duplicate identifier %q", label)
		}
		seenRows[label] = true

		values := make([]float64, len(g.columns))
		for j := range g.columns {
			if j+1 >= len(row) {
				break
			}
			v, err := parseCell(row[j+1])
			if err != nil {
				return grid{}, fmt.Errorf("cell %s: %w", cellName(j+1, r), err)
			}
			values[j] = v
		}
		g.rows = append(g.rows, label)
		g.values = append(g.values, values)
	}

	if len(g.rows) == 0 {
		return grid{}, ErrEmptySheet
	}
	return g, nil
}

func parseRatios(rows [][]string, layout schema.WorkbookLayout) (schema.RatioTable, error) {
	g, err := parseGrid(rows, "metric")
	if err != nil {
		return schema.RatioTable{}, err
	}
	t := schema.RatioTable{Entities: g.rows, Metrics: g.columns, Values: g.values}
	if t.MetricIndex(layout.PriceColumn) < 0 {
		return schema.RatioTable{}, fmt.Errorf("missing %q column", layout.PriceColumn)
	}
	return t, nil
}

func parseWeights(rows [][]string, layout schema.WorkbookLayout) (schema.WeightTable, error) {
	g, err := parseGrid(rows, "metric")
	if err != nil {
		return schema.WeightTable{}, err
	}

	scoreCol := -1
	for j, c := range g.columns {
		if c == layout.ScoreWeightColumn {
			scoreCol = j
		}
	}
	if scoreCol < 0 {
		return schema.WeightTable{}, fmt.Errorf("missing %q column", layout.ScoreWeightColumn)
	}

	t := schema.WeightTable{
		Categories:   g.rows,
		Weights:      make([][]float64, len(g.rows)),
		ScoreWeights: make([]float64, len(g.rows)),
	}
	for j, c := range g.columns {
		if j != scoreCol {
			t.Metrics = append(t.Metrics, c)
		}
	}
	for k, row := range g.values {
		t.Weights[k] = make([]float64, 0, len(t.Metrics))
		for j, v := range row {
			if v < 0 {
				return schema.WeightTable{}, fmt.Errorf("category %q has negative weight %v for %q", g.rows[k], v, g.columns[j])
			}
			if j == scoreCol {
				t.ScoreWeights[k] = v
				continue
			}
			t.Weights[k] = append(t.Weights[k], v)
		}
	}
	return t, nil
}

// parseCell converts a raw cell value to a number. Blank cells are zero.
func parseCell(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", raw)
	}
	return v, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cellName converts zero-based column and row indexes to an A1 reference.
func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row+1, col+1)
	}
	return name
}

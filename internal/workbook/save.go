package workbook

import (
	"fmt"

	"github.com/huangsam/vendorrank/schema"
	"github.com/xuri/excelize/v2"
)

// Save writes a workbook in the layout Load expects. The weights sheet gets the
// score weight column appended after the metric columns.
func Save(path string, wb schema.Workbook, layout schema.WorkbookLayout) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), layout.RatiosSheet); err != nil {
		return fmt.Errorf("cannot name sheet %q: %w", layout.RatiosSheet, err)
	}
	if _, err := f.NewSheet(layout.WeightsSheet); err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", layout.WeightsSheet, err)
	}

	ratioHeader := append([]any{"Company"}, stringsToAny(wb.Ratios.Metrics)...)
	if err := writeRow(f, layout.RatiosSheet, 0, ratioHeader); err != nil {
		return err
	}
	for i, entity := range wb.Ratios.Entities {
		row := append([]any{entity}, floatsToAny(wb.Ratios.Values[i])...)
		if err := writeRow(f, layout.RatiosSheet, i+1, row); err != nil {
			return err
		}
	}

	weightHeader := append([]any{"Category"}, stringsToAny(wb.Weights.Metrics)...)
	weightHeader = append(weightHeader, layout.ScoreWeightColumn)
	if err := writeRow(f, layout.WeightsSheet, 0, weightHeader); err != nil {
		return err
	}
	for k, category := range wb.Weights.Categories {
		row := append([]any{category}, floatsToAny(wb.Weights.Weights[k])...)
		row = append(row, wb.Weights.ScoreWeights[k])
		if err := writeRow(f, layout.WeightsSheet, k+1, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save workbook %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	if err := f.SetSheetRow(sheet, cellName(0, row), &values); err != nil {
		return fmt.Errorf("cannot write row %d of %q: %w", row+1, sheet, err)
	}
	return nil
}

func stringsToAny(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

func floatsToAny(s []float64) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

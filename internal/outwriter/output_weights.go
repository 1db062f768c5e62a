package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/huangsam/vendorrank/schema"
)

// PrintWeightDefinitions displays the normalized weights of every category.
// Inactive categories are listed without weights since they do not take part in scoring.
func PrintWeightDefinitions(weights schema.NormalizedWeights, states []schema.CategoryState, cfg *contract.Config) error {
	renderModel := buildWeightsRenderModel(weights, states, cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWeights(w, renderModel, cfg.Precision)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only available for rankings")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeightsText(w, renderModel)
		}, "Wrote text")
	}
}

// formatWeights formats metric weights for display in formulas, skipping zero weights.
func formatWeights(weights map[string]float64, metrics []string, precision int) string {
	var parts []string
	for _, metric := range metrics {
		if weight, ok := weights[metric]; ok && weight > 0 {
			parts = append(parts, fmt.Sprintf("%.*f*%s", precision, weight, metric))
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " + ")
}

// buildWeightsRenderModel constructs the complete render model with all processed data.
func buildWeightsRenderModel(weights schema.NormalizedWeights, states []schema.CategoryState, precision int) *schema.WeightsRenderModel {
	model := &schema.WeightsRenderModel{
		Title:       "Vendor Scoring Categories",
		Description: "Category score = weighted sum of metrics normalized by their maximum",
	}

	finalWeights := make(map[string]float64, len(weights.Categories))
	for _, state := range states {
		def := schema.CategoryDefinition{Name: state.Name, Active: state.Active}
		if k := indexOf(weights.Categories, state.Name); state.Active && k >= 0 {
			def.ScoreWeight = weights.ScoreWeights[k]
			def.Weights = make(map[string]float64, len(weights.Metrics))
			for m, metric := range weights.Metrics {
				def.Weights[metric] = weights.Weights[k][m]
			}
			def.Formula = formatWeights(def.Weights, weights.Metrics, precision)
			finalWeights[state.Name] = def.ScoreWeight
		}
		model.Categories = append(model.Categories, def)
	}
	model.Final = formatWeights(finalWeights, weights.Categories, precision)
	return model
}

// writeWeightsText displays weights in human-readable text format.
func writeWeightsText(w io.Writer, model *schema.WeightsRenderModel) error {
	if _, err := fmt.Fprintf(w, "📊 %s\n", model.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", len(model.Title)+3)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", model.Description); err != nil {
		return err
	}

	for _, def := range model.Categories {
		if !def.Active {
			if _, err := fmt.Fprintf(w, "⏸️  %s (inactive)\n\n", def.Name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "✅ %s\n", def.Name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: Score = %s\n\n", def.Formula); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "🏁 %s = %s\n", schema.FinalScoreColumn, model.Final)
	return err
}

// writeCSVWeights writes the weight definitions in CSV format.
func writeCSVWeights(w io.Writer, model *schema.WeightsRenderModel, precision int) error {
	fmtFloat, _ := createFormatters(precision)
	header := []string{"category", "active", "score_weight", "formula"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, def := range model.Categories {
			record := []string{
				def.Name,
				strconv.FormatBool(def.Active),
				fmtFloat(def.ScoreWeight),
				def.Formula,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/huangsam/vendorrank/internal/parquet"
	"github.com/huangsam/vendorrank/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// frontierMark flags vendors on the score vs. price frontier in text output.
const frontierMark = "◆"

// jsonRanking is the document written for JSON output.
type jsonRanking struct {
	Categories []schema.CategoryState `json:"categories"`
	Frontier   []string               `json:"frontier"`
	Vendors    []schema.VendorResult  `json:"vendors"`
}

// PrintResults outputs a ranking, dispatching based on the output format configured.
func PrintResults(result schema.Result, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResults(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResults(w, result, cfg.Precision)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteVendorScoresParquet(parquet.ConvertResult(result), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		contract.LogInfo("💾 Wrote Parquet to %s", cfg.OutputFile)
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultTables(w, result, cfg)
		}, "Wrote tables")
	}
	return nil
}

// writeResultTables writes the ranking table followed by the score table.
func writeResultTables(w io.Writer, result schema.Result, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Active categories: %s\n", strings.Join(schema.ActiveNames(result.States), ", ")); err != nil {
		return err
	}
	if err := writeRankTable(w, result, cfg); err != nil {
		return err
	}
	return writeScoreTable(w, result, cfg)
}

// writeRankTable generates the ranking table: final rank then one rank per category.
func writeRankTable(w io.Writer, result schema.Result, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header(append([]string{"Vendor", schema.FinalRankColumn}, result.Ranks.Categories...))
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg, len(result.Ranks.Categories))
	var data [][]string
	for _, r := range result.Ranks.Rows {
		row := []string{
			contract.TruncateName(r.Entity, nameWidth),
			strconv.Itoa(r.Final),
		}
		for _, rank := range r.Categories {
			row = append(row, strconv.Itoa(rank))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeScoreTable generates the score table with price, label and frontier marker.
func writeScoreTable(w io.Writer, result schema.Result, cfg *contract.Config) error {
	fmtFloat, fmtPrice := createFormatters(cfg.Precision)
	vendors := schema.EnrichResult(result)

	table := tablewriter.NewWriter(w)
	headers := []string{"Rank", "Vendor", schema.FinalScoreColumn}
	headers = append(headers, result.Scores.Categories...)
	headers = append(headers, "Price", "Label", "Frontier")
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg, len(result.Scores.Categories))
	var data [][]string
	for _, v := range vendors {
		label := v.Label
		if cfg.UseColors {
			label = contract.GetColorLabel(v.FinalScore)
		}
		marker := ""
		if v.Frontier {
			marker = frontierMark
			if cfg.UseColors {
				marker = contract.FrontierColor.Sprint(marker)
			}
		}

		row := []string{
			strconv.Itoa(v.Rank),
			contract.TruncateName(v.Entity, nameWidth),
			fmtFloat(v.FinalScore),
		}
		for _, category := range result.Scores.Categories {
			row = append(row, fmtFloat(v.CategoryScores[category]))
		}
		row = append(row, fmtPrice(v.Price), label, marker)
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d vendors (%d on the price frontier %s)\n", len(vendors), len(result.Frontier), frontierMark)
	return err
}

// writeCSVResults writes one row per vendor with final and per-category scores and ranks.
func writeCSVResults(w io.Writer, result schema.Result, precision int) error {
	fmtFloat, fmtPrice := createFormatters(precision)

	header := []string{"rank", "vendor", "final_score", "label", "price", "frontier"}
	for _, category := range result.Scores.Categories {
		header = append(header, category+" score", category+" rank")
	}

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, v := range schema.EnrichResult(result) {
			rec := []string{
				strconv.Itoa(v.Rank),
				v.Entity,
				fmtFloat(v.FinalScore),
				v.Label,
				fmtPrice(v.Price),
				strconv.FormatBool(v.Frontier),
			}
			for _, category := range result.Scores.Categories {
				rec = append(rec, fmtFloat(v.CategoryScores[category]), strconv.Itoa(v.CategoryRanks[category]))
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONResults writes the ranking in JSON format.
func writeJSONResults(w io.Writer, result schema.Result) error {
	frontier := result.Frontier
	if frontier == nil {
		frontier = []string{}
	}
	return writeJSON(w, jsonRanking{
		Categories: result.States,
		Frontier:   frontier,
		Vendors:    schema.EnrichResult(result),
	})
}

// Package parquet exports vendor scores to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/vendorrank/schema"
	"github.com/parquet-go/parquet-go"
)

// VendorScore is one (vendor, category) cell of a ranking in long format.
// The final score is stored as its own category row so a single file holds the whole result.
type VendorScore struct {
	// Vendor is the entity identifier from the company data sheet
	Vendor string `parquet:"vendor,snappy,dict"`

	// Category is the category name, or FINAL SCORE for the aggregate
	Category string `parquet:"category,snappy,dict"`

	// Score is the weighted score in [0,1]
	Score float64 `parquet:"score,snappy"`

	// Rank is the competition rank within the category, 1 is best
	Rank int32 `parquet:"rank,snappy"`

	// Price is the vendor price, which never takes part in scoring
	Price float64 `parquet:"price,snappy"`

	// Frontier is true when no other vendor is both better and cheaper
	Frontier bool `parquet:"frontier"`

	// Label is the plain text label of the final score (nullable for category rows)
	Label *string `parquet:"label,optional,snappy"`
}

// WriteVendorScoresParquet writes a slice of VendorScore structs to a Parquet file.
func WriteVendorScoresParquet(data []VendorScore, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the VendorScore struct tags
	writer := parquet.NewGenericWriter[VendorScore](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertResult flattens a scoring result into VendorScore rows, one final row
// followed by one row per active category for every vendor, in ranking order.
func ConvertResult(result schema.Result) []VendorScore {
	prices := make(map[string]float64, len(result.Points))
	frontier := make(map[string]bool, len(result.Points))
	for _, p := range result.Points {
		prices[p.Entity] = p.Price
		frontier[p.Entity] = p.Frontier
	}

	out := make([]VendorScore, 0, len(result.Scores.Rows)*(len(result.Scores.Categories)+1))
	for i, row := range result.Scores.Rows {
		ranks := result.Ranks.Rows[i]
		label := schema.GetPlainLabel(row.Final)
		out = append(out, VendorScore{
			Vendor:   row.Entity,
			Category: schema.FinalScoreColumn,
			Score:    row.Final,
			Rank:     int32(ranks.Final),
			Price:    prices[row.Entity],
			Frontier: frontier[row.Entity],
			Label:    &label,
		})
		for k, category := range result.Scores.Categories {
			out = append(out, VendorScore{
				Vendor:   row.Entity,
				Category: category,
				Score:    row.Categories[k],
				Rank:     int32(ranks.Categories[k]),
				Price:    prices[row.Entity],
				Frontier: frontier[row.Entity],
			})
		}
	}
	return out
}

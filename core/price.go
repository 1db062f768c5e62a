package core

import (
	"fmt"

	"github.com/huangsam/vendorrank/schema"
)

// SplitPrice removes the price column from a ratio table. The returned table is
// the one that gets scored; the prices are kept aside for display only.
func SplitPrice(t schema.RatioTable, column string) (schema.RatioTable, schema.Prices, error) {
	idx := t.MetricIndex(column)
	if idx < 0 {
		return schema.RatioTable{}, nil, fmt.Errorf("price column %q not found", column)
	}

	prices := make(schema.Prices, len(t.Entities))
	out := schema.RatioTable{
		Entities: append([]string(nil), t.Entities...),
		Metrics:  make([]string, 0, len(t.Metrics)-1),
		Values:   make([][]float64, len(t.Values)),
	}
	for j, m := range t.Metrics {
		if j != idx {
			out.Metrics = append(out.Metrics, m)
		}
	}
	for i, row := range t.Values {
		prices[t.Entities[i]] = row[idx]
		out.Values[i] = make([]float64, 0, len(row)-1)
		for j, v := range row {
			if j != idx {
				out.Values[i] = append(out.Values[i], v)
			}
		}
	}
	return out, prices, nil
}

// JoinPrice re-attaches prices to a ratio table as the last column, for display.
func JoinPrice(t schema.RatioTable, prices schema.Prices, column string) schema.RatioTable {
	out := t.Clone()
	out.Metrics = append(out.Metrics, column)
	for i, entity := range out.Entities {
		out.Values[i] = append(out.Values[i], prices[entity])
	}
	return out
}

package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// PlotFormat represents the image format of a rendered plot.
	PlotFormat string
)

// Reserved workbook names. All of them can be overridden through configuration.
const (
	DefaultRatiosSheet       = "Companies Data"
	DefaultWeightsSheet      = "Metrics and Weights"
	DefaultPriceColumn       = "Price"
	DefaultScoreWeightColumn = "SCORE WEIGHT"
)

// Column headers used in score and rank tables.
const (
	FinalScoreColumn = "FINAL SCORE"
	FinalRankColumn  = "FINAL RANK"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All plot formats supported.
const (
	PNGPlot PlotFormat = "png" // default
	SVGPlot PlotFormat = "svg"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidPlotFormats lists all valid plot formats.
var ValidPlotFormats = map[PlotFormat]struct{}{
	PNGPlot: {},
	SVGPlot: {},
}

package contract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/vendorrank/schema"
)

// Default values for configuration.
const (
	DefaultPrecision    = 3
	MaxPrecision        = 6
	DefaultLabelWidth   = 9
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 700
	DefaultPlotTitle    = "Capstone score vs Price"
)

// ErrFileRequired is returned when a command needs a workbook and none was given.
var ErrFileRequired = errors.New("--file is required")

// WindowRawInput holds window settings from the YAML config file.
type WindowRawInput struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Config holds the runtime configuration.
// This struct is the "final, validated" config.
type Config struct {
	File   string
	Layout schema.WorkbookLayout

	// Disabled lists categories that start inactive.
	Disabled []string

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	PlotFile   string
	PlotFormat schema.PlotFormat
	PlotTitle  string

	LabelWidth   int
	WindowWidth  int
	WindowHeight int
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	File              string `mapstructure:"file"`
	RatiosSheet       string `mapstructure:"ratios-sheet"`
	WeightsSheet      string `mapstructure:"weights-sheet"`
	PriceColumn       string `mapstructure:"price-column"`
	ScoreWeightColumn string `mapstructure:"score-weight-column"`
	Disable           string `mapstructure:"disable"`
	Precision         int    `mapstructure:"precision"`
	Width             int    `mapstructure:"width"`
	Color             string `mapstructure:"color"`
	LabelWidth        int    `mapstructure:"label-width"`

	// --- Fields from rankCmd.Flags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`

	// --- Fields from plotCmd.Flags() ---
	PlotFile  string `mapstructure:"plot-file"`
	PlotTitle string `mapstructure:"title"`

	// --- Window settings from config file ---
	Window WindowRawInput `mapstructure:"window"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Disabled != nil {
		clone.Disabled = make([]string, len(c.Disabled))
		copy(clone.Disabled, c.Disabled)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processLayout(cfg, input); err != nil {
		return err
	}
	if err := processPlot(cfg, input); err != nil {
		return err
	}
	processWindow(cfg, input)
	return nil
}

// RequireFile checks that a workbook was given and exists on disk.
func RequireFile(cfg *Config) error {
	if cfg.File == "" {
		return ErrFileRequired
	}
	info, err := os.Stat(cfg.File)
	if err != nil {
		return fmt.Errorf("cannot open workbook: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("workbook path %q is a directory", cfg.File)
	}
	return nil
}

// validateSimpleInputs processes and validates all non-layout fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.File = strings.TrimSpace(input.File)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Disabled = ParseList(input.Disable)

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	// --- 3. Label Width Validation ---
	if input.LabelWidth < 0 {
		return fmt.Errorf("label-width cannot be negative (received %d)", input.LabelWidth)
	}
	cfg.LabelWidth = input.LabelWidth

	return nil
}

// processLayout resolves sheet and reserved column names, falling back to defaults.
func processLayout(cfg *Config, input *ConfigRawInput) error {
	layout := schema.DefaultWorkbookLayout()
	if v := strings.TrimSpace(input.RatiosSheet); v != "" {
		layout.RatiosSheet = v
	}
	if v := strings.TrimSpace(input.WeightsSheet); v != "" {
		layout.WeightsSheet = v
	}
	if v := strings.TrimSpace(input.PriceColumn); v != "" {
		layout.PriceColumn = v
	}
	if v := strings.TrimSpace(input.ScoreWeightColumn); v != "" {
		layout.ScoreWeightColumn = v
	}
	if layout.RatiosSheet == layout.WeightsSheet {
		return fmt.Errorf("ratios and weights must come from different sheets. Both are %q", layout.RatiosSheet)
	}
	if layout.PriceColumn == layout.ScoreWeightColumn {
		return fmt.Errorf("price and score weight columns must differ. Both are %q", layout.PriceColumn)
	}
	cfg.Layout = layout
	return nil
}

// processPlot derives the plot format from the plot file extension.
func processPlot(cfg *Config, input *ConfigRawInput) error {
	cfg.PlotTitle = strings.TrimSpace(input.PlotTitle)
	if cfg.PlotTitle == "" {
		cfg.PlotTitle = DefaultPlotTitle
	}
	cfg.PlotFile = strings.TrimSpace(input.PlotFile)
	if cfg.PlotFile == "" {
		cfg.PlotFormat = schema.PNGPlot
		return nil
	}
	format, err := PlotFormatFromPath(cfg.PlotFile)
	if err != nil {
		return err
	}
	cfg.PlotFormat = format
	return nil
}

// processWindow applies window size settings, falling back to defaults.
func processWindow(cfg *Config, input *ConfigRawInput) {
	cfg.WindowWidth = DefaultWindowWidth
	cfg.WindowHeight = DefaultWindowHeight
	if input.Window.Width > 0 {
		cfg.WindowWidth = input.Window.Width
	}
	if input.Window.Height > 0 {
		cfg.WindowHeight = input.Window.Height
	}
}

// PlotFormatFromPath maps a plot file extension to a plot format.
func PlotFormatFromPath(path string) (schema.PlotFormat, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	format := schema.PlotFormat(ext)
	if _, ok := schema.ValidPlotFormats[format]; !ok {
		return "", fmt.Errorf("unsupported plot file extension %q. must be .png or .svg", filepath.Ext(path))
	}
	return format, nil
}

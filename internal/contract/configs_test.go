package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/vendorrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns raw input matching the viper defaults.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		File:       "vendors.xlsx",
		Precision:  DefaultPrecision,
		Output:     string(schema.TextOut),
		Color:      "yes",
		LabelWidth: DefaultLabelWidth,
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:        "valid minimal config",
			mutate:      func(*ConfigRawInput) {},
			expectError: false,
		},
		{
			name:        "invalid output",
			mutate:      func(in *ConfigRawInput) { in.Output = "xml" },
			expectError: true,
		},
		{
			name:        "parquet without output file",
			mutate:      func(in *ConfigRawInput) { in.Output = "parquet" },
			expectError: true,
		},
		{
			name: "parquet with output file",
			mutate: func(in *ConfigRawInput) {
				in.Output = "parquet"
				in.OutputFile = "scores.parquet"
			},
			expectError: false,
		},
		{
			name:        "precision too low",
			mutate:      func(in *ConfigRawInput) { in.Precision = 0 },
			expectError: true,
		},
		{
			name:        "precision too high",
			mutate:      func(in *ConfigRawInput) { in.Precision = MaxPrecision + 1 },
			expectError: true,
		},
		{
			name:        "invalid color",
			mutate:      func(in *ConfigRawInput) { in.Color = "sometimes" },
			expectError: true,
		},
		{
			name:        "negative label width",
			mutate:      func(in *ConfigRawInput) { in.LabelWidth = -1 },
			expectError: true,
		},
		{
			name:        "same sheet for both tables",
			mutate:      func(in *ConfigRawInput) { in.WeightsSheet = schema.DefaultRatiosSheet },
			expectError: true,
		},
		{
			name:        "same reserved column names",
			mutate:      func(in *ConfigRawInput) { in.PriceColumn = schema.DefaultScoreWeightColumn },
			expectError: true,
		},
		{
			name:        "unsupported plot extension",
			mutate:      func(in *ConfigRawInput) { in.PlotFile = "plot.gif" },
			expectError: true,
		},
		{
			name:        "svg plot file",
			mutate:      func(in *ConfigRawInput) { in.PlotFile = "plot.SVG" },
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	input := validInput()
	input.Disable = "Support, Financial Health"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "vendors.xlsx", cfg.File)
	assert.Equal(t, schema.DefaultWorkbookLayout(), cfg.Layout)
	assert.Equal(t, []string{"Support", "Financial Health"}, cfg.Disabled)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.PNGPlot, cfg.PlotFormat)
	assert.Equal(t, DefaultPlotTitle, cfg.PlotTitle)
	assert.Equal(t, DefaultWindowWidth, cfg.WindowWidth)
	assert.Equal(t, DefaultWindowHeight, cfg.WindowHeight)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidateOverrides(t *testing.T) {
	input := validInput()
	input.RatiosSheet = "Vendors"
	input.WeightsSheet = "Weights"
	input.PriceColumn = "Cost"
	input.ScoreWeightColumn = "Share"
	input.PlotFile = "out/plot.svg"
	input.Window = WindowRawInput{Width: 1200, Height: 800}

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, schema.WorkbookLayout{
		RatiosSheet:       "Vendors",
		WeightsSheet:      "Weights",
		PriceColumn:       "Cost",
		ScoreWeightColumn: "Share",
	}, cfg.Layout)
	assert.Equal(t, schema.SVGPlot, cfg.PlotFormat)
	assert.Equal(t, 1200, cfg.WindowWidth)
	assert.Equal(t, 800, cfg.WindowHeight)
}

func TestRequireFile(t *testing.T) {
	t.Run("missing flag", func(t *testing.T) {
		err := RequireFile(&Config{})
		assert.ErrorIs(t, err, ErrFileRequired)
	})

	t.Run("missing file", func(t *testing.T) {
		err := RequireFile(&Config{File: filepath.Join(t.TempDir(), "nope.xlsx")})
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		err := RequireFile(&Config{File: t.TempDir()})
		assert.Error(t, err)
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vendors.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		assert.NoError(t, RequireFile(&Config{File: path}))
	})
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{File: "a.xlsx", Disabled: []string{"Support"}}
	clone := cfg.Clone()
	clone.Disabled[0] = "Quality"
	clone.File = "b.xlsx"

	assert.Equal(t, "Support", cfg.Disabled[0])
	assert.Equal(t, "a.xlsx", cfg.File)
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/huangsam/vendorrank/internal/workbook"
	"github.com/huangsam/vendorrank/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// loader reads workbooks for every command.
var loader contract.WorkbookLoader = workbook.NewExcelLoader()

// rootCmd is the command-line entrypoint for all other commands.
// Without a subcommand it behaves like view.
var rootCmd = &cobra.Command{
	Use:   "vendorrank",
	Short: "Rank vendors from a spreadsheet of financial ratios.",
	Long: `Vendorrank scores every vendor of a workbook per category, combines the
categories into a final score and plots that score against price.

Examples:
  # Print the rankings and open the interactive window
  vendorrank -f vendors.xlsx

  # Start with the Outlook category switched off
  vendorrank -f vendors.xlsx --disable Outlook`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeView(rootCtx, cfg, loader); err != nil {
			contract.LogFatal("Cannot open vendor view", err)
		}
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".vendorrank") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("VENDORRANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
	viper.SetDefault("label-width", contract.DefaultLabelWidth)
	viper.SetDefault("ratios-sheet", schema.DefaultRatiosSheet)
	viper.SetDefault("weights-sheet", schema.DefaultWeightsSheet)
	viper.SetDefault("price-column", schema.DefaultPriceColumn)
	viper.SetDefault("score-weight-column", schema.DefaultScoreWeightColumn)
	viper.SetDefault("title", contract.DefaultPlotTitle)
	viper.SetDefault("window.width", contract.DefaultWindowWidth)
	viper.SetDefault("window.height", contract.DefaultWindowHeight)
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	color.NoColor = !cfg.UseColors
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Package cmd defines the command-line interface for vendorrank.
package cmd

import (
	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/huangsam/vendorrank/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to the .xlsx workbook with company data and category weights")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("disable", "", "Comma-separated categories that start inactive")
	rootCmd.PersistentFlags().String("ratios-sheet", schema.DefaultRatiosSheet, "Name of the sheet holding company data")
	rootCmd.PersistentFlags().String("weights-sheet", schema.DefaultWeightsSheet, "Name of the sheet holding category weights")
	rootCmd.PersistentFlags().String("price-column", schema.DefaultPriceColumn, "Company data column holding the price")
	rootCmd.PersistentFlags().String("score-weight-column", schema.DefaultScoreWeightColumn, "Weights column holding each category's share of the final score")
	rootCmd.PersistentFlags().Int("label-width", contract.DefaultLabelWidth, "Maximum characters of a category checkbox label (0 = no limit)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of rankCmd to Viper
	rankCmd.Flags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rankCmd.Flags().String("output-file", "", "Optional path to write output to")
	if err := viper.BindPFlags(rankCmd.Flags()); err != nil {
		contract.LogFatal("Error binding rank flags", err)
	}

	// The weights command shares the output flags, minus parquet.
	weightsCmd.Flags().AddFlag(rankCmd.Flags().Lookup("output"))
	weightsCmd.Flags().AddFlag(rankCmd.Flags().Lookup("output-file"))

	// Bind all flags of plotCmd to Viper
	plotCmd.Flags().String("plot-file", "", "Path of the rendered plot (.png or .svg)")
	plotCmd.Flags().String("title", contract.DefaultPlotTitle, "Title of the plot")
	if err := viper.BindPFlags(plotCmd.Flags()); err != nil {
		contract.LogFatal("Error binding plot flags", err)
	}
	viewCmd.Flags().AddFlag(plotCmd.Flags().Lookup("title"))
}

// Package cmd defines the command-line interface for backpack.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dcoder4/backpack/internal/contract"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(identityCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the config subcommands to the parent config command
	configCmd.AddCommand(configDocsCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().IntP("capacity", "n", contract.DefaultCapacity, "Interval history capacity per timer")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for timing statistics")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().StringP("output-file", "o", "", "Optional path to write output to")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of demoCmd to Viper
	demoCmd.Flags().IntP("iterations", "i", contract.DefaultIterations, "Number of simulated frames to process")
	demoCmd.Flags().String("work-delay", contract.DefaultWorkDelay.String(), "Base delay per unit of simulated work")
	if err := viper.BindPFlags(demoCmd.Flags()); err != nil {
		contract.LogFatal("Error binding demo flags", err)
	}

	// Bind all flags of identityCmd to Viper
	identityCmd.Flags().String("endpoint", "", "Fleet service endpoint URL")
	if err := viper.BindPFlags(identityCmd.Flags()); err != nil {
		contract.LogFatal("Error binding identity flags", err)
	}

	// Annotate flags are positional specs, not config, so they stay out of Viper.
	annotateCmd.Flags().StringArrayVar(&rectSpecs, "rect", nil, "Rectangle as x1,y1,x2,y2 in unit coordinates (repeatable)")
	annotateCmd.Flags().StringArrayVar(&labelSpecs, "label", nil, "Label as x,y,text in unit coordinates (repeatable)")
	annotateCmd.Flags().StringArrayVar(&lineSpecs, "line", nil, "Line as x1,y1,x2,y2[,thickness] in unit coordinates (repeatable)")
	annotateCmd.Flags().StringArrayVar(&markerSpecs, "marker", nil, "Marker as x,y in unit coordinates (repeatable)")
	annotateCmd.Flags().BoolVar(&withTimestamp, "timestamp", false, "Stamp the current time in the top-left corner")
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dcoder4/backpack/core"
	"github.com/dcoder4/backpack/internal/contract"
)

// configCmd groups configuration-related subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration serialization support.",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// configDocsCmd prints the registered SerDe reference.
var configDocsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List the supported config value formats.",
	Long: `List every registered config serializer with its description and an
example value, for use in application manifests.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteConfigDocs(cfg); err != nil {
			contract.LogFatal("Cannot list config docs", err)
		}
	},
}

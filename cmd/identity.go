package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dcoder4/backpack/core"
	"github.com/dcoder4/backpack/internal/contract"
)

// identityCmd resolves and prints the application instance identity.
var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Show the identity of this application instance.",
	Long: `Resolve the identity of the running application instance from the
fleet management service and print it.

The instance is located by the APPLICATION_INSTANCE_ID environment
variable. When the variable is unset or the instance is unknown to the
service, a partial identity is printed instead of failing.

Examples:
  # Resolve against a local fleet service
  backpack identity --endpoint http://localhost:8080

  # Same, via environment
  BACKPACK_ENDPOINT=http://localhost:8080 backpack identity`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteIdentity(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot resolve identity", err)
		}
	},
}

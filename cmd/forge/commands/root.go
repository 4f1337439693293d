package commands

import (
	"github.com/spf13/cobra"

	"github.com/clientforge/forge/errors"
	"github.com/clientforge/forge/logger"
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "forge - generate client libraries from API specs",
	Long: `forge - generate client libraries from OpenAPI specifications.

forge reads an OpenAPI spec (Swagger 2.0 or OpenAPI 3.x, YAML or JSON),
normalizes it, and emits a complete client-library source tree for the
requested target language.

Examples:
  forge generate petstore ./openapi.yaml            # Rust crate in .
  forge generate petstore ./openapi.json -o ./sdk   # choose output dir
  forge generate petstore spec.yaml --derive PartialEq --flag ormlite
  forge generate petstore spec.yaml --examples=false`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return errors.Wrap(err, "initializing logger")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Log as JSON lines instead of console output")

	rootCmd.AddCommand(GenerateCmd)
	rootCmd.AddCommand(VersionCmd)
}

// Execute runs the root command.
func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

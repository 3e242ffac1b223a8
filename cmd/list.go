package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/fake-useragent/internal/app"
	"github.com/oshokin/fake-useragent/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in User-Agent strings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := app.ExecuteListCommand(cmd.Context(), cmd.OutOrStdout()); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to list user agents: %v", err)
		}
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(listCmd)
}

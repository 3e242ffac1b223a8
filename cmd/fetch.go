package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/fake-useragent/internal/app"
	"github.com/oshokin/fake-useragent/internal/logger"
)

//nolint:gochecknoglobals // Flag value bound during init.
var fetchOutputPath string

//nolint:gochecknoglobals // Cobra command requires a global definition.
var fetchCmd = &cobra.Command{
	Use:   "fetch URL",
	Short: "Fetch a URL with a random User-Agent",
	Long: `Performs a GET request with a User-Agent chosen at random from the built-in list
and prints the response status, the User-Agent and the request ID that were sent.

Use --log-level debug to dump the request and response.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := app.ExecuteFetchCommand(cmd.Context(), appConfig, cmd.OutOrStdout(), args[0], fetchOutputPath); err != nil {
			logger.Fatalf(cmd.Context(), "Fetch failed: %v", err)
		}
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	fetchCmd.Flags().StringVarP(&fetchOutputPath, "output", "o", "",
		"file to save the response body to.")

	rootCmd.AddCommand(fetchCmd)
}

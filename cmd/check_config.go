package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/fake-useragent/internal/app"
	"github.com/oshokin/fake-useragent/internal/logger"
)

//nolint:gochecknoglobals // Flag values bound during init.
var checkConfigOptions app.CheckConfigOptions

//nolint:gochecknoglobals // Cobra command requires a global definition.
var checkConfigCmd = &cobra.Command{
	Use:   "check-config [files...]",
	Short: "Check the linting and formatting section of project metadata files",
	Long: `Validates the tooling section (by default [tool.ruff]) of TOML or YAML metadata files.

The check requires:
- a target version of py310 or newer
- a line length between 79 and 120 and an indent width of 4
- include patterns covering src, tests and pyproject.toml
- lint rule categories E, F, I and UP
- double quotes and space indentation

With --strict the exact project values are enforced as well:
target version py310, line length 100, the exact include patterns and B905 ignored.

Without arguments the metadata file from the configuration is checked.`,
	Run: func(cmd *cobra.Command, files []string) {
		err := app.ExecuteCheckConfigCommand(cmd.Context(), appConfig, cmd.OutOrStdout(), files, checkConfigOptions)
		if err != nil {
			logger.Fatalf(cmd.Context(), "Tooling configuration check failed:\n%v", err)
		}
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	flags := checkConfigCmd.Flags()

	flags.StringVarP(&checkConfigOptions.Section, "section", "s", "",
		"dotted path of the tooling section (default from configuration, 'tool.ruff').")
	flags.BoolVar(&checkConfigOptions.Strict, "strict", false,
		"enforce the exact project values.")
	flags.StringVarP(&checkConfigOptions.Output, "output", "o", app.OutputText,
		"report format: text or yaml.")

	rootCmd.AddCommand(checkConfigCmd)
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/fake-useragent/internal/app"
	"github.com/oshokin/fake-useragent/internal/config"
	"github.com/oshokin/fake-useragent/internal/logger"
	"github.com/oshokin/fake-useragent/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "fake-useragent [flags]",
		Short: "Print random browser User-Agent strings.",
		Long: `Fake User-Agent prints browser User-Agent strings chosen uniformly at random
from a small built-in list.

It also provides commands to:
- List the built-in User-Agent strings
- Fetch a URL with a random User-Agent
- Check the linting and formatting section of a project metadata file`,
		Args:             cobra.NoArgs,
		Version:          version.Short(),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := app.ExecuteRootCommand(cmd.Context(), appConfig, cmd.OutOrStdout(), nil); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to print user agents: %v", err)
			}
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmd.PersistentFlags().StringP(
		"log-level",
		"L",
		"",
		"log level: debug, info, warn, error.")

	rootCmd.Flags().Int64P(
		"count",
		"n",
		0,
		"number of User-Agent strings to print.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("count"); flag != nil && flag.Changed {
		cfg.Count, _ = flags.GetInt64("count")
	}

	return config.ValidateConfig(cfg)
}

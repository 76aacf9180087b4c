// Package cmd provides the root command and CLI setup for beanlint.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"beanlint.dev/pkg/beanlint/internal/adapter"
	"beanlint.dev/pkg/beanlint/internal/controller"
	"beanlint.dev/pkg/beanlint/internal/domain"
	m "beanlint.dev/pkg/beanlint/internal/model"
)

// formatFlag selects the report format for the check commands.
var formatFlag string

// excludePatterns is a root-level flag that filters projects by name.
var excludePatterns []string

// verboseFlag raises the log level to debug.
var verboseFlag bool

// logFileFlag overrides the rotating log file location.
var logFileFlag string

const pathArgsHelp = `Paths name the repository roots to scan for projects (default: current
directory). A project is any directory carrying the conventional layout
(src/main/java or src/test/java).`

const rootLongDescription = `Beanlint enforces repository-wide conventions on Java/Spring project trees:
registered configuration classes must exist as source files, configuration
classes must declare their bean-proxying mode explicitly, and aggregate test
suites must reference every test class.

` + pathArgsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beanlint",
		Short: "Convention checks for Java/Spring repositories",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(
		&formatFlag, formatFlagName, "f",
		viper.GetString(formatConfigKey),
		"report format: text or yaml",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude projects matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "rotating log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// buildRunner wires the validator stack for a command. Tests swap it for a
// stub runner.
var buildRunner = func(cmd *cobra.Command, ui controller.UI) domain.Runner {
	fs := adapter.NewLocalSourceFSAdapter()
	factories := adapter.NewLocalFactoriesAdapter()
	scanner := domain.NewProjectScanner(fs)

	return domain.NewRunner(scanner, ui,
		domain.NewFactoryValidator(fs, factories),
		domain.NewProxyValidator(fs, domain.NewRegexSelfInvocationDetector()),
		domain.NewSuiteValidator(fs),
	)
}

// buildInspector wires the introspection stack for the list command.
var buildInspector = func() *domain.Inspector {
	fs := adapter.NewLocalSourceFSAdapter()

	return domain.NewInspector(fs, adapter.NewLocalFactoriesAdapter(), domain.NewProjectScanner(fs))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

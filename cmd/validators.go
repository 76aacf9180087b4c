package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"beanlint.dev/pkg/beanlint/internal/controller"
	"beanlint.dev/pkg/beanlint/internal/domain"
)

// runSingleValidator executes one named validator across the discovered
// projects, sharing the root-level exclude and format settings.
func runSingleValidator(cmd *cobra.Command, args []string, name string) error {
	ui := controller.NewSimpleUI(cmd, viper.GetString(formatConfigKey))
	runner := buildRunner(cmd, ui)
	runner.RegisterCleanup(closeLogWriter)

	return runner.Run(cmd.Context(), domain.RunArgs{
		Paths:   parsePaths(args),
		Exclude: viper.GetStringSlice(excludeConfigKey),
		Only:    []string{name},
	})
}

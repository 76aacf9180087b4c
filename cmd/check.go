package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"beanlint.dev/pkg/beanlint/internal/controller"
	"beanlint.dev/pkg/beanlint/internal/domain"
)

var checkParallelFlag int
var checkKeepGoingFlag bool

const checkLongDescription = `Run every convention validator against each discovered project. The first
violation aborts the run unless --keep-going is set; the exit code is nonzero
when any project fails.

` + pathArgsHelp

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Run all convention validators",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := controller.NewSimpleUI(cmd, viper.GetString(formatConfigKey))
			runner := buildRunner(cmd, ui)
			runner.RegisterCleanup(closeLogWriter)

			return runner.Run(cmd.Context(), domain.RunArgs{
				Paths:     parsePaths(args),
				Exclude:   viper.GetStringSlice(excludeConfigKey),
				Parallel:  viper.GetInt(parallelConfigKey),
				KeepGoing: viper.GetBool(keepGoingConfigKey),
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&checkParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of projects validated concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVarP(&checkKeepGoingFlag, keepGoingFlagName, "k", viper.GetBool(keepGoingConfigKey), "validate every project instead of stopping at the first failure")
	bindFlagToConfig(cmd.Flags().Lookup(keepGoingFlagName), keepGoingConfigKey)
}

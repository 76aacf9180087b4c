package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"beanlint.dev/pkg/beanlint/internal/controller"
)

const listLongDescription = `List discovered projects with their registered, configuration, and test
class counts.

` + pathArgsHelp

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [paths...]",
		Short: "List projects and convention counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			inspector := buildInspector()

			summaries, err := inspector.Inspect(cmd.Context(), parsePaths(args), viper.GetStringSlice(excludeConfigKey))
			if err != nil {
				return err
			}

			ui := controller.NewSimpleUI(cmd, viper.GetString(formatConfigKey))

			return ui.DisplayProjects(cmd.Context(), summaries)
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}

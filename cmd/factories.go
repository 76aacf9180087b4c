package cmd

import (
	"github.com/spf13/cobra"
)

const factoriesLongDescription = `Confirm that every class declared under the well-known registration keys of
META-INF/spring.factories exists as a source file under src/main/java.
Projects without a mapping file pass trivially.

` + pathArgsHelp

// factoriesCmd represents the factories command.
var factoriesCmd = newFactoriesCmd()

func newFactoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factories [paths...]",
		Short: "Validate registered configuration classes",
		Long:  factoriesLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingleValidator(cmd, args, "factories")
		},
	}
}

func init() {
	rootCmd.AddCommand(factoriesCmd)
}

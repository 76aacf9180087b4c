package cmd

import (
	"github.com/spf13/cobra"
)

const suitesLongDescription = `Confirm that each project's aggregate *TestsSuite file references every
*Tests class under src/test/java (Base/Abstract test classes excluded).
Projects with at most one test class need no suite.

` + pathArgsHelp

// suitesCmd represents the suites command.
var suitesCmd = newSuitesCmd()

func newSuitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suites [paths...]",
		Short: "Validate test-suite completeness",
		Long:  suitesLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingleValidator(cmd, args, "suites")
		},
	}
}

func init() {
	rootCmd.AddCommand(suitesCmd)
}

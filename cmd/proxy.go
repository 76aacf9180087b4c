package cmd

import (
	"github.com/spf13/cobra"
)

const proxyLongDescription = `Scan configuration classes under src/main/java for bean-method
self-invocation. Classes with no internally cross-called bean method must
carry an explicit @Configuration(value = "...", proxyBeanMethods = ...)
declaration.

` + pathArgsHelp

// proxyCmd represents the proxy command.
var proxyCmd = newProxyCmd()

func newProxyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "proxy [paths...]",
		Short: "Validate bean-proxying declarations",
		Long:  proxyLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingleValidator(cmd, args, "proxy")
		},
	}
}

func init() {
	rootCmd.AddCommand(proxyCmd)
}

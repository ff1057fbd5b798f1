package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-cli",
	Short: "Portfolio CLI tool",
	Long: `Portfolio CLI is a helper for operating the portfolio site.

Available commands:
  resolve    Show which page a legacy #/ link opens
  check      Probe the public API endpoints the site depends on
  version    Print the CLI version

Use "portfolio-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

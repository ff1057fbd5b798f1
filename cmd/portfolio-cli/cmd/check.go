package cmd

import (
	"fmt"
	"time"

	"github.com/ruebensh/portfolio/cmd/portfolio-cli/internal/probe"
	"github.com/ruebensh/portfolio/internal/backend"
	"github.com/spf13/cobra"
)

var (
	checkAPIURL       string
	checkTimeout      time.Duration
	checkOutputFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe the public API endpoints",
	Long: `Check fetches every public resource the site renders (projects,
certificates, skills, experience, about and settings) concurrently and reports
whether each one answered.

Examples:
  portfolio-cli check --api http://localhost:3000
  portfolio-cli check --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := backend.New(checkAPIURL, checkTimeout)
		results := probe.Run(cmd.Context(), probe.Endpoints(client))

		out := cmd.OutOrStdout()
		if checkOutputFormat == "json" {
			if err := probe.WriteJSON(out, results); err != nil {
				return err
			}
		} else {
			probe.WriteTable(out, results)
		}
		if n := probe.Failed(results); n > 0 {
			return fmt.Errorf("%d of %d endpoints failed", n, len(results))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkAPIURL, "api", "http://localhost:3000", "Base URL of the portfolio API")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", backend.DefaultTimeout, "Timeout per request")
	checkCmd.Flags().StringVarP(&checkOutputFormat, "format", "f", "table", "Output format (table, json)")
	rootCmd.AddCommand(checkCmd)
}

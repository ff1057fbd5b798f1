package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ruebensh/portfolio/internal/router"
	"github.com/spf13/cobra"
)

var resolveOutputFormat string

var resolveCmd = &cobra.Command{
	Use:   "resolve <fragment>",
	Short: "Resolve a hash fragment to a page",
	Long: `Resolve maps a legacy hash link such as "#/project/42" onto the page the
server renders for it. Unknown fragments resolve to the home page.

Examples:
  portfolio-cli resolve '#/projects'
  portfolio-cli resolve '#/project/42' --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		route := router.Resolve(args[0])
		out := cmd.OutOrStdout()
		if resolveOutputFormat == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(route)
		}
		fmt.Fprintf(out, "path: %s\nname: %s\n", route.Path, route.Name)
		keys := make([]string, 0, len(route.Params))
		for k := range route.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "param %s: %s\n", k, route.Params[k])
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveOutputFormat, "format", "f", "text", "Output format (text, json)")
	rootCmd.AddCommand(resolveCmd)
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/props/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [tasks...]",
		Short: "Print the resolved file properties of tasks",
		Long: "Print the named input and output file properties of the given tasks and their\n" +
			"dependencies. Without arguments every task in the project is resolved.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			asJSON, _ := cmd.Flags().GetBool("json")
			expand, _ := cmd.Flags().GetBool("expand")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Resolve(cmd.Context(), args, app.ResolveOptions{
				Filter: filter,
				JSON:   asJSON,
				Expand: expand,
				Watch:  watch,
			})
		},
	}
	cmd.Flags().StringP("filter", "f", "", "Only show properties whose name matches the glob (segments split on '.')")
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	cmd.Flags().BoolP("expand", "e", false, "List the files each input denotes")
	cmd.Flags().BoolP("watch", "w", false, "Resolve again whenever a project file changes")
	return cmd
}

package commands

import "github.com/spf13/cobra"

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [tasks...]",
		Short: "Show whether the outputs of tasks are up to date",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Status(cmd.Context(), args)
		},
	}
}

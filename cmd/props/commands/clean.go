package commands

import "github.com/spf13/cobra"

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [tasks...]",
		Short: "Remove stale outputs and record the current ones",
		Long: "Remove files a task produced on its previous run that it no longer declares,\n" +
			"then record the current outputs. Paths matching the task's keep patterns survive.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Clean(cmd.Context(), args)
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRecheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recheck [paths...]",
		Short: "Recheck only the given files, as the watch loop would",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modules, diagnostics, err := c.components.App.Recheck(cmd.Context(), args)
			if err != nil {
				return err
			}

			hasErrors := printDiagnostics(diagnostics)
			fmt.Fprintf(cmd.OutOrStdout(), "rechecked %d modules, %d diagnostics\n", len(modules), len(diagnostics))
			if hasErrors {
				cmd.SilenceUsage = true
				return errCheckFailed
			}
			return nil
		},
	}
}

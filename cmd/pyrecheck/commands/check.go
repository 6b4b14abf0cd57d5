package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run a full type check over every configured source root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			modules, diagnostics, err := c.components.App.Check(cmd.Context())
			if err != nil {
				return err
			}

			hasErrors := printDiagnostics(diagnostics)
			fmt.Fprintf(cmd.OutOrStdout(), "checked %d modules, %d diagnostics\n", len(modules), len(diagnostics))
			if hasErrors {
				cmd.SilenceUsage = true
				return errCheckFailed
			}
			return nil
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RastaKolobar/pyre-check/internal/adapters/watcher"
	"github.com/RastaKolobar/pyre-check/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [root]",
		Short: "Watch for file changes and recheck affected modules as they happen",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := c.components.Config.ProjectRoot
			if len(args) == 1 {
				root = args[0]
			}

			debounce, err := cmd.Flags().GetDuration("debounce")
			if err != nil {
				return err
			}

			if _, _, err := c.components.App.Check(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "watching %s for changes\n", root)
			return c.components.App.Watch(cmd.Context(), c.components.Watcher, root, debounce, func(modules []string, diagnostics []domain.Diagnostic, err error) {
				if err != nil {
					c.components.Logger.Error("recheck failed", "error", err)
					return
				}
				printDiagnostics(diagnostics)
				fmt.Fprintf(cmd.OutOrStdout(), "rechecked %d modules, %d diagnostics\n", len(modules), len(diagnostics))
			})
		},
	}
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "how long to wait for a burst of edits to settle before rechecking")
	return cmd
}

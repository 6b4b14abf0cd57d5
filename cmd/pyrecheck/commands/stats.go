package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print registry size and heap usage for the running engine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats := c.components.App.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "registry keys: %d\n", stats.RegistrySize)
			fmt.Fprintf(cmd.OutOrStdout(), "heap bytes:    %d\n", stats.HeapBytes)
			return nil
		},
	}
}

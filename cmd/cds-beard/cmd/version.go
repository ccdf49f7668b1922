package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCommand creates the version command.
func newVersionCommand(info Info) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cds-beard %s (commit %s, built %s)\n",
				info.Version, info.Commit, info.Date)
		},
	}
}

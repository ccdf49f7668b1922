// Package cmd defines the cds-beard command tree.
package cmd

import (
	"github.com/spf13/cobra"
)

// Info carries version information and configuration defaults from the app
// into the command tree.
type Info struct {
	Version string
	Commit  string
	Date    string

	Workers int
	Output  string
}

// NewRoot creates the root cds-beard command.
func NewRoot(info Info) *cobra.Command {
	root := &cobra.Command{
		Use:   "cds-beard",
		Short: "Reconcile author signature clusterings",
		Long: `cds-beard reconciles two clusterings of the same set of author
signatures - the state before and after re-running the disambiguation
pipeline - and reports which clusters were matched, which are new, and
which were removed.`,
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMatchCommand(info))
	root.AddCommand(newVersionCommand(info))

	return root
}

// Package cli assembles the command tree.
package cli

import (
	"github.com/spf13/cobra"

	"prio/internal/interfaces/cli/migrate"
	"prio/internal/interfaces/cli/server"
)

// NewRootCommand builds the root command with all subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "prio",
		Short:         "Issue checklist service",
		Long:          "prio serves checklist items attached to issues, with progress rollups and an activity stream.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(server.NewCommand())
	root.AddCommand(migrate.NewCommand())

	return root
}

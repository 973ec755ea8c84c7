package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/crono/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "crono",
		Short: options.Wrap80("Conference schedule viewer and PNG exporter for the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addDays(topLevel)
	addExport(topLevel)
	addVersion(topLevel)
}

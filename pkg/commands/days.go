package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/crono/pkg/runner/days"
	"tableflip.dev/crono/pkg/store"
)

func addDays(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "days",
		Short: "list the schedule's days and their ids",
		Example: `
crono days
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			d := days.Days{Config: cfg}
			return d.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

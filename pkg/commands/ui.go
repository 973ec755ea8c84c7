package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/crono/pkg/runner/ui"
	"tableflip.dev/crono/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive schedule viewer",
		Example: `
crono ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			i := ui.UI{Config: cfg}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

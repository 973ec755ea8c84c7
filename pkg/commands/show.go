package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/crono/pkg/commands/options"
	"tableflip.dev/crono/pkg/runner/show"
	"tableflip.dev/crono/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	so := &options.SessionOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "print the schedule",
		Example: `
crono show
crono show --day hoje --sessions
crono show -d day2 -c refeições
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			s := show.Show{
				Day:      vo.Day,
				Category: vo.Category,
				Sessions: so.Sessions,
				Config:   cfg,
			}
			return s.Do(context.Background())
		},
	}
	options.AddDayArg(cmd, vo)
	options.AddCategoryArg(cmd, vo)
	options.AddSessionsArg(cmd, so)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/crono/pkg/commands/options"
	"tableflip.dev/crono/pkg/runner/export"
	"tableflip.dev/crono/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	eo := &options.ExportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "capture the schedule as a PNG via headless Chromium",
		Example: `
crono export
crono export --day hoje -o hoje.png
crono export -d day3 -c mensagens --scale 3
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			e := export.Export{
				Day:        vo.Day,
				Category:   vo.Category,
				Output:     eo.Output,
				Width:      eo.Width,
				Scale:      eo.Scale,
				Background: eo.Background,
				Timeout:    eo.Timeout(),
				Config:     cfg,
			}
			return e.Do(context.Background())
		},
	}
	options.AddDayArg(cmd, vo)
	options.AddCategoryArg(cmd, vo)
	options.AddExportArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

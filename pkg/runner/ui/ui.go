package ui

import (
	"context"

	"tableflip.dev/crono/pkg/export"
	"tableflip.dev/crono/pkg/links"
	"tableflip.dev/crono/pkg/schedule"
	"tableflip.dev/crono/pkg/store"
	"tableflip.dev/crono/pkg/tui"
	"tableflip.dev/crono/pkg/uistate"
)

// UI runs the interactive schedule viewer.
type UI struct {
	Config *store.Config
}

// captureExporter adapts the PNG capture to the viewer's export key,
// carrying the configured defaults.
type captureExporter struct {
	sched *schedule.Schedule
	cfg   store.ExportConfig
}

func (c *captureExporter) Export(ctx context.Context, st uistate.State) (string, error) {
	opts := export.Options{
		Day:        st.ActiveDay,
		Category:   st.Filter,
		Filtered:   st.Filtered,
		OutputPath: c.cfg.Output,
		Width:      c.cfg.Width,
		Scale:      c.cfg.Scale,
		Background: c.cfg.Background,
	}
	return export.Capture(ctx, c.sched, opts)
}

func (n *UI) Do(ctx context.Context) error {
	s, err := n.Config.LoadSchedule()
	if err != nil {
		return err
	}
	resolver := links.New(n.Config.Links)
	exporter := &captureExporter{sched: s, cfg: n.Config.Export}
	return tui.Run(s, resolver, exporter)
}

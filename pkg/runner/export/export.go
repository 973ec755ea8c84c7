package export

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	pngexport "tableflip.dev/crono/pkg/export"
	"tableflip.dev/crono/pkg/runner/show"
	"tableflip.dev/crono/pkg/schedule"
	"tableflip.dev/crono/pkg/store"
)

// Export captures a PNG snapshot of the schedule.
type Export struct {
	Day        string
	Category   string
	Output     string
	Width      int
	Scale      float64
	Background string
	Timeout    time.Duration
	Config     *store.Config
}

func (n *Export) Do(ctx context.Context) error {
	s, err := n.Config.LoadSchedule()
	if err != nil {
		return err
	}

	opts := pngexport.Options{
		OutputPath: firstString(n.Output, n.Config.Export.Output),
		Width:      firstInt(n.Width, n.Config.Export.Width),
		Scale:      firstFloat(n.Scale, n.Config.Export.Scale),
		Background: firstString(n.Background, n.Config.Export.Background),
		Timeout:    n.Timeout,
	}
	if n.Day != "" {
		day := show.ResolveDay(s, n.Day)
		if day == nil {
			return fmt.Errorf("unknown day %q", n.Day)
		}
		opts.Day = day.ID
	}
	if n.Category != "" {
		cat, err := schedule.ParseCategory(n.Category)
		if err != nil {
			return err
		}
		opts.Category = cat
		opts.Filtered = true
	}

	path, err := pngexport.Capture(ctx, s, opts)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "png: %s\n", path)
	return nil
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstFloat(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

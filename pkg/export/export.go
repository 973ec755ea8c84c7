package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"tableflip.dev/crono/pkg/schedule"
)

// Default capture parameters. The wider layout is used when every day is
// rendered side by side; single-day exports use the narrower one.
const (
	DefaultWidthAll   = 1200
	DefaultWidthDaily = 800
	DefaultScale      = 2.0
	DefaultBackground = "#ffffff"
	DefaultTimeoutSec = 30
)

// settleDelay allows final paints after the page signals readiness.
const settleDelay = 500 * time.Millisecond

// Options defines parameters for a PNG export.
type Options struct {
	// Day restricts the export to one day id. Empty exports every day.
	Day string

	// Category restricts events to one category when Filtered is set.
	Category schedule.Category
	Filtered bool

	// OutputPath is where the PNG will be written. Empty derives a name
	// from the day id in the working directory.
	OutputPath string

	// Width is the viewport width in CSS pixels. Zero picks a default
	// based on whether one or every day is rendered.
	Width int

	// Scale is the device scale factor. Zero means DefaultScale.
	Scale float64

	// Background is the page background color.
	Background string

	// Timeout bounds the entire capture. Zero means DefaultTimeoutSec.
	Timeout time.Duration
}

func (o *Options) setDefaults() {
	if o.Width <= 0 {
		if o.Day == "" {
			o.Width = DefaultWidthAll
		} else {
			o.Width = DefaultWidthDaily
		}
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeoutSec * time.Second
	}
	if o.OutputPath == "" {
		name := "programacao.png"
		if o.Day != "" {
			name = "programacao-" + o.Day + ".png"
		}
		o.OutputPath = name
	}
}

// Capture renders the schedule to a standalone HTML page, loads it in
// headless Chromium, and screenshots it once the page reports ready.
// It returns the path of the written PNG.
func Capture(parentCtx context.Context, s *schedule.Schedule, opts Options) (string, error) {
	opts.setDefaults()
	if opts.Day != "" && s.DayByID(opts.Day) == nil {
		return "", fmt.Errorf("export: unknown day %q", opts.Day)
	}

	page, err := Render(s, opts)
	if err != nil {
		return "", err
	}

	tmp, err := os.MkdirTemp("", "crono-export-")
	if err != nil {
		return "", fmt.Errorf("export: temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	htmlPath := filepath.Join(tmp, "page.html")
	if err := os.WriteFile(htmlPath, page, 0o644); err != nil {
		return "", fmt.Errorf("export: write page: %w", err)
	}

	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	height := pageHeight(s, opts)
	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(opts.Width), int64(height), chromedp.EmulateScale(opts.Scale)),
		chromedp.Navigate("file://" + htmlPath),
		chromedp.WaitVisible(`[data-ready="true"]`, chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.FullScreenshot(&png, 100),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return "", fmt.Errorf("export: chromedp run failed: %w", err)
	}

	if err := os.WriteFile(opts.OutputPath, png, 0o644); err != nil {
		return "", fmt.Errorf("export: write PNG: %w", err)
	}
	return opts.OutputPath, nil
}

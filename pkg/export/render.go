package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"math"

	"tableflip.dev/crono/pkg/glyph"
	"tableflip.dev/crono/pkg/schedule"
	"tableflip.dev/crono/pkg/timegrid"
)

//go:embed page.html.tmpl
var pageTmpl string

var page = template.Must(template.New("page").Parse(pageTmpl))

// headerHeight reserves room for the title block above the time board.
const headerHeight = 120

type categoryStyle struct {
	Border string
	Fill   string
}

var palette = map[schedule.Category]categoryStyle{
	schedule.Routine:    {Border: "#64748b", Fill: "#f1f5f9"},
	schedule.Meals:      {Border: "#3b82f6", Fill: "#dbeafe"},
	schedule.Activities: {Border: "#f59e0b", Fill: "#fef3c7"},
	schedule.Messages:   {Border: "#10b981", Fill: "#d1fae5"},
	schedule.Transport:  {Border: "#a855f7", Fill: "#f3e8ff"},
}

type sessionRow struct {
	Audience string
	Title    string
	Speaker  string
}

type eventBox struct {
	Top      int
	Height   int
	Left     float64 // percent of the column
	Width    float64 // percent of the column
	Z        int
	Border   string
	Fill     string
	Glyph    string
	Title    string
	Times    string
	Sessions []sessionRow
}

type dayColumn struct {
	Title  string
	Events []eventBox
}

type hourMark struct {
	Top   int
	Label string
}

type pageData struct {
	Title      string
	Subtitle   string
	Background string
	Width      int
	AxisHeight int
	HourRow    int
	HourMarks  []hourMark
	Days       []dayColumn
}

func visibleFn(opts Options) func(schedule.Event) bool {
	if !opts.Filtered {
		return nil
	}
	return func(e schedule.Event) bool { return e.Category == opts.Category }
}

func exportDays(s *schedule.Schedule, opts Options) []schedule.Day {
	if opts.Day == "" {
		return s.Days
	}
	if d := s.DayByID(opts.Day); d != nil {
		return []schedule.Day{*d}
	}
	return nil
}

// pageHeight is the full document height in CSS pixels, used to size the
// capture viewport so nothing is cropped.
func pageHeight(s *schedule.Schedule, opts Options) int {
	cfg := timegrid.WebConfig()
	return headerHeight + int(cfg.Height()) + 60
}

func buildColumn(cfg timegrid.Config, day schedule.Day, visible func(schedule.Event) bool) dayColumn {
	col := dayColumn{Title: day.Title()}
	for _, ev := range day.Events {
		if visible != nil && !visible(ev) {
			continue
		}
		r := cfg.Layout(ev, day.Events, visible)
		top := int(r.Top)
		if top < 0 {
			top = 0
		}
		box := eventBox{
			Top:    top,
			Height: int(r.Height),
			Left:   math.Round(r.Left*10000) / 100,
			Width:  math.Round(r.Width*10000) / 100,
			Z:      r.Layer,
			Border: palette[ev.Category].Border,
			Fill:   palette[ev.Category].Fill,
			Glyph:  glyph.ForEvent(ev.Category, ev.Title).Symbol,
			Title:  ev.Title,
			Times:  fmt.Sprintf("%s - %s", ev.Start, ev.End),
		}
		for _, sess := range ev.Sessions {
			box.Sessions = append(box.Sessions, sessionRow{
				Audience: sess.Audience.Label(),
				Title:    sess.Title,
				Speaker:  sess.Speaker,
			})
		}
		col.Events = append(col.Events, box)
	}
	return col
}

// Render produces the standalone HTML document for the requested view.
// The live indicator is intentionally absent: exports are snapshots.
func Render(s *schedule.Schedule, opts Options) ([]byte, error) {
	opts.setDefaults()
	days := exportDays(s, opts)
	if len(days) == 0 {
		return nil, fmt.Errorf("export: no days to render")
	}

	cfg := timegrid.WebConfig()
	visible := visibleFn(opts)

	data := pageData{
		Title:      s.Name,
		Background: opts.Background,
		Width:      opts.Width,
		AxisHeight: int(cfg.Height()),
		HourRow:    int(cfg.UnitsPerHour),
	}
	if opts.Day != "" {
		data.Subtitle = days[0].Title()
	}
	if opts.Filtered {
		label := opts.Category.Label()
		if data.Subtitle != "" {
			data.Subtitle += " · " + label
		} else {
			data.Subtitle = label
		}
	}

	for hour := cfg.StartHour; hour <= 23; hour++ {
		data.HourMarks = append(data.HourMarks, hourMark{
			Top:   int(float64(hour-cfg.StartHour) * cfg.UnitsPerHour),
			Label: fmt.Sprintf("%02d:00", hour),
		})
	}
	for _, day := range days {
		data.Days = append(data.Days, buildColumn(cfg, day, visible))
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("export: render template: %w", err)
	}
	return buf.Bytes(), nil
}

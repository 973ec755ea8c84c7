// Package timegrid converts schedule events into positions on a shared
// time axis and arranges overlapping events so both stay legible. It is
// unit-agnostic: the TUI drives it in terminal rows, the PNG export in
// pixels.
package timegrid

import (
	"strings"
	"time"

	"tableflip.dev/crono/pkg/schedule"
	"tableflip.dev/crono/pkg/timeutil"
)

// Config fixes the time window and the vertical scale.
type Config struct {
	// StartHour is the first visible hour of the axis. Times before it
	// map to negative offsets; callers own any clamping.
	StartHour int

	// UnitsPerHour is the vertical size of one hour.
	UnitsPerHour float64

	// MinHeight is the floor applied to event spans so very short
	// events stay legible.
	MinHeight float64
}

// WebConfig reproduces the pixel scale of the exported HTML view.
func WebConfig() Config {
	return Config{StartHour: 7, UnitsPerHour: 90, MinHeight: 40}
}

// TermConfig maps the axis onto terminal rows, one row per half hour.
func TermConfig() Config {
	return Config{StartHour: 7, UnitsPerHour: 2, MinHeight: 1}
}

// Hours returns the number of visible hours on the axis.
func (c Config) Hours() int { return 24 - c.StartHour }

// Height returns the total axis height in config units.
func (c Config) Height() float64 { return float64(c.Hours()) * c.UnitsPerHour }

// Position maps a clock onto the axis. No clamping is performed:
// results may be negative or beyond Height for out-of-window times.
func (c Config) Position(clock timeutil.Clock) float64 {
	return (float64(clock)/60 - float64(c.StartHour)) * c.UnitsPerHour
}

// NowOffset returns the live indicator offset for the given wall-clock
// time, including fractional seconds for smooth movement, or false when
// the time falls outside the rendered window.
func (c Config) NowOffset(t time.Time) (float64, bool) {
	hour := t.Hour()
	if hour < c.StartHour || hour >= 24 {
		return 0, false
	}
	offset := float64(hour-c.StartHour)*c.UnitsPerHour +
		float64(t.Minute())/60*c.UnitsPerHour +
		float64(t.Second())/3600*c.UnitsPerHour
	return offset, true
}

// Rect is a laid-out event: vertical extent in config units, horizontal
// placement as fractions of the column width, and a stacking layer.
type Rect struct {
	Top    float64
	Height float64
	Left   float64 // fraction of column width
	Width  float64 // fraction of column width
	Layer  int
}

// Stacking layers observed in the source layout: colliding secondary
// events sit above primaries so both remain clickable.
const (
	LayerDefault   = 10
	LayerPrimary   = 25
	LayerSecondary = 30
)

// Horizontal placements as column-width fractions.
const (
	fullLeft       = 0.0
	fullWidth      = 1.0
	primaryLeft    = 0.02
	primaryWidth   = 0.85
	secondaryLeft  = 0.30
	secondaryWidth = 0.65
)

// Secondary classifies an event as the narrower, right-offset side of a
// two-way collision. The title keyword fallback is a legacy rule kept
// for data where transport rides were typed under another category.
func Secondary(e schedule.Event) bool {
	if e.Category == schedule.Transport {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), "ônibus")
}

// Layout computes the rectangle for event within its day. The collision
// set considers only events accepted by visible (nil means all), so the
// geometry follows the active filter. Every event gets a non-zero-size
// rectangle; nothing is ever dropped.
//
// The tie-break handles two simultaneous events of different priority.
// With three or more colliders the primaries share one slot and the
// secondaries another; the layout stays renderable but makes no further
// packing effort.
func (c Config) Layout(event schedule.Event, dayEvents []schedule.Event, visible func(schedule.Event) bool) Rect {
	top := c.Position(event.Start)
	bottom := c.Position(event.End)
	span := bottom - top
	if span < 0 {
		// Inverted spans are rejected at load; collapse defensively
		// rather than rendering a negative height.
		span = 0
	}
	height := span
	if height < c.MinHeight {
		height = c.MinHeight
	}

	collides := false
	for _, other := range dayEvents {
		if other.ID == event.ID {
			continue
		}
		if visible != nil && !visible(other) {
			continue
		}
		otherTop := c.Position(other.Start)
		otherBottom := c.Position(other.End)
		if top < otherBottom && bottom > otherTop {
			collides = true
			break
		}
	}

	if !collides {
		return Rect{Top: top, Height: height, Left: fullLeft, Width: fullWidth, Layer: LayerDefault}
	}
	if Secondary(event) {
		return Rect{Top: top, Height: height, Left: secondaryLeft, Width: secondaryWidth, Layer: LayerSecondary}
	}
	return Rect{Top: top, Height: height, Left: primaryLeft, Width: primaryWidth, Layer: LayerPrimary}
}

// HalfHourLabels returns the gutter labels for the axis, one per half
// hour from StartHour to 23:30.
func (c Config) HalfHourLabels() []string {
	labels := make([]string, 0, c.Hours()*2)
	for hour := c.StartHour; hour <= 23; hour++ {
		labels = append(labels, timeutil.Clock(hour*60).String())
		labels = append(labels, timeutil.Clock(hour*60+30).String())
	}
	return labels
}

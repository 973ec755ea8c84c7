// Package nowline anchors the live "now" indicator inside a stacked
// card list. Card heights are unknown until the presentation layer has
// laid them out, so the tracker consumes measurement tuples reported
// back after each render instead of reaching into any rendering tree.
package nowline

import (
	"tableflip.dev/crono/pkg/schedule"
	"tableflip.dev/crono/pkg/timeutil"
)

// Measurement reports where one event card ended up after layout, in
// whatever vertical unit the presentation uses (terminal rows here).
type Measurement struct {
	EventID string
	Top     int
	Height  int
}

// State describes what the indicator should do.
type State int

const (
	// Hidden: now is past the last event, before the window, or the
	// matching card was never measured.
	Hidden State = iota
	// BeforeFirst: now falls in a gap; the anchor sits just above the
	// next upcoming event.
	BeforeFirst
	// DuringEvent: now is inside an event; the anchor is interpolated
	// through the card's measured height.
	DuringEvent
)

// Anchor is the computed indicator placement.
type Anchor struct {
	State State
	Top   int
}

// Locate scans the day's events in chronological order and anchors the
// indicator against the measured layout. It never fails: any situation
// it cannot resolve degrades to a hidden indicator.
func Locate(now timeutil.Clock, events []schedule.Event, measured []Measurement) Anchor {
	byID := make(map[string]Measurement, len(measured))
	for _, m := range measured {
		byID[m.EventID] = m
	}

	for _, e := range events {
		if e.Contains(now) {
			m, ok := byID[e.ID]
			if !ok {
				return Anchor{State: Hidden}
			}
			span := int(e.End - e.Start)
			if span <= 0 {
				return Anchor{State: DuringEvent, Top: m.Top}
			}
			progress := float64(now-e.Start) / float64(span)
			return Anchor{
				State: DuringEvent,
				Top:   m.Top + int(float64(m.Height)*progress),
			}
		}
		if now < e.Start {
			m, ok := byID[e.ID]
			if !ok {
				return Anchor{State: Hidden}
			}
			top := m.Top - 1
			if top < 0 {
				top = 0
			}
			return Anchor{State: BeforeFirst, Top: top}
		}
	}
	return Anchor{State: Hidden}
}

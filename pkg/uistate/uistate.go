// Package uistate holds the ephemeral view state: active day, active
// category filter, and the selected event. Transitions are pure value
// methods; the state itself never touches schedule data or rendering.
package uistate

import "tableflip.dev/crono/pkg/schedule"

// AllDays is the ActiveDay sentinel meaning "render every day on the
// shared grid".
const AllDays = ""

// State is the whole of the user's view state. The zero value is the
// startup default: grid view of all days, no filter, no selection.
type State struct {
	ActiveDay     string
	Filter        schedule.Category
	Filtered      bool // false means the Every sentinel: no filter
	SelectedEvent string
}

// SelectDay replaces the active day. Category and selection are left
// alone.
func (s State) SelectDay(id string) State {
	s.ActiveDay = id
	return s
}

// ToggleCategory sets the single-select filter, or resets it when the
// category is already active.
func (s State) ToggleCategory(c schedule.Category) State {
	if s.Filtered && s.Filter == c {
		s.Filtered = false
		return s
	}
	s.Filter = c
	s.Filtered = true
	return s
}

// ClearCategory resets the filter to the Every sentinel.
func (s State) ClearCategory() State {
	s.Filtered = false
	return s
}

// SelectEvent sets the detail selection.
func (s State) SelectEvent(id string) State {
	s.SelectedEvent = id
	return s
}

// ClearSelection drops the detail selection; clearing an empty
// selection is a no-op.
func (s State) ClearSelection() State {
	s.SelectedEvent = ""
	return s
}

// Visible reports whether an event passes the active filter. This is
// the single filtering rule layout and rendering consume; the
// underlying data is never mutated.
func (s State) Visible(e schedule.Event) bool {
	return !s.Filtered || e.Category == s.Filter
}

// VisibleEvents filters a day's events without copying when no filter
// is active.
func (s State) VisibleEvents(events []schedule.Event) []schedule.Event {
	if !s.Filtered {
		return events
	}
	out := make([]schedule.Event, 0, len(events))
	for _, e := range events {
		if s.Visible(e) {
			out = append(out, e)
		}
	}
	return out
}

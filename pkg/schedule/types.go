// Package schedule defines the conference schedule data model and its
// YAML loader. The schedule is a static, read-only input: it is
// validated once at load time and never mutated afterwards.
package schedule

import (
	"fmt"
	"strings"

	"tableflip.dev/crono/pkg/timeutil"
)

// Category classifies an event for filtering and styling.
type Category int

const (
	Routine Category = iota
	Meals
	Activities
	Messages
	Transport
)

var categoryLabels = map[Category]string{
	Routine:    "Rotina",
	Meals:      "Refeições",
	Activities: "Atividades",
	Messages:   "Mensagens",
	Transport:  "Transporte",
}

// Categories lists every category in legend order.
func Categories() []Category {
	return []Category{Routine, Meals, Activities, Messages, Transport}
}

// Label returns the display label used by the schedule data.
func (c Category) Label() string { return categoryLabels[c] }

func (c Category) String() string { return c.Label() }

// ParseCategory resolves a display label back to its Category,
// case-insensitively.
func ParseCategory(label string) (Category, error) {
	for c, l := range categoryLabels {
		if strings.EqualFold(label, l) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", label)
}

// Audience identifies which group a parallel session is for.
type Audience int

const (
	Everyone Audience = iota
	Youth
	Teens
)

var audienceLabels = map[Audience]string{
	Everyone: "Todos",
	Youth:    "Jovens",
	Teens:    "Adolescentes",
}

// Label returns the display label used by the schedule data.
func (a Audience) Label() string { return audienceLabels[a] }

func (a Audience) String() string { return a.Label() }

// ParseAudience resolves a display label back to its Audience.
func ParseAudience(label string) (Audience, error) {
	for a, l := range audienceLabels {
		if strings.EqualFold(label, l) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown audience %q", label)
}

// Session is an audience-specific sub-item of an event, e.g. separate
// talks for youth and teens in the same time slot. Sessions belong to
// exactly one event.
type Session struct {
	Audience Audience
	Title    string
	Speaker  string
}

// Event is a titled, time-boxed schedule item.
type Event struct {
	// ID is unique across the whole schedule; selection and layout
	// measurements correlate through it.
	ID       string
	Start    timeutil.Clock
	End      timeutil.Clock
	Title    string
	Category Category
	Sessions []Session
	Location string
}

// Duration returns the event length in minutes.
func (e Event) Duration() int { return int(e.End - e.Start) }

// Contains reports whether the clock falls within [Start, End].
func (e Event) Contains(c timeutil.Clock) bool {
	return c >= e.Start && c <= e.End
}

// Day is one calendar day's ordered events.
type Day struct {
	ID      string
	Date    string
	Weekday string
	Events  []Event
}

// EventByID finds an event in this day, or nil.
func (d Day) EventByID(id string) *Event {
	for i := range d.Events {
		if d.Events[i].ID == id {
			return &d.Events[i]
		}
	}
	return nil
}

var fullWeekdays = map[string]string{
	"qui": "Quinta-feira",
	"sex": "Sexta-feira",
	"sáb": "Sábado",
	"dom": "Domingo",
	"seg": "Segunda-feira",
	"ter": "Terça-feira",
	"qua": "Quarta-feira",
}

// FullWeekday expands the abbreviated weekday label, falling back to
// the abbreviation itself when unknown.
func (d Day) FullWeekday() string {
	if full, ok := fullWeekdays[strings.ToLower(d.Weekday)]; ok {
		return full
	}
	return d.Weekday
}

// Title renders the heading used for a single-day view.
func (d Day) Title() string {
	return strings.ToUpper(fmt.Sprintf("%s %s", d.FullWeekday(), d.Date))
}

// Schedule is the fixed, ordered set of conference days.
type Schedule struct {
	Name string
	Days []Day
}

// DayByID finds a day, or nil.
func (s *Schedule) DayByID(id string) *Day {
	for i := range s.Days {
		if s.Days[i].ID == id {
			return &s.Days[i]
		}
	}
	return nil
}

// EventByID searches all days for an event.
func (s *Schedule) EventByID(id string) *Event {
	for i := range s.Days {
		if e := s.Days[i].EventByID(id); e != nil {
			return e
		}
	}
	return nil
}

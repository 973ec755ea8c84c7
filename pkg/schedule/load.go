package schedule

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tableflip.dev/crono/pkg/timeutil"
)

// Raw YAML shapes. Times and labels stay strings here; Parse converts
// and validates them into the model types so nothing downstream has to
// re-check the data.

type sessionYAML struct {
	Audience string `yaml:"audience"`
	Title    string `yaml:"title"`
	Speaker  string `yaml:"speaker,omitempty"`
}

type eventYAML struct {
	ID       string        `yaml:"id"`
	Start    string        `yaml:"start"`
	End      string        `yaml:"end"`
	Title    string        `yaml:"title"`
	Category string        `yaml:"category"`
	Sessions []sessionYAML `yaml:"sessions,omitempty"`
	Location string        `yaml:"location,omitempty"`
}

type dayYAML struct {
	ID      string      `yaml:"id"`
	Date    string      `yaml:"date"`
	Weekday string      `yaml:"weekday"`
	Events  []eventYAML `yaml:"events"`
}

type scheduleYAML struct {
	Name string    `yaml:"name"`
	Days []dayYAML `yaml:"days"`
}

//go:embed schedule.yaml
var defaultSchedule []byte

// Default returns the built-in conference schedule.
func Default() (*Schedule, error) {
	return Parse(defaultSchedule)
}

// Load reads and validates a schedule YAML file.
func Load(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates schedule YAML. Malformed clocks,
// inverted spans, duplicate IDs, and out-of-order events are rejected
// here; layout code assumes the data that reaches it is well formed.
func Parse(data []byte) (*Schedule, error) {
	var raw scheduleYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	if len(raw.Days) == 0 {
		return nil, fmt.Errorf("schedule has no days")
	}

	s := &Schedule{Name: raw.Name}
	seen := make(map[string]string) // event id -> day id
	for _, rd := range raw.Days {
		if rd.ID == "" {
			return nil, fmt.Errorf("day without id")
		}
		day := Day{ID: rd.ID, Date: rd.Date, Weekday: rd.Weekday}
		var prevStart timeutil.Clock = -1
		for _, re := range rd.Events {
			ev, err := parseEvent(re)
			if err != nil {
				return nil, fmt.Errorf("day %s: %w", rd.ID, err)
			}
			if owner, dup := seen[ev.ID]; dup {
				return nil, fmt.Errorf("day %s: event id %q already used in day %s", rd.ID, ev.ID, owner)
			}
			seen[ev.ID] = rd.ID
			if ev.Start < prevStart {
				return nil, fmt.Errorf("day %s: event %q out of chronological order", rd.ID, ev.ID)
			}
			prevStart = ev.Start
			day.Events = append(day.Events, ev)
		}
		s.Days = append(s.Days, day)
	}
	return s, nil
}

func parseEvent(re eventYAML) (Event, error) {
	if re.ID == "" {
		return Event{}, fmt.Errorf("event %q has no id", re.Title)
	}
	start, err := timeutil.ParseClock(re.Start)
	if err != nil {
		return Event{}, fmt.Errorf("event %s start: %w", re.ID, err)
	}
	end, err := timeutil.ParseEnd(re.End)
	if err != nil {
		return Event{}, fmt.Errorf("event %s end: %w", re.ID, err)
	}
	if end <= start {
		return Event{}, fmt.Errorf("event %s: end %s not after start %s", re.ID, re.End, re.Start)
	}
	cat, err := ParseCategory(re.Category)
	if err != nil {
		return Event{}, fmt.Errorf("event %s: %w", re.ID, err)
	}

	ev := Event{
		ID:       re.ID,
		Start:    start,
		End:      end,
		Title:    re.Title,
		Category: cat,
		Location: re.Location,
	}
	for _, rs := range re.Sessions {
		aud, err := ParseAudience(rs.Audience)
		if err != nil {
			return Event{}, fmt.Errorf("event %s session %q: %w", re.ID, rs.Title, err)
		}
		ev.Sessions = append(ev.Sessions, Session{
			Audience: aud,
			Title:    rs.Title,
			Speaker:  rs.Speaker,
		})
	}
	return ev, nil
}

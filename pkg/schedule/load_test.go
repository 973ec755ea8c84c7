package schedule

import (
	"strings"
	"testing"

	"tableflip.dev/crono/pkg/timeutil"
)

func TestDefaultScheduleLoads(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(s.Days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(s.Days))
	}

	day := s.DayByID("day1")
	if day == nil {
		t.Fatalf("day1 missing")
	}
	if day.Weekday != "Qui" {
		t.Fatalf("day1 weekday = %q", day.Weekday)
	}

	// The final event of each full day crosses midnight and must be
	// normalized to end-of-day.
	last := day.Events[len(day.Events)-1]
	if last.Start != 23*60+30 || last.End != timeutil.EndOfDay {
		t.Fatalf("midnight-crossing event: start=%d end=%d", last.Start, last.End)
	}
	if last.Duration() != 30 {
		t.Fatalf("midnight-crossing duration = %d, want 30", last.Duration())
	}

	msg := s.EventByID("1-7")
	if msg == nil {
		t.Fatalf("event 1-7 missing")
	}
	if msg.Category != Messages {
		t.Fatalf("event 1-7 category = %v", msg.Category)
	}
	if len(msg.Sessions) != 2 {
		t.Fatalf("event 1-7 sessions = %d", len(msg.Sessions))
	}
	if msg.Sessions[0].Audience != Youth || msg.Sessions[1].Audience != Teens {
		t.Fatalf("event 1-7 audiences = %v, %v", msg.Sessions[0].Audience, msg.Sessions[1].Audience)
	}
	if msg.Sessions[0].Speaker == "" {
		t.Fatalf("event 1-7 session missing speaker")
	}
}

func TestEventIDsUniqueAcrossSchedule(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	seen := map[string]bool{}
	for _, d := range s.Days {
		for _, e := range d.Events {
			if seen[e.ID] {
				t.Fatalf("duplicate event id %q", e.ID)
			}
			seen[e.ID] = true
		}
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	doc := `
days:
  - id: d1
    events:
      - {id: "x", start: "08:00", end: "09:00", title: A, category: Rotina}
  - id: d2
    events:
      - {id: "x", start: "08:00", end: "09:00", title: B, category: Rotina}
`
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "already used") {
		t.Fatalf("expected duplicate-id error, got %v", err)
	}
}

func TestParseRejectsInvertedSpan(t *testing.T) {
	doc := `
days:
  - id: d1
    events:
      - {id: "x", start: "10:00", end: "09:00", title: A, category: Rotina}
`
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "not after start") {
		t.Fatalf("expected inverted-span error, got %v", err)
	}
}

func TestParseRejectsOutOfOrderEvents(t *testing.T) {
	doc := `
days:
  - id: d1
    events:
      - {id: "a", start: "10:00", end: "11:00", title: A, category: Rotina}
      - {id: "b", start: "08:00", end: "09:00", title: B, category: Rotina}
`
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "chronological") {
		t.Fatalf("expected ordering error, got %v", err)
	}
}

func TestParseRejectsMalformedClock(t *testing.T) {
	doc := `
days:
  - id: d1
    events:
      - {id: "a", start: "25:00", end: "11:00", title: A, category: Rotina}
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatalf("expected clock error")
	}
}

func TestParseCategoryAndAudienceLabels(t *testing.T) {
	c, err := ParseCategory("refeições")
	if err != nil || c != Meals {
		t.Fatalf("ParseCategory = %v, %v", c, err)
	}
	if _, err := ParseCategory("Esportes"); err == nil {
		t.Fatalf("expected unknown category error")
	}
	a, err := ParseAudience("JOVENS")
	if err != nil || a != Youth {
		t.Fatalf("ParseAudience = %v, %v", a, err)
	}
}

func TestDayTitleAndFullWeekday(t *testing.T) {
	d := Day{Date: "17/01", Weekday: "Sáb"}
	if got := d.FullWeekday(); got != "Sábado" {
		t.Fatalf("FullWeekday = %q", got)
	}
	if got := d.Title(); got != "SÁBADO 17/01" {
		t.Fatalf("Title = %q", got)
	}
	unknown := Day{Date: "01/01", Weekday: "Xyz"}
	if got := unknown.FullWeekday(); got != "Xyz" {
		t.Fatalf("unknown weekday passthrough = %q", got)
	}
}

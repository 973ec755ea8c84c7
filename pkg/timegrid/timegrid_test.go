package timegrid

import (
	"math"
	"testing"
	"time"

	"tableflip.dev/crono/pkg/schedule"
	"tableflip.dev/crono/pkg/timeutil"
)

func clock(t *testing.T, s string) timeutil.Clock {
	t.Helper()
	c, err := timeutil.ParseClock(s)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", s, err)
	}
	return c
}

func event(t *testing.T, id, start, end string, cat schedule.Category, title string) schedule.Event {
	t.Helper()
	e := schedule.Event{ID: id, Title: title, Category: cat, Start: clock(t, start)}
	endClock, err := timeutil.ParseEnd(end)
	if err != nil {
		t.Fatalf("ParseEnd(%q): %v", end, err)
	}
	e.End = endClock
	return e
}

func TestPositionScale(t *testing.T) {
	cfg := WebConfig()
	if got := cfg.Position(clock(t, "07:00")); got != 0 {
		t.Fatalf("Position(07:00) = %v, want 0", got)
	}
	if got := cfg.Position(clock(t, "08:30")); got != 135 {
		t.Fatalf("Position(08:30) = %v, want 135", got)
	}
	// Out-of-window times are not clamped.
	if got := cfg.Position(clock(t, "06:00")); got != -90 {
		t.Fatalf("Position(06:00) = %v, want -90", got)
	}
}

func TestSpanNeverNegativeAfterNormalization(t *testing.T) {
	cfg := WebConfig()
	e := event(t, "late", "23:30", "00:00", schedule.Routine, "Oração e apagar as luzes")
	r := cfg.Layout(e, nil, nil)
	if r.Height <= 0 {
		t.Fatalf("height = %v, want > 0", r.Height)
	}
	if got := cfg.Position(e.End) - cfg.Position(e.Start); got != 45 {
		t.Fatalf("normalized span = %v, want 45", got)
	}
}

func TestMinHeightFloor(t *testing.T) {
	cfg := WebConfig()
	short := event(t, "s", "09:00", "09:10", schedule.Routine, "Aviso")
	r := cfg.Layout(short, nil, nil)
	if r.Height != cfg.MinHeight {
		t.Fatalf("height = %v, want MinHeight %v", r.Height, cfg.MinHeight)
	}
}

func TestNonOverlappingKeepFullWidth(t *testing.T) {
	cfg := WebConfig()
	a := event(t, "a", "08:00", "09:00", schedule.Meals, "Café da manhã")
	b := event(t, "b", "09:00", "10:00", schedule.Messages, "Leitura")
	day := []schedule.Event{a, b}

	for _, e := range day {
		r := cfg.Layout(e, day, nil)
		if r.Width != 1.0 || r.Left != 0.0 {
			t.Fatalf("event %s narrowed without a collision: %+v", e.ID, r)
		}
		if r.Layer != LayerDefault {
			t.Fatalf("event %s layer = %d, want default", e.ID, r.Layer)
		}
	}
}

func TestTransportTieBreak(t *testing.T) {
	cfg := WebConfig()
	routine := event(t, "r", "22:00", "22:45", schedule.Routine, "Livre / Convivência")
	bus := event(t, "b", "22:30", "23:00", schedule.Transport, "Ônibus — Chácara → Hospedagens")
	day := []schedule.Event{routine, bus}

	rr := cfg.Layout(routine, day, nil)
	rb := cfg.Layout(bus, day, nil)

	if rb.Width != 0.65 || rb.Left != 0.30 || rb.Layer != LayerSecondary {
		t.Fatalf("secondary placement wrong: %+v", rb)
	}
	if rr.Width != 0.85 || rr.Left != 0.02 || rr.Layer != LayerPrimary {
		t.Fatalf("primary placement wrong: %+v", rr)
	}
	if rb.Layer <= rr.Layer {
		t.Fatalf("secondary must stack above primary: %d <= %d", rb.Layer, rr.Layer)
	}
}

func TestTitleKeywordFallbackClassifier(t *testing.T) {
	bus := event(t, "b", "07:30", "08:00", schedule.Routine, "Ônibus — Hospedagens → Chácara")
	if !Secondary(bus) {
		t.Fatalf("title keyword should classify as secondary")
	}
	walk := event(t, "w", "07:30", "08:00", schedule.Routine, "Caminhada")
	if Secondary(walk) {
		t.Fatalf("plain routine misclassified as secondary")
	}
}

func TestNeitherTransportBothDefaultCollisionWidth(t *testing.T) {
	cfg := WebConfig()
	a := event(t, "a", "10:00", "11:00", schedule.Meals, "Almoço cedo")
	b := event(t, "b", "10:30", "11:30", schedule.Activities, "Gincana")
	day := []schedule.Event{a, b}

	ra := cfg.Layout(a, day, nil)
	rb := cfg.Layout(b, day, nil)
	if ra.Width != 0.85 || rb.Width != 0.85 {
		t.Fatalf("both non-transport colliders should take the primary width: %v / %v", ra.Width, rb.Width)
	}
}

func TestCollisionSetRespectsFilter(t *testing.T) {
	cfg := WebConfig()
	routine := event(t, "r", "22:00", "22:45", schedule.Routine, "Livre")
	bus := event(t, "b", "22:30", "23:00", schedule.Transport, "Ônibus")
	day := []schedule.Event{routine, bus}

	onlyRoutine := func(e schedule.Event) bool { return e.Category == schedule.Routine }
	r := cfg.Layout(routine, day, onlyRoutine)
	if r.Width != 1.0 {
		t.Fatalf("filtered-out collider still narrowed the event: %+v", r)
	}

	// Round trip: removing the filter restores the collision geometry.
	unfiltered := cfg.Layout(routine, day, nil)
	if unfiltered.Width != 0.85 || unfiltered.Left != 0.02 {
		t.Fatalf("unfiltered layout lost collision placement: %+v", unfiltered)
	}
	again := cfg.Layout(routine, day, nil)
	if again != unfiltered {
		t.Fatalf("layout not deterministic: %+v vs %+v", again, unfiltered)
	}
}

func TestNowOffset(t *testing.T) {
	cfg := WebConfig()

	at := time.Date(2026, time.January, 15, 7, 0, 0, 0, time.Local)
	got, ok := cfg.NowOffset(at)
	if !ok || got != 0 {
		t.Fatalf("NowOffset(07:00:00) = %v, %v; want 0, true", got, ok)
	}

	if _, ok := cfg.NowOffset(time.Date(2026, time.January, 15, 6, 59, 0, 0, time.Local)); ok {
		t.Fatalf("NowOffset before window should be hidden")
	}

	late := time.Date(2026, time.January, 15, 23, 59, 0, 0, time.Local)
	got, ok = cfg.NowOffset(late)
	want := 16*cfg.UnitsPerHour + 59.0/60.0*cfg.UnitsPerHour
	if !ok || math.Abs(got-want) > 1e-9 {
		t.Fatalf("NowOffset(23:59) = %v, want %v", got, want)
	}

	// Seconds contribute fractionally for smooth motion.
	secs := time.Date(2026, time.January, 15, 7, 0, 30, 0, time.Local)
	got, ok = cfg.NowOffset(secs)
	if !ok || math.Abs(got-cfg.UnitsPerHour*30.0/3600.0) > 1e-9 {
		t.Fatalf("NowOffset(07:00:30) = %v", got)
	}
}

func TestHalfHourLabels(t *testing.T) {
	cfg := WebConfig()
	labels := cfg.HalfHourLabels()
	if len(labels) != 34 {
		t.Fatalf("expected 34 labels, got %d", len(labels))
	}
	if labels[0] != "07:00" || labels[1] != "07:30" || labels[len(labels)-1] != "23:30" {
		t.Fatalf("label bounds wrong: %q ... %q", labels[0], labels[len(labels)-1])
	}
}

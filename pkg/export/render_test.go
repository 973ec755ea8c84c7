package export

import (
	"strings"
	"testing"

	"tableflip.dev/crono/pkg/schedule"
	"tableflip.dev/crono/pkg/timeutil"
)

func mustClock(t *testing.T, s string) timeutil.Clock {
	t.Helper()
	c, err := timeutil.ParseClock(s)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", s, err)
	}
	return c
}

func testSchedule(t *testing.T) *schedule.Schedule {
	t.Helper()
	return &schedule.Schedule{
		Name: "Acampamento Teste",
		Days: []schedule.Day{
			{
				ID: "day1", Date: "19/02", Weekday: "qui",
				Events: []schedule.Event{
					{
						ID: "1-1", Start: mustClock(t, "08:00"), End: mustClock(t, "09:00"),
						Title: "Café da manhã", Category: schedule.Meals,
					},
					{
						ID: "1-2", Start: mustClock(t, "09:00"), End: mustClock(t, "10:00"),
						Title: "Mensagem", Category: schedule.Messages,
						Sessions: []schedule.Session{
							{Audience: schedule.Teens, Title: "Plenária", Speaker: "Pr. Souza"},
						},
					},
					{
						ID: "1-3", Start: mustClock(t, "09:15"), End: mustClock(t, "09:45"),
						Title: "Saída do ônibus", Category: schedule.Transport,
					},
				},
			},
			{
				ID: "day2", Date: "20/02", Weekday: "sex",
				Events: []schedule.Event{
					{
						ID: "2-1", Start: mustClock(t, "07:00"), End: mustClock(t, "07:10"),
						Title: "Despertar", Category: schedule.Routine,
					},
				},
			},
		},
	}
}

func TestRenderFullSchedule(t *testing.T) {
	html, err := Render(testSchedule(t), Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := string(html)

	if !strings.Contains(page, `data-ready="true"`) {
		t.Fatalf("expected readiness attribute for the capture wait")
	}
	if !strings.Contains(page, "Acampamento Teste") {
		t.Fatalf("expected schedule name in header")
	}
	if !strings.Contains(page, "QUINTA-FEIRA 19/02") || !strings.Contains(page, "SEXTA-FEIRA 20/02") {
		t.Fatalf("expected both day banners; page=%s", page)
	}
	// 08:00 sits one hour past the 07:00 window start.
	if !strings.Contains(page, "top: 90px; height: 90px") {
		t.Fatalf("expected pixel-scaled event box; page=%s", page)
	}
	if strings.Contains(page, "now") && strings.Contains(page, "indicator") {
		t.Fatalf("exports must not carry the live indicator")
	}
}

func TestRenderAppliesMinimumHeight(t *testing.T) {
	html, err := Render(testSchedule(t), Options{Day: "day2"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// A 10 minute event would be 15px; the floor keeps it legible.
	if !strings.Contains(string(html), "height: 40px") {
		t.Fatalf("expected minimum card height; page=%s", html)
	}
}

func TestRenderCollisionPlacement(t *testing.T) {
	html, err := Render(testSchedule(t), Options{Day: "day1"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := string(html)

	if !strings.Contains(page, "left: 2%; width: 85%; z-index: 25") {
		t.Fatalf("expected primary collision placement; page=%s", page)
	}
	if !strings.Contains(page, "left: 30%; width: 65%; z-index: 30") {
		t.Fatalf("expected secondary collision placement; page=%s", page)
	}
}

func TestRenderSingleDaySubtitleAndFilter(t *testing.T) {
	html, err := Render(testSchedule(t), Options{
		Day:      "day1",
		Category: schedule.Meals,
		Filtered: true,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := string(html)

	if !strings.Contains(page, "Refeições") {
		t.Fatalf("expected filter label in subtitle; page=%s", page)
	}
	if strings.Contains(page, "Saída do ônibus") {
		t.Fatalf("expected filtered event omitted; page=%s", page)
	}
	// With the transport ride filtered out, the meal no longer collides.
	if !strings.Contains(page, "left: 0%; width: 100%") {
		t.Fatalf("expected full-width card after filtering; page=%s", page)
	}
}

func TestRenderSessionRows(t *testing.T) {
	html, err := Render(testSchedule(t), Options{Day: "day1"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := string(html)
	if !strings.Contains(page, "Adolescentes") || !strings.Contains(page, "Pr. Souza") {
		t.Fatalf("expected session audience and speaker; page=%s", page)
	}
}

func TestRenderUnknownDayFails(t *testing.T) {
	if _, err := Render(testSchedule(t), Options{Day: "day9"}); err == nil {
		t.Fatalf("expected error for unknown day")
	}
}

func TestOptionDefaults(t *testing.T) {
	var all Options
	all.setDefaults()
	if all.Width != DefaultWidthAll || all.Scale != DefaultScale {
		t.Fatalf("unexpected defaults: %+v", all)
	}
	if all.OutputPath != "programacao.png" {
		t.Fatalf("unexpected output path: %q", all.OutputPath)
	}

	daily := Options{Day: "day2"}
	daily.setDefaults()
	if daily.Width != DefaultWidthDaily {
		t.Fatalf("expected daily width, got %d", daily.Width)
	}
	if daily.OutputPath != "programacao-day2.png" {
		t.Fatalf("unexpected daily output path: %q", daily.OutputPath)
	}
}

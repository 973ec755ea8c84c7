package tui

import (
	"fmt"
	"strings"

	"tableflip.dev/crono/pkg/glyph"
	"tableflip.dev/crono/pkg/schedule"
	"tableflip.dev/crono/pkg/timeutil"
)

// detailView renders the inspection panel for the selected event.
func (m Model) detailView() string {
	ev := m.sched.EventByID(m.st.SelectedEvent)
	if ev == nil {
		return m.th.Status.Render("evento não encontrado")
	}

	g := glyph.ForEvent(ev.Category, ev.Title)
	lines := []string{
		m.th.Detail.Title.Render(g.Symbol + " " + ev.Title),
		m.th.Detail.Times.Render(fmt.Sprintf("%s — %s (%s)", ev.Start, ev.End, timeutil.FormatMinutes(ev.Duration()))),
		m.th.Category(ev.Category).Render(ev.Category.Label()),
	}
	if ev.Location != "" {
		lines = append(lines, m.th.Detail.Times.Render("@ "+ev.Location))
	}

	if len(ev.Sessions) > 0 {
		lines = append(lines, "")
		for _, s := range ev.Sessions {
			row := m.th.Card.Audience.Render(s.Audience.Label()) + "  " + m.th.Detail.Session.Render(s.Title)
			if s.Speaker != "" {
				row += "  " + m.th.Card.Speaker.Render(s.Speaker)
			}
			lines = append(lines, row)
		}
	}
	if ev.Category == schedule.Messages {
		lines = append(lines, "", m.th.Detail.Times.Render("assista ao vivo:"))
		seen := map[string]bool{}
		audiences := ev.Sessions
		if len(audiences) == 0 {
			lines = append(lines, "  "+m.th.Detail.Link.Render(m.links.URLFor(schedule.Everyone)))
		}
		for _, s := range audiences {
			url := m.links.URLFor(s.Audience)
			if seen[url] {
				continue
			}
			seen[url] = true
			lines = append(lines, "  "+m.th.Detail.Link.Render(url))
		}
	}

	lines = append(lines, "", m.th.Help.Render("esc to close"))
	return m.th.Detail.Frame.Render(strings.Join(lines, "\n"))
}

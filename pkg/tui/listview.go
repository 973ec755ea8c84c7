package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/crono/pkg/glyph"
	"tableflip.dev/crono/pkg/nowline"
	"tableflip.dev/crono/pkg/schedule"
	"tableflip.dev/crono/pkg/timeutil"
)

// cardSpan records where a card landed in the assembled list so cursor
// movement can keep it on screen.
type cardSpan struct {
	top    int
	height int
}

// cardWidth bounds the card column so very wide terminals stay readable.
func (m Model) cardWidth() int {
	w := m.termWidth - 2
	if w > 80 {
		w = 80
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (m Model) cardView(ev schedule.Event, selected bool) string {
	inner := m.cardWidth() - 4

	g := glyph.ForEvent(ev.Category, ev.Title)
	head := m.th.Card.Times.Render(ev.Start.String()+" — "+ev.End.String()) +
		"  " + m.th.Category(ev.Category).Render(g.Symbol)

	lines := []string{head}
	for _, l := range strings.Split(wordwrap.String(ev.Title, inner), "\n") {
		lines = append(lines, m.th.Card.Title.Render(l))
	}
	for _, s := range ev.Sessions {
		line := m.th.Card.Audience.Render(s.Audience.Label()) + " " + s.Title
		if s.Speaker != "" {
			line += " " + m.th.Card.Speaker.Render(s.Speaker)
		}
		lines = append(lines, line)
	}
	if ev.Location != "" {
		lines = append(lines, m.th.Card.Times.Render("@ "+ev.Location))
	}

	frame := m.th.Card.Frame.BorderForeground(lipgloss.Color(m.th.Accent(ev.Category)))
	if selected {
		frame = m.th.Card.Selected.BorderForeground(lipgloss.Color(m.th.SelectedAccent(ev.Category)))
	}
	return frame.Width(inner).Render(strings.Join(lines, "\n"))
}

// listLines assembles the active day's body: the day banner followed by
// one card per visible event. Measurements are captured against the
// returned slice so the indicator can be spliced at a line index.
func (m Model) listLines() ([]string, []nowline.Measurement, []cardSpan) {
	day := m.activeDay()
	if day == nil {
		return nil, nil, nil
	}
	vis := m.visibleEvents()

	lines := []string{m.th.Header.Title.Render(day.Title()), ""}
	measured := make([]nowline.Measurement, 0, len(vis))
	spans := make([]cardSpan, 0, len(vis))

	if len(vis) == 0 {
		lines = append(lines, m.th.Status.Render("nenhum evento nesta categoria"))
		return lines, measured, spans
	}

	for i, ev := range vis {
		card := m.cardView(ev, i == m.cursor && m.st.SelectedEvent == "")
		top := len(lines)
		height := lipgloss.Height(card)
		measured = append(measured, nowline.Measurement{EventID: ev.ID, Top: top, Height: height})
		spans = append(spans, cardSpan{top: top, height: height})
		lines = append(lines, strings.Split(card, "\n")...)
	}
	return lines, measured, spans
}

// nowlineAnchor resolves the indicator to a line index, or -1 when it
// should not be drawn.
func nowlineAnchor(now timeutil.Clock, events []schedule.Event, measured []nowline.Measurement) int {
	a := nowline.Locate(now, events, measured)
	if a.State == nowline.Hidden {
		return -1
	}
	return a.Top
}

func (m Model) indicatorLine() string {
	now := timeutil.FromTime(m.now)
	rule := strings.Repeat("─", max(1, m.cardWidth()-8))
	return m.th.Indicator.Render("▶ " + now.String() + " " + rule)
}

func (m Model) listView() string {
	lines, measured, _ := m.listLines()

	if m.st.ActiveDay == m.todayID() && m.todayID() != "" {
		if at := nowlineAnchor(timeutil.FromTime(m.now), m.visibleEvents(), measured); at >= 0 {
			if at > len(lines) {
				at = len(lines)
			}
			lines = append(lines[:at], append([]string{m.indicatorLine()}, lines[at:]...)...)
		}
	}

	h := m.listHeight()
	lo := m.scroll
	if lo > len(lines) {
		lo = len(lines)
	}
	hi := lo + h
	if hi > len(lines) {
		hi = len(lines)
	}
	window := lines[lo:hi]
	for len(window) < h {
		window = append(window, "")
	}
	return strings.Join(window, "\n")
}

func (m *Model) ensureCursorVisible() {
	_, _, spans := m.listLines()
	if m.cursor >= len(spans) {
		return
	}
	s := spans[m.cursor]
	h := m.listHeight()
	if s.top < m.scroll {
		m.scroll = s.top
	}
	if s.top+s.height > m.scroll+h {
		m.scroll = s.top + s.height - h
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/crono/pkg/links"
	"tableflip.dev/crono/pkg/schedule"
	"tableflip.dev/crono/pkg/timeutil"
	"tableflip.dev/crono/pkg/tui/theme"
	"tableflip.dev/crono/pkg/uistate"
)

// refreshInterval is how often the clock sample is refreshed while idle.
const refreshInterval = 30 * time.Second

// settleDelay gives the first full render a beat to land before the view
// auto-scrolls to the current time.
const settleDelay = 100 * time.Millisecond

// Exporter produces a PNG snapshot of the current view state.
type Exporter interface {
	Export(ctx context.Context, st uistate.State) (string, error)
}

// Model contains UI state.
type Model struct {
	sched *schedule.Schedule
	st    uistate.State
	th    theme.Theme
	links *links.Resolver

	nowFn func() time.Time
	now   time.Time

	termWidth  int
	termHeight int

	cursor int // index into the active day's visible events
	scroll int // top line of the list window
	grid   viewport.Model

	showHelp  bool
	exporting bool
	status    string

	exporter Exporter
}

// New creates a UI model for the given schedule. The exporter may be nil,
// in which case the export key is disabled.
func New(sched *schedule.Schedule, linkResolver *links.Resolver, exporter Exporter) Model {
	if linkResolver == nil {
		linkResolver = links.New(nil)
	}
	m := Model{
		sched:    sched,
		st:       uistate.State{ActiveDay: uistate.AllDays},
		th:       theme.Default(),
		links:    linkResolver,
		nowFn:    time.Now,
		exporter: exporter,
		grid:     viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		status:   "h/l day, j/k move, enter inspect, 1-5 filter, e export, ? help",
	}
	m.now = m.nowFn()
	if id := m.todayID(); id != "" {
		m.st = m.st.SelectDay(id)
	}
	return m
}

// todayID returns the id of the day whose date matches the wall clock,
// or "" when the event is not running today.
func (m Model) todayID() string {
	today := m.now.Format("02/01")
	for _, d := range m.sched.Days {
		if d.Date == today {
			return d.ID
		}
	}
	return ""
}

// dayOrder is the cycle walked by h/l: the all-days grid first, then
// each day in schedule order.
func (m Model) dayOrder() []string {
	order := make([]string, 0, len(m.sched.Days)+1)
	order = append(order, uistate.AllDays)
	for _, d := range m.sched.Days {
		order = append(order, d.ID)
	}
	return order
}

func (m Model) activeDay() *schedule.Day {
	return m.sched.DayByID(m.st.ActiveDay)
}

func (m Model) visibleEvents() []schedule.Event {
	day := m.activeDay()
	if day == nil {
		return nil
	}
	return m.st.VisibleEvents(day.Events)
}

// messages
type tickMsg time.Time
type settledMsg struct{}
type exportDoneMsg struct {
	path string
	err  error
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) settle() tea.Cmd {
	return tea.Tick(settleDelay, func(time.Time) tea.Msg {
		return settledMsg{}
	})
}

// Init starts the refresh timer and schedules the scroll-to-now pass.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.settle())
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	forwardToGrid := m.st.ActiveDay == uistate.AllDays

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case tickMsg:
		m.now = m.nowFn()
		cmds = append(cmds, m.tick())
	case settledMsg:
		m.scrollToNow()
	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported " + msg.path
		}
	case tea.KeyPressMsg:
		forwardToGrid = m.handleKey(msg, &cmds)
	}

	if forwardToGrid {
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.st.ActiveDay == uistate.AllDays {
		m.grid.SetContent(m.gridContent())
	}

	return m, tea.Batch(cmds...)
}

// handleKey dispatches a key press. The return value reports whether the
// message should still be routed to the grid viewport for scrolling.
func (m *Model) handleKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	gridMode := m.st.ActiveDay == uistate.AllDays

	switch key := msg.String(); key {
	case "q", "ctrl+c":
		*cmds = append(*cmds, tea.Quit)

	case "?":
		m.showHelp = !m.showHelp

	case "esc":
		switch {
		case m.showHelp:
			m.showHelp = false
		case m.st.SelectedEvent != "":
			m.st = m.st.ClearSelection()
		}

	case "h", "left":
		m.cycleDay(-1)
		*cmds = append(*cmds, m.settle())
	case "l", "right":
		m.cycleDay(+1)
		*cmds = append(*cmds, m.settle())

	case "j", "down":
		if gridMode {
			return true
		}
		if n := len(m.visibleEvents()); n > 0 && m.cursor < n-1 {
			m.cursor++
			m.ensureCursorVisible()
		}
	case "k", "up":
		if gridMode {
			return true
		}
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}

	case "enter":
		if gridMode {
			return false
		}
		if vis := m.visibleEvents(); m.cursor < len(vis) {
			m.st = m.st.SelectEvent(vis[m.cursor].ID)
		}

	case "1", "2", "3", "4", "5":
		cat := schedule.Category(int(key[0] - '1'))
		m.st = m.st.ToggleCategory(cat)
		m.clampCursor()
		*cmds = append(*cmds, m.settle())
	case "0":
		m.st = m.st.ClearCategory()
		m.clampCursor()
		*cmds = append(*cmds, m.settle())

	case "e":
		if m.exporter == nil {
			m.status = "export not configured"
		} else if !m.exporting {
			m.exporting = true
			m.status = "exporting..."
			*cmds = append(*cmds, m.exportCmd())
		}

	case "r":
		m.now = m.nowFn()
		m.status = "clock refreshed " + m.now.Format("15:04:05")

	default:
		return gridMode
	}
	return false
}

func (m *Model) cycleDay(delta int) {
	order := m.dayOrder()
	idx := 0
	for i, id := range order {
		if id == m.st.ActiveDay {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	m.st = m.st.SelectDay(order[idx])
	m.cursor = 0
	m.scroll = 0
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if n := len(m.visibleEvents()); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
	m.ensureCursorVisible()
}

func (m *Model) exportCmd() tea.Cmd {
	st := m.st
	ex := m.exporter
	return func() tea.Msg {
		path, err := ex.Export(context.Background(), st)
		return exportDoneMsg{path: path, err: err}
	}
}

// scrollToNow positions the active view around the current time. The list
// anchor depends on rendered card heights, so this runs after the first
// layout rather than in Init.
func (m *Model) scrollToNow() {
	if m.todayID() == "" {
		return
	}
	if m.st.ActiveDay == uistate.AllDays {
		cfg := m.gridConfig()
		if off, ok := cfg.NowOffset(m.now); ok {
			row := int(off) - m.listHeight()/2
			m.grid.SetYOffset(max(0, row))
		}
		return
	}
	if m.st.ActiveDay != m.todayID() {
		return
	}
	lines, measured, _ := m.listLines()
	anchor := nowlineAnchor(timeutil.FromTime(m.now), m.visibleEvents(), measured)
	if anchor < 0 {
		return
	}
	m.scroll = max(0, anchor-m.listHeight()/2)
	m.clampScroll(len(lines) + 1)
}

func (m *Model) clampScroll(total int) {
	maxScroll := max(0, total-m.listHeight())
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// listHeight is the number of body rows available below the header and
// above the status line.
func (m Model) listHeight() int {
	h := m.termHeight - 4
	if h < 5 {
		h = 5
	}
	return h
}

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	m.grid.SetWidth(m.termWidth)
	m.grid.SetHeight(m.listHeight())
	m.grid.SetContent(m.gridContent())
	m.ensureCursorVisible()
}

// View renders the header, the active body, and the status footer.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	switch {
	case m.showHelp:
		b.WriteString(m.helpView())
	case m.st.SelectedEvent != "":
		b.WriteString(m.detailView())
	case m.st.ActiveDay == uistate.AllDays:
		b.WriteString(m.grid.View())
	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(m.statusView())
	return b.String()
}

func (m Model) headerView() string {
	tabs := make([]string, 0, len(m.sched.Days)+1)
	render := func(id, label string) string {
		if m.st.ActiveDay == id {
			return m.th.Header.ActiveTab.Render(label)
		}
		return m.th.Header.Tab.Render(" " + label + " ")
	}
	tabs = append(tabs, render(uistate.AllDays, "Todos"))
	for _, d := range m.sched.Days {
		tabs = append(tabs, render(d.ID, d.Weekday+" "+d.Date))
	}

	legend := make([]string, 0, len(schedule.Categories()))
	for _, c := range schedule.Categories() {
		label := m.th.Category(c).Render(c.String())
		if m.st.Filtered && m.st.Filter == c {
			label = m.th.Header.LegendOn.Render(c.String())
		}
		legend = append(legend, label)
	}

	title := m.th.Header.Title.Render(m.sched.Name)
	return title + "  " + strings.Join(tabs, " ") + "\n" +
		m.th.Header.Legend.Render("filter: ") + strings.Join(legend, "  ")
}

func (m Model) statusView() string {
	status := m.status
	if m.exporting {
		status = "exporting..."
	}
	return m.th.Status.Render(status)
}

func (m Model) helpView() string {
	help := []string{
		"h/l or ←/→   cycle days (Todos first)",
		"j/k or ↓/↑   move between events, scroll the grid",
		"enter        inspect the selected event",
		"esc          close detail or help",
		"1-5          toggle a category filter",
		"0            show every category",
		"e            export the current view to PNG",
		"r            refresh the clock sample",
		"q            quit",
	}
	return m.th.Help.Render(strings.Join(help, "\n"))
}

// Run starts the program in the alternate screen.
func Run(sched *schedule.Schedule, linkResolver *links.Resolver, exporter Exporter) error {
	p := tea.NewProgram(New(sched, linkResolver, exporter), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

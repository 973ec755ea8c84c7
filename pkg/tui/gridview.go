package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/crono/pkg/glyph"
	"tableflip.dev/crono/pkg/timegrid"
)

const gutterWidth = 5

func (m Model) gridConfig() timegrid.Config {
	return timegrid.TermConfig()
}

// gridCell is one character of a day column, tagged with the stacking
// layer of the event that painted it so colliding events overlay in the
// same order as the exported view.
type gridCell struct {
	ch    rune
	hex   string
	layer int
}

func (m Model) gridColumnWidth() int {
	n := len(m.sched.Days)
	if n == 0 {
		return 20
	}
	w := (m.termWidth - gutterWidth - 2 - n) / n
	if m.termWidth == 0 {
		w = 20
	}
	if w < 10 {
		w = 10
	}
	if w > 28 {
		w = 28
	}
	return w
}

func (m Model) paintDay(dayIdx, rows, colW int) [][]gridCell {
	cells := make([][]gridCell, rows)
	for y := range cells {
		row := make([]gridCell, colW)
		for x := range row {
			row[x] = gridCell{ch: ' ', layer: -1}
		}
		cells[y] = row
	}

	cfg := m.gridConfig()
	day := m.sched.Days[dayIdx]
	for _, ev := range day.Events {
		if !m.st.Visible(ev) {
			continue
		}
		r := cfg.Layout(ev, day.Events, m.st.Visible)
		top := int(r.Top)
		if top < 0 {
			top = 0
		}
		height := int(r.Height + 0.5)
		if height < 1 {
			height = 1
		}
		lo := int(r.Left * float64(colW))
		width := int(r.Width*float64(colW) + 0.5)
		if width < 1 {
			width = 1
		}
		hi := lo + width
		if hi > colW {
			hi = colW
		}

		label := []rune(glyph.ForEvent(ev.Category, ev.Title).Symbol + " " + ev.Title)
		hex := m.th.Accent(ev.Category)
		for y := top; y < top+height && y < rows; y++ {
			for x := lo; x < hi; x++ {
				if cells[y][x].layer > r.Layer {
					continue
				}
				ch := ' '
				if y == top {
					if i := x - lo; i < len(label) {
						ch = label[i]
					}
				}
				cells[y][x] = gridCell{ch: ch, hex: hex, layer: r.Layer}
			}
		}
	}
	return cells
}

// renderGridRow flattens one painted row, grouping runs of cells that
// share an event color into single styled segments.
func renderGridRow(row []gridCell) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && row[j].hex == row[i].hex {
			j++
		}
		run := make([]rune, 0, j-i)
		for _, c := range row[i:j] {
			run = append(run, c.ch)
		}
		if row[i].layer < 0 {
			b.WriteString(string(run))
		} else {
			style := lipgloss.NewStyle().
				Background(lipgloss.Color(row[i].hex)).
				Foreground(lipgloss.Color("#ffffff"))
			b.WriteString(style.Render(string(run)))
		}
		i = j
	}
	return b.String()
}

func padLabel(s string, w int) string {
	r := []rune(s)
	if len(r) >= w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}

// gridContent renders every day side by side on the shared axis, with
// half-hour gutter labels and the live indicator on today's row.
func (m Model) gridContent() string {
	days := m.sched.Days
	if len(days) == 0 {
		return ""
	}
	cfg := m.gridConfig()
	rows := int(cfg.Height())
	labels := cfg.HalfHourLabels()
	colW := m.gridColumnWidth()

	painted := make([][][]gridCell, len(days))
	for i := range days {
		painted[i] = m.paintDay(i, rows, colW)
	}

	nowRow := -1
	if m.todayID() != "" {
		if off, ok := cfg.NowOffset(m.now); ok {
			nowRow = int(off)
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth+2))
	for i, d := range days {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.th.Grid.DayHeader.Render(padLabel(d.Weekday+" "+d.Date, colW)))
	}
	b.WriteString("\n")

	for y := 0; y < rows; y++ {
		gutter := ""
		if y < len(labels) {
			gutter = labels[y]
		}
		axis := m.th.Grid.Axis.Render("│")
		if y == nowRow {
			b.WriteString(m.th.Indicator.Render(padLabel("now ▸", gutterWidth)) + " " + m.th.Indicator.Render("┤"))
		} else {
			b.WriteString(m.th.Header.GutterLabel.Render(padLabel(gutter, gutterWidth)) + " " + axis)
		}
		for i := range days {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(renderGridRow(painted[i][y]))
		}
		if y < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

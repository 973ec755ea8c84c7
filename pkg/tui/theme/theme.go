package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/crono/pkg/schedule"
)

// Theme centralizes Lip Gloss styles for the schedule UI.
type Theme struct {
	Header    HeaderTheme
	Card      CardTheme
	Grid      GridTheme
	Detail    DetailTheme
	Indicator lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style

	categories map[schedule.Category]lipgloss.Style
	accents    map[schedule.Category]string
}

// HeaderTheme styles the day tabs and category legend.
type HeaderTheme struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Legend      lipgloss.Style
	LegendOn    lipgloss.Style
	GutterLabel lipgloss.Style
}

// CardTheme styles list-mode event cards.
type CardTheme struct {
	Frame    lipgloss.Style
	Selected lipgloss.Style
	Times    lipgloss.Style
	Title    lipgloss.Style
	Audience lipgloss.Style
	Speaker  lipgloss.Style
}

// GridTheme styles the shared-axis timeline.
type GridTheme struct {
	Axis      lipgloss.Style
	DayHeader lipgloss.Style
}

// DetailTheme styles the event detail panel.
type DetailTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Times   lipgloss.Style
	Session lipgloss.Style
	Link    lipgloss.Style
}

// Category accent colors, taken from the web palette.
var accentHex = map[schedule.Category]string{
	schedule.Routine:    "#64748b", // slate
	schedule.Meals:      "#3b82f6", // blue
	schedule.Activities: "#f59e0b", // amber
	schedule.Messages:   "#10b981", // emerald
	schedule.Transport:  "#a855f7", // purple
}

// Category returns the accent style for a category.
func (t Theme) Category(c schedule.Category) lipgloss.Style {
	return t.categories[c]
}

// Accent returns the raw accent hex for a category.
func (t Theme) Accent(c schedule.Category) string {
	return t.accents[c]
}

// SelectedAccent blends the category accent toward white so a selected
// card reads brighter without losing its hue.
func (t Theme) SelectedAccent(c schedule.Category) string {
	base, err := colorful.Hex(t.accents[c])
	if err != nil {
		return t.accents[c]
	}
	white, _ := colorful.Hex("#ffffff")
	return base.BlendLab(white, 0.35).Hex()
}

// Default returns the built-in theme.
func Default() Theme {
	categories := make(map[schedule.Category]lipgloss.Style, len(accentHex))
	for c, hex := range accentHex {
		categories[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}

	return Theme{
		Header: HeaderTheme{
			Title:       lipgloss.NewStyle().Bold(true),
			Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("22")).Padding(0, 1),
			Legend:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			LegendOn:    lipgloss.NewStyle().Bold(true).Reverse(true),
			GutterLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Card: CardTheme{
			Frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Selected: lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1),
			Times:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Title:    lipgloss.NewStyle().Bold(true),
			Audience: lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
			Speaker:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		},
		Grid: GridTheme{
			Axis:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			DayHeader: lipgloss.NewStyle().Bold(true),
		},
		Detail: DetailTheme{
			Frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
			Title:   lipgloss.NewStyle().Bold(true),
			Times:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Session: lipgloss.NewStyle(),
			Link:    lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("39")),
		},
		Indicator: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),

		categories: categories,
		accents:    accentHex,
	}
}

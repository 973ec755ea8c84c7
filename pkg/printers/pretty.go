package printers

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"

	"tableflip.dev/crono/pkg/glyph"
	"tableflip.dev/crono/pkg/schedule"
	"tableflip.dev/crono/pkg/uistate"
)

// PrettyPrint renders schedule days to a terminal.
type PrettyPrint struct {
	Out io.Writer

	// ShowSessions expands parallel sessions under each event.
	ShowSessions bool
}

// NewPrettyPrint builds a printer on stdout, disabling color when the
// output is not a terminal.
func NewPrettyPrint(showSessions bool) *PrettyPrint {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	return &PrettyPrint{Out: color.Output, ShowSessions: showSessions}
}

// Day prints one day's events under its heading, honoring the filter
// state.
func (pp *PrettyPrint) Day(day schedule.Day, state uistate.State) {
	title := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)

	events := state.VisibleEvents(day.Events)

	_, _ = title.Fprint(pp.Out, day.Title())
	_, _ = faint.Fprintf(pp.Out, " - %d ", len(events))
	switch len(events) {
	case 1:
		_, _ = faint.Fprintln(pp.Out, "evento")
	default:
		_, _ = faint.Fprintln(pp.Out, "eventos")
	}

	if len(events) == 0 {
		empty := color.New(color.Faint, color.Italic)
		_, _ = empty.Fprint(pp.Out, " nenhum\n\n")
		return
	}

	body := color.New()
	times := color.New(color.FgHiYellow, color.Faint)
	for _, e := range events {
		_, _ = times.Fprintf(pp.Out, "%s — %s  ", e.Start, e.End)
		_, _ = body.Fprintf(pp.Out, "%s %s\n", glyph.ForEvent(e.Category, e.Title), e.Title)
		if pp.ShowSessions && len(e.Sessions) > 0 {
			pp.sessions(e.Sessions)
		}
	}
	_, _ = body.Fprintln(pp.Out, "")
}

func (pp *PrettyPrint) sessions(sessions []schedule.Session) {
	table := uitable.New()
	table.MaxColWidth = 60
	for _, s := range sessions {
		speaker := s.Speaker
		if speaker == "" {
			speaker = "-"
		}
		table.AddRow("    "+s.Audience.Label(), s.Title, speaker)
	}
	_, _ = fmt.Fprintln(pp.Out, table.String())
}

// Schedule prints every day, or only the active one.
func (pp *PrettyPrint) Schedule(s *schedule.Schedule, state uistate.State) {
	if state.ActiveDay != uistate.AllDays {
		if day := s.DayByID(state.ActiveDay); day != nil {
			pp.Day(*day, state)
		}
		return
	}
	for _, day := range s.Days {
		pp.Day(day, state)
	}
}

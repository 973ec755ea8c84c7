package show

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/crono/pkg/printers"
	"tableflip.dev/crono/pkg/schedule"
	"tableflip.dev/crono/pkg/store"
	"tableflip.dev/crono/pkg/uistate"
)

// Show prints schedule days to the terminal.
type Show struct {
	Day      string
	Category string
	Sessions bool
	Config   *store.Config
}

func (n *Show) Do(ctx context.Context) error {
	s, err := n.Config.LoadSchedule()
	if err != nil {
		return err
	}

	state := uistate.State{ActiveDay: uistate.AllDays}
	if n.Day != "" {
		day := ResolveDay(s, n.Day)
		if day == nil {
			return fmt.Errorf("unknown day %q", n.Day)
		}
		state = state.SelectDay(day.ID)
	}
	if n.Category != "" {
		cat, err := schedule.ParseCategory(n.Category)
		if err != nil {
			return err
		}
		state = state.ToggleCategory(cat)
	}

	pp := printers.NewPrettyPrint(n.Sessions)
	fmt.Fprintln(pp.Out, "")
	pp.Schedule(s, state)
	return nil
}

// ResolveDay accepts a day id or the aliases "hoje"/"today", which match
// against the wall-clock date.
func ResolveDay(s *schedule.Schedule, ref string) *schedule.Day {
	if ref == "hoje" || ref == "today" {
		today := time.Now().Format("02/01")
		for i := range s.Days {
			if s.Days[i].Date == today {
				return &s.Days[i]
			}
		}
		return nil
	}
	return s.DayByID(ref)
}

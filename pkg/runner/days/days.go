package days

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/crono/pkg/store"
)

// Days lists the schedule's days with their event counts.
type Days struct {
	Config *store.Config
}

func (n *Days) Do(ctx context.Context) error {
	s, err := n.Config.LoadSchedule()
	if err != nil {
		return err
	}

	today := time.Now().Format("02/01")
	table := uitable.New()
	table.AddRow("ID", "DIA", "DATA", "EVENTOS")
	for _, d := range s.Days {
		marker := ""
		if d.Date == today {
			marker = " ◀ hoje"
		}
		table.AddRow(d.ID, d.FullWeekday(), d.Date+marker, fmt.Sprintf("%d", len(d.Events)))
	}

	_, _ = fmt.Fprintln(color.Output, table.String())
	return nil
}

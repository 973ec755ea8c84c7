// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ViewOptions selects which slice of the schedule a command operates on.
type ViewOptions struct {
	Day      string
	Category string
}

// AddDayArg wires the day selection flag.
func AddDayArg(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		`Restrict to one day by id (see "crono days"), or "hoje" for today.`)
}

// AddCategoryArg wires the category filter flag.
func AddCategoryArg(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Only show one category: rotina, refeições, atividades, mensagens or transporte.")
}

// SessionOptions controls how much session detail is printed.
type SessionOptions struct {
	Sessions bool
}

// AddSessionsArg wires the session expansion flag.
func AddSessionsArg(cmd *cobra.Command, o *SessionOptions) {
	cmd.Flags().BoolVarP(&o.Sessions, "sessions", "s", false,
		"Expand parallel sessions under each event.")
}

package options

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Wrap80 wraps help text at the conventional terminal width.
func Wrap80(text string) string {
	return wordwrap.String(strings.TrimSpace(text), 80)
}

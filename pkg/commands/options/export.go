package options

import (
	"time"

	"github.com/spf13/cobra"
)

// ExportOptions captures the PNG capture flags.
type ExportOptions struct {
	Output     string
	Width      int
	Scale      float64
	Background string
	TimeoutSec int
}

// AddExportArgs wires the capture flags on the provided command.
func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"Path of the PNG to write. Defaults to programacao[-<day>].png.")
	cmd.Flags().IntVar(&o.Width, "width", 0,
		"Viewport width in CSS pixels. Defaults to 1200, or 800 for a single day.")
	cmd.Flags().Float64Var(&o.Scale, "scale", 0,
		"Device scale factor. Defaults to 2.")
	cmd.Flags().StringVar(&o.Background, "background", "",
		"Page background color. Defaults to #ffffff.")
	cmd.Flags().IntVar(&o.TimeoutSec, "timeout", 0,
		"Capture timeout in seconds. Defaults to 30.")
}

// Timeout converts the flag to a duration, zero meaning the default.
func (o *ExportOptions) Timeout() time.Duration {
	return time.Duration(o.TimeoutSec) * time.Second
}

package options

import (
	"github.com/spf13/cobra"
)

// DateOptions selects a journal day and the calendar views.
type DateOptions struct {
	Date string
	Cal  bool
	Year bool
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Journal day: today, yesterday, tomorrow, or a date like 2026-08-22.")
}

func AddCalendarArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().BoolVar(&o.Cal, "cal", false,
		"Print a month calendar of journal activity instead of the page.")
	cmd.Flags().BoolVar(&o.Year, "year", false,
		"Print the whole year of journal activity.")
}

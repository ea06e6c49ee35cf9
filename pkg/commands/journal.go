package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/outlinehq/hoist/pkg/commands/options"
	"github.com/outlinehq/hoist/pkg/runner/journal"
	"github.com/outlinehq/hoist/pkg/timeutil"
)

func addJournal(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"j", "today"},
		Short:   "open a day's journal page",
		Long: options.Wrap80("Journal jumps to the page for a day under " +
			"Daily Log > year > month, creating the chain on first use. " +
			"With --cal it prints a month calendar showing which days have " +
			"entries; --year prints all twelve months."),
		Example: `
hoist journal
hoist journal -d yesterday
hoist journal -d 2026-08-01
hoist journal --cal
hoist journal --year
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := timeutil.ParseDay(do.Date, time.Now())
			if err != nil {
				return err
			}
			s, err := loadSession()
			if err != nil {
				return err
			}
			r := journal.Journal{
				ShowID:  io.ShowID,
				Date:    day,
				Cal:     do.Cal,
				Year:    do.Year,
				Session: s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddCalendarArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

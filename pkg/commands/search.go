package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/outlinehq/hoist/pkg/commands/options"
	runner "github.com/outlinehq/hoist/pkg/runner/search"
	"github.com/outlinehq/hoist/pkg/search"
	"github.com/outlinehq/hoist/pkg/timeutil"
)

func addSearch(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	so := &options.SortOptions{}

	cmd := &cobra.Command{
		Use:     "search <query>",
		Aliases: []string{"find"},
		Short:   "quick-find bullets by substring, #tag, and 'or'",
		Long: options.Wrap80("Search matches each space-separated term as a " +
			"case-insensitive substring; all terms must hit. Join alternatives " +
			"with the word 'or'. A #tag is just another term."),
		Example: `
hoist search groceries
hoist search "#errand or #call"
hoist search meeting --sort edited --within 1w
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := search.ParseSortMode(so.Sort)
			if !ok {
				return fmt.Errorf("unknown sort %q, want search, edited, or created", so.Sort)
			}
			within := time.Duration(0)
			if so.Within != "" {
				var err error
				within, _, err = timeutil.ParseWindow(so.Within)
				if err != nil {
					return err
				}
			}
			s, err := loadSession()
			if err != nil {
				return err
			}
			r := runner.Search{
				ShowID:  io.ShowID,
				Query:   strings.Join(args, " "),
				Sort:    mode,
				Within:  within,
				Session: s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddSortArgs(cmd, so)
	options.AddWithinArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

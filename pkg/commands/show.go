package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outlinehq/hoist/pkg/commands/options"
	"github.com/outlinehq/hoist/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:   "show [bullet]",
		Short: "print a bullet's subtree, or the whole outline",
		Long: options.Wrap80("Show prints the outline as an indented tree. " +
			"Name a bullet by id or by its exact text to print just that subtree. " +
			"Use -o json or -o yaml for a machine-readable dump, --recent or " +
			"--favorites for the sidebar lists."),
		Example: `
hoist show
hoist show "Daily Log"
hoist show --show-id
hoist show --recent
hoist show -o json > outline.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			r := show.Show{
				ShowID:    io.ShowID,
				Output:    oo.Output,
				Target:    strings.Join(args, " "),
				Recent:    lo.Recent,
				Favorites: lo.Favorites,
				Session:   s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddListArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outlinehq/hoist/pkg/commands/options"
	"github.com/outlinehq/hoist/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	to := &options.TargetOptions{}

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "append a bullet without opening the editor",
		Example: `
hoist add pick up the dry cleaning
hoist add --under "Groceries" oat milk
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			r := add.Add{
				ShowID:  io.ShowID,
				Text:    strings.Join(args, " "),
				Under:   to.Under,
				Session: s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddUnderArgs(cmd, to)
	_ = cmd.RegisterFlagCompletionFunc("under", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return bulletCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

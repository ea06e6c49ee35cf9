package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/outlinehq/hoist/pkg/commands/options"
	"github.com/outlinehq/hoist/pkg/runner/reset"
)

func addReset(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "erase the outline and start over",
		Long: options.Wrap80("Reset deletes every stored bullet, the recents " +
			"and favorites lists, and the saved settings, then seeds the " +
			"welcome outline. It refuses to run without --confirm."),
		Example: `
hoist reset --confirm
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			r := reset.Reset{
				Confirm: co.Confirm,
				Session: s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/outlinehq/hoist/pkg/runner/ui"
)

func addBrowse(topLevel *cobra.Command) {
	demo := false
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "open the read-only two-pane browser",
		Example: `
hoist browse
hoist browse --demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			i := ui.UI{Demo: demo}
			if !demo {
				s, err := loadSession()
				if err != nil {
					return err
				}
				i.Session = s
			}
			return i.Do(context.Background())
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "browse a built-in showcase outline instead of the stored one")

	topLevel.AddCommand(cmd)
}

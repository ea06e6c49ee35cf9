package commands

import (
	"github.com/spf13/cobra"

	teaui "github.com/outlinehq/hoist/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the full-screen outline editor",
		Example: `
hoist ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor()
		},
	}

	topLevel.AddCommand(cmd)
}

func runEditor() error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	return teaui.Run(s)
}

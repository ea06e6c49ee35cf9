package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/outlinehq/hoist/pkg/commands/options"
	"github.com/outlinehq/hoist/pkg/runner/exportfile"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write the outline to a JSON file",
		Example: `
hoist export
hoist export -f backup.json
hoist export -f - | jq '.[0]'
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			r := exportfile.Export{
				File:    fo.File,
				Session: s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFileArgs(cmd, fo, "Destination file. Defaults to the configured file name; - writes to stdout.")

	topLevel.AddCommand(cmd)
}

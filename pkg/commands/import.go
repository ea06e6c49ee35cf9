package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/outlinehq/hoist/pkg/commands/options"
	"github.com/outlinehq/hoist/pkg/runner/ingest"
)

func addImport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}
	to := &options.TargetOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "merge a JSON export into the outline",
		Long: options.Wrap80("Import reads a file produced by export and " +
			"appends its bullets, at the top level or under --under. Every " +
			"imported bullet gets a fresh id; the original id is kept for " +
			"provenance. A file with any malformed bullet is rejected whole."),
		Example: `
hoist import -f backup.json
hoist import -f inbox.json --under "Inbox"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			r := ingest.Ingest{
				File:    fo.File,
				Under:   to.Under,
				Session: s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFileArgs(cmd, fo, "Source file, a JSON export.")
	_ = cmd.MarkFlagRequired("file")
	options.AddUnderArgs(cmd, to)
	_ = cmd.RegisterFlagCompletionFunc("under", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return bulletCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}

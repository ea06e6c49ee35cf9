package options

import (
	"github.com/spf13/cobra"
)

// DBOptions
type DBOptions struct {
	Path string
}

func AddDBArgs(cmd *cobra.Command, o *DBOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "db", "",
		"Directory for the outline database. Defaults to HOIST_PATH or ~/.hoist.db.")
}

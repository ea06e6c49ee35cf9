package options

import (
	"github.com/spf13/cobra"
)

// TargetOptions names a parent bullet for commands that insert or import.
type TargetOptions struct {
	Under string
}

func AddUnderArgs(cmd *cobra.Command, o *TargetOptions) {
	cmd.Flags().StringVarP(&o.Under, "under", "u", "",
		"Parent bullet, by id or exact text. Defaults to the top level.")
}

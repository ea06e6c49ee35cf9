package options

import (
	"github.com/spf13/cobra"
)

// FileOptions
type FileOptions struct {
	File string
}

func AddFileArgs(cmd *cobra.Command, o *FileOptions, usage string) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "", usage)
}

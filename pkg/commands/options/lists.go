package options

import (
	"github.com/spf13/cobra"
)

// ListOptions selects one of the sidebar lists instead of the outline tree.
type ListOptions struct {
	Recent    bool
	Favorites bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVar(&o.Recent, "recent", false,
		"Print the recently edited list instead of the outline.")
	cmd.Flags().BoolVar(&o.Favorites, "favorites", false,
		"Print the favorites list instead of the outline.")
}

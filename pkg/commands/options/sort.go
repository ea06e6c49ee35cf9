package options

import (
	"github.com/spf13/cobra"
)

// SortOptions
type SortOptions struct {
	Sort   string
	Within string
}

func AddSortArgs(cmd *cobra.Command, o *SortOptions) {
	cmd.Flags().StringVarP(&o.Sort, "sort", "s", "search",
		"Sort order. One of 'search', 'edited' or 'created'.")
}

func AddWithinArgs(cmd *cobra.Command, o *SortOptions) {
	cmd.Flags().StringVar(&o.Within, "within", "",
		"Keep only bullets edited within a window, like 30m, 2h, or 1w.")
}

package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	Output string
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "pretty",
		"Output format. One of 'pretty', 'json' or 'yaml'.")
}

func (o *OutputOptions) JSON() bool {
	return o.Output == "json"
}

// HandleError keeps machine-readable output machine-readable: with -o json an
// error renders as a JSON object on stdout instead of cobra's usage text.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON() && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

package commands

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(hoist completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(hoist completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// bulletCompletions offers stored bullet texts for flags that name a parent.
func bulletCompletions(toComplete string) []string {
	s, err := loadSession()
	if err != nil {
		return nil
	}
	var texts []string
	for _, fb := range s.Flattened() {
		if fb.Text == "" {
			continue
		}
		texts = append(texts, strconv.Quote(fb.Text))
	}
	return texts
}

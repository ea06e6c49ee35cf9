package commands

import (
	"os"

	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/outlinehq/hoist/pkg/app"
	"github.com/outlinehq/hoist/pkg/commands/options"
	"github.com/outlinehq/hoist/pkg/store"
)

var (
	oo = &options.OutputOptions{}
	db = &options.DBOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "hoist",
		Short: options.Wrap80("An outliner for the terminal: one big tree of bullets, zoomed, folded, and edited in place."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddDBArgs(cmd, db)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addBrowse(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addShow(topLevel)
	addSearch(topLevel)
	addJournal(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addConfig(topLevel)
	addReset(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// loadSession opens the store, honoring --db, and hydrates a session from it.
func loadSession() (*app.Session, error) {
	var cfg store.Config
	if db.Path != "" {
		cfg = store.PathConfig(db.Path)
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return app.Load(p), nil
}

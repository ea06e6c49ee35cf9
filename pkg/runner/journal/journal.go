// Package journal provides runners for the date-keyed journal pages.
package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/outlinehq/hoist/pkg/app"
	"github.com/outlinehq/hoist/pkg/outline"
	"github.com/outlinehq/hoist/pkg/printers"
)

// Journal opens or reports on the journal page for a day.
type Journal struct {
	ShowID  bool
	Date    time.Time
	Cal     bool
	Year    bool
	Session *app.Session
}

const layoutUS = "January 2, 2006"

// Do prints the journal page for the date, creating the Daily Log chain on
// first use. With Cal it prints a month activity calendar instead, with Year
// all twelve months; neither of those creates anything.
func (n *Journal) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not open journal, no session")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Year {
		pp.Year(n.Date.Year(), func(month time.Time) []int {
			return app.JournalActivity(n.Session.Forest(), month)
		})
		return nil
	}
	if n.Cal {
		pp.Calendar(n.Date, app.JournalActivity(n.Session.Forest(), n.Date))
		return nil
	}

	dayID := n.Session.OpenJournal(n.Date)
	if err := n.Session.Save(); err != nil {
		return err
	}

	f := n.Session.Forest()
	pp.Crumbs(n.Session.Breadcrumbs()...)
	count := 0
	if loc, ok := outline.Locate(f, dayID); ok {
		count = outline.Count(outline.Forest(loc.Node.Children))
	}
	pp.TitleWithCount(n.Date.Format(layoutUS), count)
	pp.Outline(outline.SubtreeRows(f, dayID)...)
	return nil
}

package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/outlinehq/hoist/pkg/app"
	"github.com/outlinehq/hoist/pkg/printers"
	"github.com/outlinehq/hoist/pkg/search"
)

type Search struct {
	ShowID  bool
	Query   string
	Sort    search.SortMode
	Within  time.Duration
	Session *app.Session
}

// Do runs a quick-find query against the stored outline and prints the hits
// as a table. Within, when set, keeps only bullets edited inside that window.
func (n *Search) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not search, no session")
	}

	now := time.Now()
	hits := n.Session.Search(n.Query, n.Sort)
	if n.Within > 0 {
		cutoff := now.Add(-n.Within)
		kept := hits[:0:0]
		for _, h := range hits {
			if h.UpdatedAt.After(cutoff) {
				kept = append(kept, h)
			}
		}
		hits = kept
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount(fmt.Sprintf("Search %q", n.Query), len(hits))
	pp.Results(now, hits...)
	return nil
}

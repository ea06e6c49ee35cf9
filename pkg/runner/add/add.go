package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/outlinehq/hoist/pkg/app"
	"github.com/outlinehq/hoist/pkg/outline"
	"github.com/outlinehq/hoist/pkg/printers"
)

type Add struct {
	ShowID  bool
	Text    string
	Under   string
	Session *app.Session
}

// Do appends a bullet to the outline, under a parent when one is given, and
// prints the page it landed on. The parent may be an id or a bullet's exact
// text.
func (n *Add) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not add, no session")
	}

	parentID := ""
	if n.Under != "" {
		var ok bool
		parentID, ok = n.Session.ResolveBullet(n.Under)
		if !ok {
			return fmt.Errorf("no bullet matching %q", n.Under)
		}
	}

	if _, err := n.Session.Append(n.Text, parentID); err != nil {
		return err
	}
	if err := n.Session.Save(); err != nil {
		return err
	}

	f := n.Session.Forest()
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	title := n.Session.Settings().FileName
	if parentID != "" {
		if loc, ok := outline.Locate(f, parentID); ok {
			title = loc.Node.DisplayText()
		}
	}
	pp.Title(title)
	pp.Outline(outline.SubtreeRows(f, parentID)...)
	return nil
}

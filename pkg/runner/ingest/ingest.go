// Package ingest merges an exported JSON file into the outline.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/outlinehq/hoist/pkg/app"
)

type Ingest struct {
	File    string
	Under   string
	Session *app.Session
}

// Do reads a JSON export and appends its bullets, under a target when one is
// given. Imported bullets get fresh ids; a file with any malformed bullet is
// rejected whole.
func (n *Ingest) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not import, no session")
	}

	data, err := os.ReadFile(n.File)
	if err != nil {
		return err
	}

	targetID := ""
	if n.Under != "" {
		var ok bool
		targetID, ok = n.Session.ResolveBullet(n.Under)
		if !ok {
			return fmt.Errorf("no bullet matching %q", n.Under)
		}
	}

	count, err := n.Session.ImportJSON(data, targetID)
	if err != nil {
		return err
	}
	if err := n.Session.Save(); err != nil {
		return err
	}

	fmt.Printf("imported %d bullets from %s\n", count, n.File)
	return nil
}

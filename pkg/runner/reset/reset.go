// Package reset clears the stored outline.
package reset

import (
	"context"
	"errors"
	"fmt"

	"github.com/outlinehq/hoist/pkg/app"
)

type Reset struct {
	Confirm bool
	Session *app.Session
}

// Do erases every stored key and reseeds the welcome outline. Refuses to run
// without the confirm flag.
func (n *Reset) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not reset, no session")
	}

	if err := n.Session.Reset(n.Confirm); err != nil {
		return err
	}
	fmt.Printf("outline reset, %d bullets seeded in %s\n", n.Session.Count(), n.Session.DBPath())
	return nil
}

package ui

import (
	"context"
	"errors"

	"github.com/outlinehq/hoist/pkg/app"
	browser "github.com/outlinehq/hoist/pkg/ui"
)

// UI opens the read-only two-pane browser. Demo swaps the stored outline for
// the built-in showcase forest.
type UI struct {
	Demo    bool
	Session *app.Session
}

func (d *UI) Do(ctx context.Context) error {
	if d.Demo {
		return browser.Do(ctx, "demo", browser.StaticDemo())
	}
	if d.Session == nil {
		return errors.New("can not browse, no session")
	}
	return browser.Do(ctx, d.Session.Settings().FileName, d.Session.Forest())
}

// Package key provides CLI helpers to display the outline legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/outlinehq/hoist/pkg/glyph"
)

// Key prints a glyph legend describing row markers and inline syntax.
type Key struct{}

// Do renders the marker and syntax keys to stdout.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	all := glyph.DefaultGlyphs()
	markers := make([]glyph.Glyph, 0, len(all))
	syntax := make([]glyph.Glyph, 0, len(all))
	for _, v := range all {
		if v.Syntax {
			syntax = append(syntax, v)
		} else {
			markers = append(markers, v)
		}
	}

	k.Key(ctx, markers, false)
	_, _ = fmt.Fprintln(color.Output, "")
	k.Key(ctx, syntax, true)

	fmt.Println("")
	return nil
}

// Key renders a glyph table; when syn is true, typed syntax is shown.
func (k *Key) Key(_ context.Context, glyfs []glyph.Glyph, syn bool) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if syn {
		tbl.AddRow(bold.Sprint("Syntax"), bold.Sprint("Meaning"), bold.Sprint("Typed as"))
	} else {
		tbl.AddRow(bold.Sprint("Marker"), bold.Sprint("Meaning"), bold.Sprint("Key"))
	}
	for _, v := range glyfs {
		tbl.AddRow(v.Symbol, v.Meaning, v.Key)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}

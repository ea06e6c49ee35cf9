package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcusolsson/tui-go"
	"github.com/muesli/reflow/wordwrap"

	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/glyph"
	"github.com/outlinehq/hoist/pkg/outline"
	"github.com/outlinehq/hoist/pkg/search"
	"github.com/outlinehq/hoist/pkg/timeutil"
)

const detailWidth = 56

// Do opens the read-only browser over a forest: top-level bullets on the
// left, the selected page's rows plus a wrapped detail of the highlighted
// row on the right. Editing happens in the full-screen editor; this is for
// a quick look.
func Do(ctx context.Context, title string, f outline.Forest) error {
	iTable := tui.NewTable(1, 0)

	index := tui.NewVBox(
		iTable,
		tui.NewSpacer(),
	)
	index.SetBorder(true)
	index.SetSizePolicy(tui.Preferred, tui.Expanding)

	pTable := tui.NewTable(1, 0)
	pTable.SetFocused(true)
	pTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	dTable := tui.NewTable(1, 0)
	dTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	detail := tui.NewVBox(dTable)
	detail.SetBorder(true)
	detail.SetTitle("detail")
	detail.SetSizePolicy(tui.Expanding, tui.Maximum)

	page := tui.NewVBox(pTable, tui.NewSpacer(), detail)
	page.SetBorder(true)
	page.SetSizePolicy(tui.Expanding, tui.Expanding)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Use left or right arrows to navigate, 'k' for key, ESC or 'q' to QUIT`)

	selector := tui.NewHBox(index, page)

	root := tui.NewVBox(
		selector,
		status,
	)

	key := keyUI()
	key.SetBorder(true)
	key.SetTitle("key")

	popup := tui.NewVBox(
		tui.NewHBox(key, tui.NewSpacer()),
		tui.NewSpacer(),
		status,
	)

	u, err := tui.New(root)
	if err != nil {
		return err
	}

	d := browser{
		forest:     f,
		index:      iTable,
		indexTitle: title,
		indexView:  index,
		page:       pTable,
		pageView:   page,
		detail:     dTable,
	}
	d.populateIndex()

	iTable.OnSelectionChanged(func(*tui.Table) {
		d.populatePage()
	})
	pTable.OnSelectionChanged(func(*tui.Table) {
		d.populateDetail()
	})

	isKey := false
	u.SetKeybinding("k", func() {
		if isKey {
			u.SetWidget(root)
			isKey = false
		} else {
			u.SetWidget(popup)
			isKey = true
		}
	})

	u.SetKeybinding("Left", func() {
		d.focusIndex()
	})

	u.SetKeybinding("Right", func() {
		d.focusPage()
	})

	u.SetKeybinding("Esc", func() { u.Quit() })
	u.SetKeybinding("q", func() { u.Quit() })

	d.populatePage()
	d.focusPage()

	return u.Run()
}

type browser struct {
	forest outline.Forest

	dirty    string
	pageRows []outline.Row

	index      *tui.Table
	indexTitle string
	indexView  *tui.Box

	page      *tui.Table
	pageView  *tui.Box
	pageTitle string

	detail *tui.Table
}

func (d *browser) focusIndex() {
	d.index.SetFocused(true)
	d.indexView.SetTitle(strings.ToUpper(d.indexTitle))

	d.page.SetFocused(false)
	d.pageView.SetTitle("")
}

func (d *browser) focusPage() {
	d.index.SetFocused(false)
	d.indexView.SetTitle(d.indexTitle)

	d.page.SetFocused(true)
	d.pageView.SetTitle(d.pageTitle)
}

func (d *browser) populateIndex() {
	d.index.RemoveRows()
	d.index.Select(0)

	for _, n := range d.forest {
		d.index.AppendRow(tui.NewLabel(n.DisplayText()))
	}
}

func (d *browser) populatePage() {
	selected := ""
	if at := d.index.Selected(); at >= 0 && at < len(d.forest) {
		selected = d.forest[at].ID
	}

	if d.dirty != selected {
		d.page.RemoveRows()
		d.pageTitle = ""
		d.pageRows = nil
		if loc, ok := outline.Locate(d.forest, selected); ok {
			d.pageTitle = loc.Node.DisplayText()
			d.pageRows = outline.SubtreeRows(d.forest, selected)
			for _, r := range d.pageRows {
				d.page.AppendRow(tui.NewLabel(rowLabel(r)))
			}
		}
		d.dirty = selected
		d.page.Select(0)
	}
	d.populateDetail()
}

// populateDetail renders the highlighted row's full text, wrapped to the
// detail pane, with a meta line underneath.
func (d *browser) populateDetail() {
	d.detail.RemoveRows()

	at := d.page.Selected()
	if at < 0 || at >= len(d.pageRows) {
		return
	}
	n := d.pageRows[at].Bullet

	for _, line := range strings.Split(wordwrap.String(n.DisplayText(), detailWidth), "\n") {
		d.detail.AppendRow(tui.NewLabel(line))
	}
	d.detail.AppendRow(tui.NewLabel(""))
	d.detail.AppendRow(tui.NewLabel(metaLine(n)))
	if tags := search.Tags([]search.FlatBullet{{Text: n.Text}}); len(tags) > 0 {
		d.detail.AppendRow(tui.NewLabel("tags: "+strings.Join(tags, " ")))
	}
}

func metaLine(n *bullet.Bullet) string {
	meta := "edited " + timeutil.Relative(n.UpdatedAt.Time, bullet.Now().Time)
	if n.IsFavorite {
		meta += "  " + glyph.Favorite.String() + " favorite"
	}
	if n.IsReadOnly {
		meta += "  " + glyph.ReadOnly.String() + " read-only"
	}
	return meta
}

// rowLabel formats one outline row for a plain-text table: indent, marker,
// text, then the favorite and read-only marks.
func rowLabel(r outline.Row) string {
	marker := glyph.For(r.Bullet.HasChildren(), r.Bullet.IsCollapsed)
	line := fmt.Sprintf("%s%s %s", strings.Repeat("  ", r.Depth), marker, r.Bullet.DisplayText())
	if r.Bullet.IsFavorite {
		line += " " + glyph.Favorite.String()
	}
	if r.Bullet.IsReadOnly {
		line += " " + glyph.ReadOnly.String()
	}
	return line
}

func keyUI() *tui.Box {
	markers := make([]tui.Widget, 0)
	syntax := make([]tui.Widget, 0)

	markers = append(markers, tui.NewLabel("Markers"))
	syntax = append(syntax, tui.NewLabel("Syntax"))

	for _, v := range glyph.DefaultGlyphs() {
		label := tui.NewLabel(fmt.Sprintf("%s  %s", v.Symbol, v.Meaning))
		if v.Syntax {
			syntax = append(syntax, label)
		} else {
			markers = append(markers, label)
		}
	}
	markers = append(markers, tui.NewLabel(""))
	syntax = append(syntax, tui.NewSpacer())

	return tui.NewVBox(append(markers, syntax...)...)
}

package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/glyph"
	"github.com/outlinehq/hoist/pkg/outline"
	"github.com/outlinehq/hoist/pkg/search"
	"github.com/outlinehq/hoist/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("b1946ac9-2a4e-4fab-9b0d-57d0e0f3a010  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" bullet")
	default:
		_, _ = c.Println(" bullets")
	}
}

// Crumbs prints the zoom breadcrumb path above a page.
func (pp *PrettyPrint) Crumbs(crumbs ...*bullet.Bullet) {
	if len(crumbs) == 0 {
		return
	}
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = c.Print(spacing)
	}
	labels := make([]string, 0, len(crumbs))
	for _, b := range crumbs {
		labels = append(labels, bullet.DisplayText(b.Text))
	}
	_, _ = c.Println(strings.Join(labels, " ▸ "))
}

// Outline prints visible rows as an indented tree: fold marker, text, then a
// star or lock when the bullet carries those flags.
func (pp *PrettyPrint) Outline(rows ...outline.Row) {
	if len(rows) == 0 {
		pp.none()
		return
	}

	t := color.New()
	u := color.New(color.Faint, color.Italic)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	fav := color.New(color.FgHiYellow)
	lock := color.New(color.Faint)

	for _, r := range rows {
		if pp.ShowID {
			_, _ = y.Print(r.Bullet.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(r.Bullet.ID)))
		}
		indent := strings.Repeat("  ", r.Depth)
		marker := glyph.For(r.Bullet.HasChildren(), r.Bullet.IsCollapsed)
		_, _ = t.Printf("%s%s ", indent, marker)
		if r.Bullet.Text == "" {
			_, _ = u.Print(bullet.DisplayText(""))
		} else {
			_, _ = t.Print(r.Bullet.Text)
		}
		if r.Bullet.IsFavorite {
			_, _ = fav.Printf(" %s", glyph.Favorite)
		}
		if r.Bullet.IsReadOnly {
			_, _ = lock.Printf(" %s", glyph.ReadOnly)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Results prints quick-find hits as a table: text, ancestor path, and how
// long ago each hit was edited.
func (pp *PrettyPrint) Results(now time.Time, hits ...search.FlatBullet) {
	if len(hits) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(glyph.Bold("ID"), glyph.Bold("Bullet"), glyph.Bold("Path"), glyph.Bold("Edited"))
	} else {
		tbl.AddRow(glyph.Bold("Bullet"), glyph.Bold("Path"), glyph.Bold("Edited"))
	}
	for _, h := range hits {
		edited := timeutil.Relative(h.UpdatedAt.Time, now)
		if pp.ShowID {
			tbl.AddRow(h.ID, bullet.DisplayText(h.Text), h.PathLabel(), edited)
		} else {
			tbl.AddRow(bullet.DisplayText(h.Text), h.PathLabel(), edited)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Recents prints the recently edited list, freshest first.
func (pp *PrettyPrint) Recents(now time.Time, entries ...bullet.RecencyEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(glyph.Bold("ID"), glyph.Bold("Bullet"), glyph.Bold("Edited"))
	} else {
		tbl.AddRow(glyph.Bold("Bullet"), glyph.Bold("Edited"))
	}
	for _, e := range entries {
		edited := timeutil.Relative(e.UpdatedAt.Time, now)
		if pp.ShowID {
			tbl.AddRow(e.ID, bullet.DisplayText(e.Text), edited)
		} else {
			tbl.AddRow(bullet.DisplayText(e.Text), edited)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Favorites prints the starred list with its toggle-time text snapshots.
func (pp *PrettyPrint) Favorites(entries ...bullet.FavoriteEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(glyph.Bold("ID"), glyph.Bold("Bullet"))
	} else {
		tbl.AddRow(glyph.Bold("Bullet"))
	}
	for _, e := range entries {
		if pp.ShowID {
			tbl.AddRow(e.ID, fmt.Sprintf("%s %s", glyph.Favorite, bullet.DisplayText(e.Text)))
		} else {
			tbl.AddRow(fmt.Sprintf("%s %s", glyph.Favorite, bullet.DisplayText(e.Text)))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

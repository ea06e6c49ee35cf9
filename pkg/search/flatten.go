// Package search flattens the outline into searchable records and implements
// the quick-find query language, tag and link suggestions, and the
// autocomplete trigger scanner for in-progress #tag and [[link tokens.
package search

import (
	"strings"

	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/outline"
)

// FlatBullet is one searchable record: a bullet's text plus the texts of its
// ancestors. The node's own text is not part of its path.
type FlatBullet struct {
	ID        string
	Text      string
	Path      []string
	CreatedAt bullet.Timestamp
	UpdatedAt bullet.Timestamp
}

// PathLabel renders the ancestor chain for display.
func (f FlatBullet) PathLabel() string {
	return strings.Join(f.Path, " / ")
}

// Flatten walks the whole forest depth-first and emits a record per bullet.
// Empty ancestor texts appear as "Untitled" in paths.
func Flatten(f outline.Forest) []FlatBullet {
	var records []FlatBullet
	var path []string
	var walk func(siblings []*bullet.Bullet)
	walk = func(siblings []*bullet.Bullet) {
		for _, n := range siblings {
			rec := FlatBullet{
				ID:        n.ID,
				Text:      n.Text,
				Path:      append([]string(nil), path...),
				CreatedAt: n.CreatedAt,
				UpdatedAt: n.UpdatedAt,
			}
			records = append(records, rec)
			path = append(path, bullet.DisplayText(n.Text))
			walk(n.Children)
			path = path[:len(path)-1]
		}
	}
	walk(f)
	return records
}

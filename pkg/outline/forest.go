// Package outline implements the outline tree engine: pure copy-on-write
// transforms over an ordered forest of bullets, the fold-aware visible
// sequence, and breadcrumb resolution for zooming.
//
// Every transform takes a forest and returns a new one. Subtrees off the path
// from a root to the edited node are shared by reference with the input, so
// callers can use identity comparison to decide what changed. A transform
// that cannot find its target returns the input forest itself.
package outline

import (
	"strings"

	"github.com/outlinehq/hoist/pkg/bullet"
)

// Forest is the ordered sequence of root bullets. Order is display order.
type Forest []*bullet.Bullet

// Location describes where a bullet sits: the node, its parent (nil for
// roots), the sibling slice containing it, and its index there.
type Location struct {
	Node     *bullet.Bullet
	Parent   *bullet.Bullet
	Siblings []*bullet.Bullet
	Index    int
}

// Locate finds id anywhere in the forest.
func Locate(f Forest, id string) (Location, bool) {
	return locateIn(f, nil, id)
}

func locateIn(siblings []*bullet.Bullet, parent *bullet.Bullet, id string) (Location, bool) {
	for i, n := range siblings {
		if n.ID == id {
			return Location{Node: n, Parent: parent, Siblings: siblings, Index: i}, true
		}
		if loc, ok := locateIn(n.Children, n, id); ok {
			return loc, ok
		}
	}
	return Location{}, false
}

// PathTo returns the chain of nodes from a forest root down to id, inclusive.
func PathTo(f Forest, id string) []*bullet.Bullet {
	var path []*bullet.Bullet
	var walk func(siblings []*bullet.Bullet) bool
	walk = func(siblings []*bullet.Bullet) bool {
		for _, n := range siblings {
			path = append(path, n)
			if n.ID == id || walk(n.Children) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}
	if !walk(f) {
		return nil
	}
	return path
}

// FindByText returns the first bullet whose text matches exactly, falling
// back to the first case-insensitive match. Pre-order over the whole forest.
func FindByText(f Forest, text string) *bullet.Bullet {
	if exact := findText(f, text, false); exact != nil {
		return exact
	}
	return findText(f, text, true)
}

func findText(siblings []*bullet.Bullet, text string, fold bool) *bullet.Bullet {
	for _, n := range siblings {
		if n.Text == text || (fold && strings.EqualFold(n.Text, text)) {
			return n
		}
		if hit := findText(n.Children, text, fold); hit != nil {
			return hit
		}
	}
	return nil
}

// SubtreeIDs lists every id in the subtree rooted at n, pre-order.
func SubtreeIDs(n *bullet.Bullet) []string {
	ids := []string{n.ID}
	for _, c := range n.Children {
		ids = append(ids, SubtreeIDs(c)...)
	}
	return ids
}

// IDs lists every id in the forest, pre-order.
func IDs(f Forest) []string {
	var ids []string
	for _, n := range f {
		ids = append(ids, SubtreeIDs(n)...)
	}
	return ids
}

// Count returns the number of bullets in the forest.
func Count(f Forest) int {
	return len(IDs(f))
}

// editSiblings rewrites the sibling window containing id. The edit callback
// receives the sibling slice and the index of id and returns the replacement
// slice plus whether anything changed. Ancestor nodes along the way are
// cloned; everything else is shared with the input. The second return is
// false both when id is absent and when the edit declined to change anything,
// and in that case the returned slice is the input slice.
func editSiblings(siblings []*bullet.Bullet, id string, edit func(sibs []*bullet.Bullet, i int) ([]*bullet.Bullet, bool)) ([]*bullet.Bullet, bool) {
	for i, n := range siblings {
		if n.ID == id {
			return edit(siblings, i)
		}
	}
	for i, n := range siblings {
		kids, changed := editSiblings(n.Children, id, edit)
		if !changed {
			continue
		}
		out := make([]*bullet.Bullet, len(siblings))
		copy(out, siblings)
		c := n.Clone()
		c.Children = kids
		out[i] = c
		return out, true
	}
	return siblings, false
}

// editNode rewrites a single node in place in its sibling list.
func editNode(siblings []*bullet.Bullet, id string, edit func(n *bullet.Bullet) (*bullet.Bullet, bool)) ([]*bullet.Bullet, bool) {
	return editSiblings(siblings, id, func(sibs []*bullet.Bullet, i int) ([]*bullet.Bullet, bool) {
		next, changed := edit(sibs[i])
		if !changed {
			return sibs, false
		}
		out := make([]*bullet.Bullet, len(sibs))
		copy(out, sibs)
		out[i] = next
		return out, true
	})
}

func insertAt(sibs []*bullet.Bullet, i int, n *bullet.Bullet) []*bullet.Bullet {
	out := make([]*bullet.Bullet, 0, len(sibs)+1)
	out = append(out, sibs[:i]...)
	out = append(out, n)
	out = append(out, sibs[i:]...)
	return out
}

func removeAt(sibs []*bullet.Bullet, i int) []*bullet.Bullet {
	out := make([]*bullet.Bullet, 0, len(sibs)-1)
	out = append(out, sibs[:i]...)
	out = append(out, sibs[i+1:]...)
	return out
}

package outline

import (
	"github.com/outlinehq/hoist/pkg/bullet"
)

// AddSibling inserts n immediately after id among id's siblings.
func AddSibling(f Forest, id string, n *bullet.Bullet) (Forest, bool) {
	out, changed := editSiblings(f, id, func(sibs []*bullet.Bullet, i int) ([]*bullet.Bullet, bool) {
		return insertAt(sibs, i+1, n), true
	})
	return out, changed
}

// InsertChild places n under parentID at index at (clamped; at < 0 appends).
// When bump is set the parent's updatedAt is refreshed to now, which zooming
// into a leaf requires when it auto-creates the first child.
func InsertChild(f Forest, parentID string, n *bullet.Bullet, at int, bump bool, now bullet.Timestamp) (Forest, bool) {
	out, changed := editNode(f, parentID, func(p *bullet.Bullet) (*bullet.Bullet, bool) {
		c := p.Clone()
		idx := at
		if idx < 0 || idx > len(c.Children) {
			idx = len(c.Children)
		}
		c.Children = insertAt(c.Children, idx, n)
		if bump {
			c.UpdatedAt = now
		}
		return c, true
	})
	return out, changed
}

// Remove deletes id and its entire subtree. The removed ids are returned so
// callers can prune the recents and favorites lists.
func Remove(f Forest, id string) (Forest, []string, bool) {
	var removed []string
	out, changed := editSiblings(f, id, func(sibs []*bullet.Bullet, i int) ([]*bullet.Bullet, bool) {
		removed = SubtreeIDs(sibs[i])
		return removeAt(sibs, i), true
	})
	return out, removed, changed
}

// Indent makes id the last child of its previous sibling. The previous
// sibling is unfolded so the moved node stays visible. No-op for a first
// sibling.
func Indent(f Forest, id string, now bullet.Timestamp) (Forest, bool) {
	out, changed := editSiblings(f, id, func(sibs []*bullet.Bullet, i int) ([]*bullet.Bullet, bool) {
		if i == 0 {
			return sibs, false
		}
		moved := sibs[i].Clone()
		moved.UpdatedAt = now
		prev := sibs[i-1].Clone()
		prev.Children = append(prev.Children, moved)
		prev.IsCollapsed = false
		out := make([]*bullet.Bullet, 0, len(sibs)-1)
		out = append(out, sibs[:i-1]...)
		out = append(out, prev)
		out = append(out, sibs[i+1:]...)
		return out, true
	})
	return out, changed
}

// Outdent removes id from its parent and reinserts it immediately after that
// parent at the grandparent level. No-op for root-level nodes.
func Outdent(f Forest, id string, now bullet.Timestamp) (Forest, bool) {
	var walk func(sibs []*bullet.Bullet) ([]*bullet.Bullet, bool)
	walk = func(sibs []*bullet.Bullet) ([]*bullet.Bullet, bool) {
		for i, n := range sibs {
			for j, c := range n.Children {
				if c.ID != id {
					continue
				}
				parent := n.Clone()
				parent.Children = removeAt(parent.Children, j)
				moved := c.Clone()
				moved.UpdatedAt = now
				out := make([]*bullet.Bullet, len(sibs))
				copy(out, sibs)
				out[i] = parent
				return insertAt(out, i+1, moved), true
			}
			kids, changed := walk(n.Children)
			if !changed {
				continue
			}
			out := make([]*bullet.Bullet, len(sibs))
			copy(out, sibs)
			c := n.Clone()
			c.Children = kids
			out[i] = c
			return out, true
		}
		return sibs, false
	}
	out, changed := walk(f)
	return out, changed
}

// Move swaps id with its adjacent sibling in the given direction (-1 up,
// +1 down). No wraparound; at a boundary nothing moves.
func Move(f Forest, id string, dir int, now bullet.Timestamp) (Forest, bool) {
	out, changed := editSiblings(f, id, func(sibs []*bullet.Bullet, i int) ([]*bullet.Bullet, bool) {
		j := i + dir
		if j < 0 || j >= len(sibs) {
			return sibs, false
		}
		moved := sibs[i].Clone()
		moved.UpdatedAt = now
		out := make([]*bullet.Bullet, len(sibs))
		copy(out, sibs)
		out[i] = sibs[j]
		out[j] = moved
		return out, true
	})
	return out, changed
}

// MergeResult reports where the text boundary landed after a merge so the
// caller can place the cursor there.
type MergeResult struct {
	PrevID string
	Cursor int
}

// Merge folds id into its previous sibling: the sibling's text becomes the
// plain concatenation prevText+thisText with nothing inserted between, id's
// children are appended after the sibling's own, and id is removed.
func Merge(f Forest, id string, now bullet.Timestamp) (Forest, MergeResult, bool) {
	var res MergeResult
	out, changed := editSiblings(f, id, func(sibs []*bullet.Bullet, i int) ([]*bullet.Bullet, bool) {
		if i == 0 {
			return sibs, false
		}
		node := sibs[i]
		prev := sibs[i-1].Clone()
		res = MergeResult{PrevID: prev.ID, Cursor: len(prev.Text)}
		prev.Text = prev.Text + node.Text
		prev.Children = append(prev.Children, node.Children...)
		prev.UpdatedAt = now
		out := make([]*bullet.Bullet, 0, len(sibs)-1)
		out = append(out, sibs[:i-1]...)
		out = append(out, prev)
		out = append(out, sibs[i+1:]...)
		return out, true
	})
	return out, res, changed
}

// Fold sets isCollapsed on id; with recursive set, the same value is applied
// to every descendant that has children. Fold state is view-only and never
// touches updatedAt.
func Fold(f Forest, id string, collapse, recursive bool) (Forest, bool) {
	out, changed := editNode(f, id, func(n *bullet.Bullet) (*bullet.Bullet, bool) {
		if recursive {
			return setFoldDeep(n, collapse)
		}
		if n.IsCollapsed == collapse {
			return n, false
		}
		c := n.Clone()
		c.IsCollapsed = collapse
		return c, true
	})
	return out, changed
}

func setFoldDeep(n *bullet.Bullet, collapse bool) (*bullet.Bullet, bool) {
	changed := false
	kids := n.Children
	for i, c := range n.Children {
		if !c.HasChildren() {
			continue
		}
		next, kidChanged := setFoldDeep(c, collapse)
		if !kidChanged {
			continue
		}
		if !changed {
			kids = make([]*bullet.Bullet, len(n.Children))
			copy(kids, n.Children)
			changed = true
		}
		kids[i] = next
	}
	if !changed && n.IsCollapsed == collapse {
		return n, false
	}
	c := n.Clone()
	c.Children = kids
	c.IsCollapsed = collapse
	return c, true
}

// UnfoldPath clears isCollapsed along the root-to-id chain including id
// itself, making id (and its children) reachable in the visible sequence.
func UnfoldPath(f Forest, id string) (Forest, bool) {
	path := PathTo(f, id)
	if path == nil {
		return f, false
	}
	out := f
	any := false
	for _, n := range path {
		next, changed := Fold(out, n.ID, false, false)
		if changed {
			out = next
			any = true
		}
	}
	return out, any
}

// FieldUpdate is a partial bullet update; nil fields are left alone.
type FieldUpdate struct {
	Text        *string
	IsCollapsed *bool
	IsReadOnly  *bool
	IsFavorite  *bool
}

// UpdateFields shallow-merges u into id. updatedAt is bumped when a content
// field (text, favorite, read-only) actually changes; a fold-only update
// leaves it alone. Setting a field to its current value is not a change, and
// an update that changes nothing returns the input forest.
func UpdateFields(f Forest, id string, u FieldUpdate, now bullet.Timestamp) (Forest, bool) {
	out, changed := editNode(f, id, func(n *bullet.Bullet) (*bullet.Bullet, bool) {
		textChanged := u.Text != nil && *u.Text != n.Text
		foldChanged := u.IsCollapsed != nil && *u.IsCollapsed != n.IsCollapsed
		roChanged := u.IsReadOnly != nil && *u.IsReadOnly != n.IsReadOnly
		favChanged := u.IsFavorite != nil && *u.IsFavorite != n.IsFavorite
		if !textChanged && !foldChanged && !roChanged && !favChanged {
			return n, false
		}
		c := n.Clone()
		if textChanged {
			c.Text = *u.Text
		}
		if foldChanged {
			c.IsCollapsed = *u.IsCollapsed
		}
		if roChanged {
			c.IsReadOnly = *u.IsReadOnly
		}
		if favChanged {
			c.IsFavorite = *u.IsFavorite
		}
		if textChanged || roChanged || favChanged {
			c.UpdatedAt = now
		}
		return c, true
	})
	return out, changed
}

package app

import (
	"fmt"

	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/outline"
	"github.com/outlinehq/hoist/pkg/store"
)

// AddSiblingAfter inserts a new empty bullet immediately after id and moves
// focus into it at the start, edit mode. Without a usable target the bullet
// still lands somewhere sensible: an empty forest gains its first root, the
// zoom root gains a first child, and no focus at all appends to the end of
// the page. Returns the new bullet's id, or "" when nothing was inserted.
func (s *Session) AddSiblingAfter(id string) string {
	n := s.newBullet("")

	var f outline.Forest
	changed := false
	switch {
	case len(s.forest) == 0:
		f, changed = outline.Forest{n}, true
	case id == s.zoomedID && s.zoomedID != "":
		f, changed = outline.InsertChild(s.forest, s.zoomedID, n, 0, false, s.timestamp())
	case id == "" && s.zoomedID != "":
		f, changed = outline.InsertChild(s.forest, s.zoomedID, n, -1, false, s.timestamp())
	case id == "":
		f = make(outline.Forest, 0, len(s.forest)+1)
		f = append(f, s.forest...)
		f = append(f, n)
		changed = true
	default:
		f, changed = outline.AddSibling(s.forest, id, n)
	}
	if !changed {
		return ""
	}

	s.queueFocus(n.ID, Start(), ModeEdit)
	s.commit(f)
	return n.ID
}

// Append adds a bullet with the given text under parentID, at the end of its
// children, or at the end of the forest when parentID is empty. Unlike the
// editor gestures it never touches focus; the command line uses it for
// one-shot adds. Returns the new bullet's id.
func (s *Session) Append(text, parentID string) (string, error) {
	n := s.newBullet(text)

	var f outline.Forest
	if parentID == "" {
		f = make(outline.Forest, 0, len(s.forest)+1)
		f = append(f, s.forest...)
		f = append(f, n)
	} else {
		var changed bool
		f, changed = outline.InsertChild(s.forest, parentID, n, -1, false, s.timestamp())
		if !changed {
			return "", fmt.Errorf("app: add: parent bullet %q not found", parentID)
		}
	}

	if text != "" {
		s.touchRecency(n)
	}
	s.commit(f)
	return n.ID, nil
}

// Delete removes id and its entire subtree. Focus lands on the previous
// visible row, else the first survivor after the subtree, else nothing; after
// says which mode the surviving row takes. Deleted ids leave the recents and
// favorites lists, and a zoom target inside the removed subtree falls back to
// its nearest surviving ancestor. Read-only bullets cannot be deleted.
func (s *Session) Delete(id string, after Mode) {
	loc, ok := outline.Locate(s.forest, id)
	if !ok || loc.Node.IsReadOnly {
		return
	}

	doomed := make(map[string]bool)
	for _, did := range outline.SubtreeIDs(loc.Node) {
		doomed[did] = true
	}

	seq := s.VisibleSequence()
	at := -1
	for i, sid := range seq {
		if sid == id {
			at = i
			break
		}
	}
	target := ""
	if at > 0 {
		target = seq[at-1]
	} else if at == 0 {
		for _, sid := range seq[1:] {
			if !doomed[sid] {
				target = sid
				break
			}
		}
	}

	newZoom := s.zoomedID
	if s.zoomedID != "" && doomed[s.zoomedID] {
		newZoom = ""
		for _, anc := range outline.PathTo(s.forest, s.zoomedID) {
			if doomed[anc.ID] {
				break
			}
			newZoom = anc.ID
		}
	}

	f, removed, changed := outline.Remove(s.forest, id)
	if !changed {
		return
	}

	s.zoomedID = newZoom
	s.pruneLists(removed)
	if at >= 0 {
		if target != "" {
			s.queueFocus(target, End(), after)
		} else {
			s.queue(func(s *Session) { s.Blur() })
		}
	} else if doomed[s.focus.ID] {
		s.queue(func(s *Session) { s.Blur() })
	}
	s.commit(f)
}

// Indent tucks id under its previous sibling, which is unfolded so the moved
// bullet stays on screen. First siblings have nowhere to go.
func (s *Session) Indent(id string) {
	f, changed := outline.Indent(s.forest, id, s.timestamp())
	if !changed {
		return
	}
	s.commit(f)
}

// Outdent lifts id out one level, placing it right after its old parent.
// Bullets already at the top of the page stay put: roots have no parent, and
// a zoomed page's top rows must not escape the zoom root.
func (s *Session) Outdent(id string) {
	if s.zoomedID != "" {
		if loc, ok := outline.Locate(s.forest, id); ok && loc.Parent != nil && loc.Parent.ID == s.zoomedID {
			return
		}
	}
	f, changed := outline.Outdent(s.forest, id, s.timestamp())
	if !changed {
		return
	}
	s.commit(f)
}

// MoveUp swaps id with the sibling above it; no wraparound.
func (s *Session) MoveUp(id string) { s.move(id, -1) }

// MoveDown swaps id with the sibling below it; no wraparound.
func (s *Session) MoveDown(id string) { s.move(id, +1) }

func (s *Session) move(id string, dir int) {
	f, changed := outline.Move(s.forest, id, dir, s.timestamp())
	if !changed {
		return
	}
	s.commit(f)
}

// Merge folds id into its previous sibling: the sibling's text becomes the
// exact concatenation of the two texts, id's children move to the end of the
// sibling's, and the cursor lands on the seam in edit mode. Blocked when
// either bullet is read-only.
func (s *Session) Merge(id string) {
	if id == s.zoomedID {
		return
	}
	loc, ok := outline.Locate(s.forest, id)
	if !ok || loc.Index == 0 {
		return
	}
	if loc.Node.IsReadOnly || loc.Siblings[loc.Index-1].IsReadOnly {
		return
	}

	f, res, changed := outline.Merge(s.forest, id, s.timestamp())
	if !changed {
		return
	}
	if prev, ok := outline.Locate(f, res.PrevID); ok {
		s.touchRecency(prev.Node)
	}
	s.pruneLists([]string{id})
	s.queueFocus(res.PrevID, At(res.Cursor), ModeEdit)
	s.commit(f)
}

// UpdateText replaces id's text, refreshing updatedAt and upserting the
// recency entry. Read-only bullets reject text edits.
func (s *Session) UpdateText(id, text string) {
	loc, ok := outline.Locate(s.forest, id)
	if !ok || loc.Node.IsReadOnly {
		return
	}
	f, changed := outline.UpdateFields(s.forest, id, outline.FieldUpdate{Text: &text}, s.timestamp())
	if !changed {
		return
	}
	if nl, ok := outline.Locate(f, id); ok {
		s.touchRecency(nl.Node)
	}
	s.commit(f)
}

// Fold sets the collapse flag on id; with recursive, the same value sweeps
// every descendant that has children. Fold state persists but never counts as
// a content change.
func (s *Session) Fold(id string, collapse, recursive bool) {
	f, changed := outline.Fold(s.forest, id, collapse, recursive)
	if !changed {
		return
	}
	s.commit(f)
}

// ToggleFold flips the focused row's collapse state.
func (s *Session) ToggleFold(id string) {
	loc, ok := outline.Locate(s.forest, id)
	if !ok || !loc.Node.HasChildren() {
		return
	}
	s.Fold(id, !loc.Node.IsCollapsed, false)
}

// ToggleFavorite flips id's favorite flag and inserts or removes its sidebar
// entry. The entry snapshots the text at toggle time and is not refreshed by
// later edits; deletion still prunes it.
func (s *Session) ToggleFavorite(id string) {
	loc, ok := outline.Locate(s.forest, id)
	if !ok {
		return
	}
	fav := !loc.Node.IsFavorite
	f, changed := outline.UpdateFields(s.forest, id, outline.FieldUpdate{IsFavorite: &fav}, s.timestamp())
	if !changed {
		return
	}

	if fav {
		s.favorites = append(s.favorites, bullet.FavoriteEntry{ID: id, Text: loc.Node.Text})
	} else {
		kept := s.favorites[:0:0]
		for _, e := range s.favorites {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		s.favorites = kept
	}
	s.markDirty(store.KeyFavorites)
	s.commit(f)
}

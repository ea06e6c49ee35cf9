package app

import (
	"github.com/outlinehq/hoist/pkg/outline"
)

// Zoom hoists id as the temporary display root. The shapes:
//
//   - id "": zoom all the way out; the former zoom target (visible again)
//     takes focus, or the first root row when nothing was zoomed.
//   - id on the breadcrumb path: zoom out to that ancestor; the node being
//     zoomed out from takes focus.
//   - id a writable leaf: an empty first child is created (bumping id's
//     updatedAt), id unfolds, and the child takes focus in edit mode, so
//     zooming into an empty bullet starts writing its first note.
//   - id with children: its children become the page and the first visible
//     row takes focus.
//
// An id that no longer exists is a silent no-op.
func (s *Session) Zoom(id string) {
	if id == "" {
		former := s.zoomedID
		s.zoomedID = ""
		if former != "" {
			if _, ok := outline.Locate(s.forest, former); ok {
				s.revealAncestors(former)
				s.SetFocus(former, End(), ModeView)
				return
			}
		}
		if seq := outline.VisibleSequence(s.forest, ""); len(seq) > 0 {
			s.SetFocus(seq[0], End(), ModeView)
		}
		return
	}

	if s.zoomedID != "" && s.onBreadcrumbPath(id) {
		from := s.zoomedID
		s.zoomedID = id
		s.revealAncestors(from)
		s.SetFocus(from, End(), ModeView)
		return
	}

	loc, ok := outline.Locate(s.forest, id)
	if !ok {
		return
	}

	if !loc.Node.HasChildren() && !loc.Node.IsReadOnly {
		child := s.newBullet("")
		f, changed := outline.InsertChild(s.forest, id, child, -1, true, s.timestamp())
		if !changed {
			return
		}
		if unfolded, c := outline.Fold(f, id, false, false); c {
			f = unfolded
		}
		s.zoomedID = id
		s.queueFocus(child.ID, Start(), ModeEdit)
		s.commit(f)
		return
	}

	s.zoomedID = id
	if seq := outline.VisibleSequence(s.forest, id); len(seq) > 0 {
		s.SetFocus(seq[0], End(), ModeView)
	} else {
		s.Blur()
	}
}

// ZoomOut climbs one breadcrumb level; at the top it returns to the true
// root.
func (s *Session) ZoomOut() {
	if s.zoomedID == "" {
		return
	}
	path := outline.PathTo(s.forest, s.zoomedID)
	if len(path) < 2 {
		s.Zoom("")
		return
	}
	s.Zoom(path[len(path)-2].ID)
}

// Home zooms all the way out, folds every top-level bullet shut, and focuses
// the first one: the overview gesture.
func (s *Session) Home() {
	s.zoomedID = ""

	f := s.forest
	any := false
	for _, root := range s.forest {
		if !root.HasChildren() {
			continue
		}
		next, changed := outline.Fold(f, root.ID, true, false)
		if changed {
			f = next
			any = true
		}
	}
	if any {
		s.commit(f)
	}
	if len(s.forest) > 0 {
		s.SetFocus(s.forest[0].ID, End(), ModeView)
	}
}

// NavigateTo jumps to a bullet anywhere in the outline: the target unfolds,
// the zoom moves to its parent (root for top-level bullets), and the target
// takes focus. Links, quick-find, and the sidebar all land through here.
func (s *Session) NavigateTo(id string) {
	loc, ok := outline.Locate(s.forest, id)
	if !ok {
		return
	}
	if f, changed := outline.Fold(s.forest, id, false, false); changed {
		s.commit(f)
	}
	if loc.Parent != nil {
		s.zoomedID = loc.Parent.ID
	} else {
		s.zoomedID = ""
	}
	s.SetFocus(id, End(), ModeView)
}

// ResolveLink follows a [[link]]: an exact text match anywhere in the tree
// wins, else the first case-insensitive match. Reports false when nothing
// matched so the caller can fall back to a pre-filled search.
func (s *Session) ResolveLink(text string) bool {
	hit := outline.FindByText(s.forest, text)
	if hit == nil {
		return false
	}
	s.NavigateTo(hit.ID)
	return true
}

func (s *Session) onBreadcrumbPath(id string) bool {
	path := outline.PathTo(s.forest, s.zoomedID)
	if len(path) < 2 {
		return false
	}
	for _, n := range path[:len(path)-1] {
		if n.ID == id {
			return true
		}
	}
	return false
}

// revealAncestors unfolds the strict ancestors of id so it can appear in the
// visible sequence after a zoom change.
func (s *Session) revealAncestors(id string) {
	path := outline.PathTo(s.forest, id)
	if len(path) < 2 {
		return
	}
	f := s.forest
	any := false
	for _, n := range path[:len(path)-1] {
		next, changed := outline.Fold(f, n.ID, false, false)
		if changed {
			f = next
			any = true
		}
	}
	if any {
		s.commit(f)
	}
}

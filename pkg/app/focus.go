package app

import (
	"github.com/outlinehq/hoist/pkg/outline"
	"github.com/outlinehq/hoist/pkg/store"
)

// Mode says whether the focused bullet is being looked at or typed into.
type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "view"
}

// Position addresses a cursor location inside a bullet's text: the start, the
// end, or an explicit character offset.
type Position struct {
	kind   positionKind
	offset int
}

type positionKind int

const (
	posStart positionKind = iota
	posEnd
	posAt
)

func Start() Position { return Position{kind: posStart} }

func End() Position { return Position{kind: posEnd} }

func At(offset int) Position { return Position{kind: posAt, offset: offset} }

// Offset resolves the position against the text it addresses, clamped to the
// text bounds.
func (p Position) Offset(text string) int {
	switch p.kind {
	case posStart:
		return 0
	case posEnd:
		return len(text)
	default:
		if p.offset < 0 {
			return 0
		}
		if p.offset > len(text) {
			return len(text)
		}
		return p.offset
	}
}

// FocusState names the focused bullet, the cursor position, and the mode. A
// zero ID means nothing is focused; the position only matters in edit mode.
type FocusState struct {
	ID   string
	Pos  Position
	Mode Mode
}

// SetFocus is the single entry point for focus transitions. Entering edit
// mode while leaving a different previously-focused bullet reclaims that
// bullet when it is blank: empty text, no children, not read-only. A
// reclaimed bullet also leaves the recents and favorites lists, so blank
// scratch bullets never litter the outline.
func (s *Session) SetFocus(id string, pos Position, mode Mode) {
	prev := s.focus.ID
	s.focus = FocusState{ID: id, Pos: pos, Mode: mode}
	if mode == ModeEdit && prev != "" && prev != id {
		s.reclaimBlank(prev)
	}
}

// Blur clears the focus without triggering reclaim.
func (s *Session) Blur() {
	s.focus = FocusState{}
}

func (s *Session) reclaimBlank(id string) {
	if id == s.zoomedID {
		return
	}
	loc, ok := outline.Locate(s.forest, id)
	if !ok {
		return
	}
	if loc.Node.Text != "" || loc.Node.HasChildren() || loc.Node.IsReadOnly {
		return
	}
	f, removed, changed := outline.Remove(s.forest, id)
	if !changed {
		return
	}
	s.forest = f
	s.markDirty(store.KeyBullets)
	s.pruneLists(removed)
}

// MoveFocusBy walks the visible sequence by delta rows in view mode, clamped
// at the ends. With nothing focused the first row takes focus.
func (s *Session) MoveFocusBy(delta int) {
	next := outline.MoveFocus(s.VisibleSequence(), s.focus.ID, delta)
	if next == "" {
		return
	}
	s.SetFocus(next, End(), ModeView)
}

// CollapseOrFocusParent is the view-mode ArrowLeft gesture: an expanded row
// with children folds shut, any other row climbs to its parent when the
// parent is on the page.
func (s *Session) CollapseOrFocusParent() {
	loc, ok := outline.Locate(s.forest, s.focus.ID)
	if !ok {
		return
	}
	if loc.Node.HasChildren() && !loc.Node.IsCollapsed {
		s.Fold(loc.Node.ID, true, false)
		return
	}
	if loc.Parent != nil && loc.Parent.ID != s.zoomedID {
		s.SetFocus(loc.Parent.ID, End(), ModeView)
	}
}

// ExpandOrFocusChild is the view-mode ArrowRight gesture: a collapsed row
// with children unfolds, an expanded one descends to its first child.
func (s *Session) ExpandOrFocusChild() {
	loc, ok := outline.Locate(s.forest, s.focus.ID)
	if !ok {
		return
	}
	if !loc.Node.HasChildren() {
		return
	}
	if loc.Node.IsCollapsed {
		s.Fold(loc.Node.ID, false, false)
		return
	}
	s.SetFocus(loc.Node.Children[0].ID, End(), ModeView)
}

// Package bullet defines the outline data model: the Bullet tree node, its
// persistence-facing core projection, and the auxiliary list entries kept for
// recents and favorites.
package bullet

import (
	"github.com/google/uuid"
)

// Bullet is a node in the outline tree. Children are owned exclusively by
// their parent; a node never appears in two places and ids are unique across
// the whole forest.
type Bullet struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Children    []*Bullet `json:"children,omitempty"`
	IsCollapsed bool      `json:"isCollapsed,omitempty"`
	IsReadOnly  bool      `json:"isReadOnly,omitempty"`
	IsFavorite  bool      `json:"isFavorite,omitempty"`
	OriginalID  string    `json:"originalId,omitempty"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

// NewID returns a fresh globally unique bullet id.
func NewID() string {
	return uuid.NewString()
}

// New creates a bullet with the given text and fresh id and timestamps.
func New(text string) *Bullet {
	now := Now()
	return &Bullet{
		ID:        NewID(),
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a shallow copy whose Children slice is freshly allocated but
// still points at the same child nodes. Mutating the copy's fields or
// appending to its Children leaves the original untouched, which is the
// building block for copy-on-write tree edits.
func (b *Bullet) Clone() *Bullet {
	c := *b
	if len(b.Children) > 0 {
		c.Children = make([]*Bullet, len(b.Children))
		copy(c.Children, b.Children)
	}
	return &c
}

// HasChildren reports whether the bullet has any children.
func (b *Bullet) HasChildren() bool {
	return len(b.Children) > 0
}

// DisplayText is the text shown for a bullet in paths, crumbs, and lists.
func DisplayText(text string) string {
	if text == "" {
		return "Untitled"
	}
	return text
}

// DisplayText is the bullet's own text in display form.
func (b *Bullet) DisplayText() string {
	return DisplayText(b.Text)
}

// CoreBullet is the projection of Bullet that excludes view-only flags
// (isCollapsed, isReadOnly). Two forests with equal core projections are
// content-equal: nothing a reader of the outline cares about differs.
type CoreBullet struct {
	ID         string       `json:"id"`
	Text       string       `json:"text"`
	Children   []CoreBullet `json:"children,omitempty"`
	IsFavorite bool         `json:"isFavorite,omitempty"`
	OriginalID string       `json:"originalId,omitempty"`
	CreatedAt  Timestamp    `json:"createdAt"`
	UpdatedAt  Timestamp    `json:"updatedAt"`
}

// Core returns the bullet's content projection, descending into children.
func (b *Bullet) Core() CoreBullet {
	core := CoreBullet{
		ID:         b.ID,
		Text:       b.Text,
		IsFavorite: b.IsFavorite,
		OriginalID: b.OriginalID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	if len(b.Children) > 0 {
		core.Children = make([]CoreBullet, len(b.Children))
		for i, c := range b.Children {
			core.Children[i] = c.Core()
		}
	}
	return core
}

// ContentEqual reports whether two forests have identical core projections,
// ignoring fold and read-only state.
func ContentEqual(a, b []*Bullet) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !coreEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func coreEqual(a, b *Bullet) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.ID != b.ID || a.Text != b.Text ||
		a.IsFavorite != b.IsFavorite || a.OriginalID != b.OriginalID {
		return false
	}
	if !a.CreatedAt.Equal(b.CreatedAt.Time) || !a.UpdatedAt.Equal(b.UpdatedAt.Time) {
		return false
	}
	return ContentEqual(a.Children, b.Children)
}

package app

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/outline"
	"github.com/outlinehq/hoist/pkg/store"
)

// ExportJSON renders the full forest, UI flags included, as indented JSON
// suitable for re-import.
func (s *Session) ExportJSON() ([]byte, error) {
	f := s.forest
	if f == nil {
		f = outline.Forest{}
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("app: export: %w", err)
	}
	return data, nil
}

// ExportFileName is the default export file name, derived from settings.
func (s *Session) ExportFileName() string {
	name := s.settings.FileName
	if name == "" {
		name = store.DefaultSettings().FileName
	}
	return name + ".json"
}

// importNode mirrors Bullet with pointer id and text so a missing key is
// distinguishable from an empty value during validation.
type importNode struct {
	ID          *string          `json:"id"`
	Text        *string          `json:"text"`
	Children    []*importNode    `json:"children"`
	IsCollapsed bool             `json:"isCollapsed"`
	IsReadOnly  bool             `json:"isReadOnly"`
	IsFavorite  bool             `json:"isFavorite"`
	CreatedAt   bullet.Timestamp `json:"createdAt"`
	UpdatedAt   bullet.Timestamp `json:"updatedAt"`
}

// ImportJSON merges a JSON bullet array into the outline. Every element,
// children included, must carry at least id and text or the whole import is
// rejected; nothing partial ever lands. Imported ids are regenerated to avoid
// collisions, keeping the old id as originalId, and missing timestamps are
// backfilled with the current time. targetID "" appends the data as new roots
// at the end of the forest; otherwise it becomes new children of that bullet.
// Returns how many bullets were imported.
func (s *Session) ImportJSON(data []byte, targetID string) (int, error) {
	var nodes []*importNode
	if err := json.Unmarshal(data, &nodes); err != nil {
		return 0, fmt.Errorf("app: import: %w", err)
	}
	if len(nodes) == 0 {
		return 0, errors.New("app: import: no bullets in file")
	}
	for _, n := range nodes {
		if err := validateImport(n); err != nil {
			return 0, err
		}
	}

	if targetID != "" {
		if _, ok := outline.Locate(s.forest, targetID); !ok {
			return 0, errors.New("app: import: target bullet not found")
		}
	}

	now := s.timestamp()
	count := 0
	converted := make([]*bullet.Bullet, 0, len(nodes))
	for _, n := range nodes {
		converted = append(converted, convertImport(n, now, &count))
	}

	var f outline.Forest
	if targetID == "" {
		f = make(outline.Forest, 0, len(s.forest)+len(converted))
		f = append(f, s.forest...)
		f = append(f, converted...)
	} else {
		f = s.forest
		for _, c := range converted {
			var changed bool
			f, changed = outline.InsertChild(f, targetID, c, -1, false, now)
			if !changed {
				return 0, errors.New("app: import: target bullet not found")
			}
		}
	}

	s.adoptFavorites(converted)
	s.commit(f)
	return count, nil
}

func validateImport(n *importNode) error {
	if n == nil || n.ID == nil || n.Text == nil {
		return errors.New("app: import: every bullet needs an id and a text")
	}
	for _, c := range n.Children {
		if err := validateImport(c); err != nil {
			return err
		}
	}
	return nil
}

func convertImport(n *importNode, now bullet.Timestamp, count *int) *bullet.Bullet {
	*count++
	b := &bullet.Bullet{
		ID:          bullet.NewID(),
		Text:        *n.Text,
		IsCollapsed: n.IsCollapsed,
		IsReadOnly:  n.IsReadOnly,
		IsFavorite:  n.IsFavorite,
		OriginalID:  *n.ID,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}
	for _, c := range n.Children {
		b.Children = append(b.Children, convertImport(c, now, count))
	}
	return b
}

// adoptFavorites lists imported favorite-flagged bullets in the favorites
// sidebar, keeping the flag and the list in step.
func (s *Session) adoptFavorites(roots []*bullet.Bullet) {
	var walk func(n *bullet.Bullet)
	walk = func(n *bullet.Bullet) {
		if n.IsFavorite {
			s.favorites = append(s.favorites, bullet.FavoriteEntry{ID: n.ID, Text: n.Text})
			s.markDirty(store.KeyFavorites)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range roots {
		walk(n)
	}
}

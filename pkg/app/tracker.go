package app

import (
	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/store"
)

// RecencyCap bounds the recents list; the oldest entries beyond it fall off.
const RecencyCap = 12

// touchRecency upserts n at the front of the recents list. An existing entry
// for the same id is evicted first so each bullet appears once.
func (s *Session) touchRecency(n *bullet.Bullet) {
	out := make([]bullet.RecencyEntry, 0, len(s.recents)+1)
	out = append(out, bullet.RecencyEntry{ID: n.ID, Text: n.Text, UpdatedAt: n.UpdatedAt})
	for _, e := range s.recents {
		if e.ID == n.ID {
			continue
		}
		out = append(out, e)
	}
	if len(out) > RecencyCap {
		out = out[:RecencyCap]
	}
	s.recents = out
	s.markDirty(store.KeyRecents)
}

// pruneLists drops the given ids from both auxiliary lists. Called whenever
// bullets leave the tree, keeping the lists referentially sound.
func (s *Session) pruneLists(ids []string) {
	if len(ids) == 0 {
		return
	}
	gone := make(map[string]bool, len(ids))
	for _, id := range ids {
		gone[id] = true
	}

	keptRecents := s.recents[:0:0]
	for _, e := range s.recents {
		if !gone[e.ID] {
			keptRecents = append(keptRecents, e)
		}
	}
	if len(keptRecents) != len(s.recents) {
		s.recents = keptRecents
		s.markDirty(store.KeyRecents)
	}

	keptFavs := s.favorites[:0:0]
	for _, e := range s.favorites {
		if !gone[e.ID] {
			keptFavs = append(keptFavs, e)
		}
	}
	if len(keptFavs) != len(s.favorites) {
		s.favorites = keptFavs
		s.markDirty(store.KeyFavorites)
	}
}

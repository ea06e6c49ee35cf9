package app

import (
	"time"

	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/outline"
)

const (
	journalRootText = "Daily Log"
	journalYearFmt  = "2006"
	journalMonthFmt = "01"
	journalDayFmt   = "2006-01-02"
)

// OpenJournal jumps to the day's entry under Daily Log / YYYY / MM /
// YYYY-MM-DD, creating whichever segments are missing, unfolding the whole
// path, zooming to the month, and focusing the day node. Calling it twice for
// the same day never duplicates a segment. Returns the day node's id.
func (s *Session) OpenJournal(day time.Time) string {
	f := s.forest
	changed := false

	root := matchRoot(f, journalRootText)
	if root == nil {
		root = s.newBullet(journalRootText)
		grown := make(outline.Forest, 0, len(f)+1)
		grown = append(grown, f...)
		f = append(grown, root)
		changed = true
	}

	year, f, c := s.ensureChild(f, root.ID, day.Format(journalYearFmt))
	changed = changed || c
	month, f, c := s.ensureChild(f, year.ID, day.Format(journalMonthFmt))
	changed = changed || c
	dayNode, f, c := s.ensureChild(f, month.ID, day.Format(journalDayFmt))
	changed = changed || c

	if unfolded, c := outline.UnfoldPath(f, dayNode.ID); c {
		f = unfolded
		changed = true
	}

	s.zoomedID = month.ID
	s.queueFocus(dayNode.ID, End(), ModeView)
	if changed {
		s.commit(f)
	} else {
		s.drainEffects()
	}
	return dayNode.ID
}

// JournalActivity counts the bullets filed under each day of the month's
// journal segment, day-indexed from the 1st. Days without an entry, or a
// month never journaled, count zero.
func JournalActivity(f outline.Forest, month time.Time) []int {
	last := time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, month.Location()).Day()
	count := make([]int, last)

	root := matchRoot(f, journalRootText)
	if root == nil {
		return count
	}
	year := childByText(root, month.Format(journalYearFmt))
	if year == nil {
		return count
	}
	mo := childByText(year, month.Format(journalMonthFmt))
	if mo == nil {
		return count
	}
	for _, d := range mo.Children {
		t, err := time.ParseInLocation(journalDayFmt, d.Text, month.Location())
		if err != nil || t.Year() != month.Year() || t.Month() != month.Month() {
			continue
		}
		count[t.Day()-1] = outline.Count(outline.Forest(d.Children))
	}
	return count
}

// ensureChild finds the child of parentID with exactly the given text, or
// appends a new one.
func (s *Session) ensureChild(f outline.Forest, parentID, text string) (*bullet.Bullet, outline.Forest, bool) {
	loc, ok := outline.Locate(f, parentID)
	if !ok {
		return nil, f, false
	}
	if c := childByText(loc.Node, text); c != nil {
		return c, f, false
	}
	n := s.newBullet(text)
	grown, changed := outline.InsertChild(f, parentID, n, -1, false, s.timestamp())
	if !changed {
		return nil, f, false
	}
	return n, grown, true
}

func childByText(n *bullet.Bullet, text string) *bullet.Bullet {
	for _, c := range n.Children {
		if c.Text == text {
			return c
		}
	}
	return nil
}

func matchRoot(f outline.Forest, text string) *bullet.Bullet {
	for _, n := range f {
		if n.Text == text {
			return n
		}
	}
	return nil
}

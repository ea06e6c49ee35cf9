package outline

import (
	"github.com/outlinehq/hoist/pkg/bullet"
)

// Row pairs a visible bullet with its rendering depth relative to the zoom
// root (0 for the nodes at the top of the page).
type Row struct {
	Bullet *bullet.Bullet
	Depth  int
}

// VisibleRows flattens the zoom-scoped forest depth-first, skipping the
// children of collapsed nodes. With a zoom root set, the page holds the
// root's children; the root itself is shown as the page title, not a row,
// and its own fold flag is ignored. An unknown zoom id yields no rows.
func VisibleRows(f Forest, zoomedID string) []Row {
	var rows []Row
	appendRows := func(siblings []*bullet.Bullet) {
		for _, n := range siblings {
			rows = appendVisible(rows, n, 0)
		}
	}
	if zoomedID == "" {
		appendRows(f)
		return rows
	}
	loc, ok := Locate(f, zoomedID)
	if !ok {
		return nil
	}
	appendRows(loc.Node.Children)
	return rows
}

func appendVisible(rows []Row, n *bullet.Bullet, depth int) []Row {
	rows = append(rows, Row{Bullet: n, Depth: depth})
	if !n.IsCollapsed {
		for _, c := range n.Children {
			rows = appendVisible(rows, c, depth+1)
		}
	}
	return rows
}

// SubtreeRows is the page form of a subtree with fold state ignored: the
// children of id at depth zero and every deeper descendant below them, or the
// whole forest when id is empty. Non-interactive output wants every node, not
// just what a collapsed screen would show.
func SubtreeRows(f Forest, id string) []Row {
	siblings := []*bullet.Bullet(f)
	if id != "" {
		loc, ok := Locate(f, id)
		if !ok {
			return nil
		}
		siblings = loc.Node.Children
	}
	var rows []Row
	for _, n := range siblings {
		rows = appendSubtree(rows, n, 0)
	}
	return rows
}

func appendSubtree(rows []Row, n *bullet.Bullet, depth int) []Row {
	rows = append(rows, Row{Bullet: n, Depth: depth})
	for _, c := range n.Children {
		rows = appendSubtree(rows, c, depth+1)
	}
	return rows
}

// VisibleSequence is the ordered id list over which linear navigation moves.
func VisibleSequence(f Forest, zoomedID string) []string {
	rows := VisibleRows(f, zoomedID)
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.Bullet.ID
	}
	return ids
}

// MoveFocus returns the neighbor of currentID in the sequence, delta steps
// away, clamped at both ends. An absent or empty currentID selects the first
// element. An empty sequence yields "".
func MoveFocus(sequence []string, currentID string, delta int) string {
	if len(sequence) == 0 {
		return ""
	}
	at := -1
	for i, id := range sequence {
		if id == currentID {
			at = i
			break
		}
	}
	if at == -1 {
		return sequence[0]
	}
	next := at + delta
	if next < 0 {
		next = 0
	}
	if next >= len(sequence) {
		next = len(sequence) - 1
	}
	return sequence[next]
}

// Breadcrumbs is the chain of nodes from a forest root to the zoom target,
// inclusive. Empty when nothing is zoomed.
func Breadcrumbs(f Forest, zoomedID string) []*bullet.Bullet {
	if zoomedID == "" {
		return nil
	}
	return PathTo(f, zoomedID)
}

package app

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/outline"
	"github.com/outlinehq/hoist/pkg/store"
)

// newTestSession starts a session over a throwaway store with an explicitly
// empty forest (no welcome seeding) and a deterministic ticking clock.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	p, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.SaveForest(outline.Forest{}); err != nil {
		t.Fatalf("save empty forest: %v", err)
	}
	s := Load(p)
	// Ticking clock ahead of the wall clock: every operation gets a strictly
	// later timestamp than any node seeded with bullet.New.
	base := time.Now().Add(time.Hour)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

func node(text string, children ...*bullet.Bullet) *bullet.Bullet {
	n := bullet.New(text)
	n.Children = children
	return n
}

func TestFirstBulletScenario(t *testing.T) {
	s := newTestSession(t)

	id := s.AddSiblingAfter("")
	if id == "" {
		t.Fatal("expected a first bullet")
	}
	if got := len(s.Forest()); got != 1 {
		t.Fatalf("expected 1 root, got %d", got)
	}
	focus := s.Focus()
	if focus.ID != id || focus.Mode != ModeEdit {
		t.Fatalf("new bullet should be focused in edit mode: %+v", focus)
	}
	if focus.Pos.Offset("") != 0 {
		t.Fatal("cursor should start at position 0")
	}

	s.UpdateText(id, "first")

	second := s.AddSiblingAfter(id)
	if second == "" {
		t.Fatal("expected a second bullet")
	}
	if got := len(s.Forest()); got != 2 {
		t.Fatalf("expected 2 roots, got %d", got)
	}
	if s.Forest()[0].ID != id || s.Forest()[1].ID != second {
		t.Fatal("second bullet should sit after the first")
	}

	s.Indent(second)
	if got := len(s.Forest()); got != 1 {
		t.Fatalf("after indent expected 1 root, got %d", got)
	}
	first := s.Forest()[0]
	if len(first.Children) != 1 || first.Children[0].ID != second {
		t.Fatal("indent should tuck the second bullet under the first")
	}

	s.Outdent(second)
	if got := len(s.Forest()); got != 2 {
		t.Fatalf("outdent should restore 2 roots, got %d", got)
	}
	if s.Forest()[0].ID != id || s.Forest()[1].ID != second {
		t.Fatal("outdent should restore the original sibling order")
	}
	if len(s.Forest()[0].Children) != 0 {
		t.Fatal("outdent should leave the first bullet childless")
	}
}

func TestEmptyLeafReclaim(t *testing.T) {
	s := newTestSession(t)

	a := s.AddSiblingAfter("")
	s.UpdateText(a, "alpha")
	b := s.AddSiblingAfter(a)
	s.UpdateText(b, "beta")

	blank := s.AddSiblingAfter(b)
	s.UpdateText(blank, "scratch")
	s.UpdateText(blank, "")

	inRecents := func(id string) bool {
		for _, e := range s.Recents() {
			if e.ID == id {
				return true
			}
		}
		return false
	}
	if !inRecents(blank) {
		t.Fatal("precondition: blank bullet should be in recents after its text edits")
	}

	// Leaving for view mode must NOT reclaim.
	s.SetFocus(b, End(), ModeView)
	if _, ok := outline.Locate(s.Forest(), blank); !ok {
		t.Fatal("view-mode focus change must not reclaim the blank bullet")
	}

	// Entering edit elsewhere reclaims the blank leaf.
	s.SetFocus(blank, End(), ModeEdit)
	s.SetFocus(b, End(), ModeEdit)
	if _, ok := outline.Locate(s.Forest(), blank); ok {
		t.Fatal("blank bullet should be reclaimed when edit focus moves away")
	}
	if inRecents(blank) {
		t.Fatal("reclaimed bullet must leave the recents list")
	}
}

func TestReclaimSkipsNonBlank(t *testing.T) {
	s := newTestSession(t)

	a := s.AddSiblingAfter("")
	s.UpdateText(a, "keep me")
	b := s.AddSiblingAfter(a)
	s.UpdateText(b, "other")

	s.SetFocus(a, End(), ModeEdit)
	s.SetFocus(b, End(), ModeEdit)
	if _, ok := outline.Locate(s.Forest(), a); !ok {
		t.Fatal("non-blank bullet must survive focus changes")
	}
}

func TestZoomRoundTrip(t *testing.T) {
	s := newTestSession(t)
	inner := node("inner child")
	x := node("x", inner)
	root := node("root", x)
	s.forest = outline.Forest{root}

	s.Zoom(x.ID)
	if s.ZoomedID() != x.ID {
		t.Fatalf("expected zoom target %s, got %s", x.ID, s.ZoomedID())
	}
	if got := s.Focus(); got.ID != inner.ID || got.Mode != ModeView {
		t.Fatalf("zooming into a parent should focus its first child: %+v", got)
	}

	s.Zoom("")
	if s.ZoomedID() != "" {
		t.Fatal("expected zoom cleared")
	}
	if got := s.Focus(); got.ID != x.ID {
		t.Fatalf("zooming out should focus the former zoom target, got %+v", got)
	}

	// Round trip via the breadcrumb ancestor.
	s.Zoom(x.ID)
	s.Zoom(root.ID)
	if s.ZoomedID() != root.ID {
		t.Fatalf("expected zoom at %s, got %s", root.ID, s.ZoomedID())
	}
	if got := s.Focus(); got.ID != x.ID {
		t.Fatalf("breadcrumb zoom-out should focus the node zoomed out from, got %+v", got)
	}
}

func TestZoomIntoLeafCreatesChild(t *testing.T) {
	s := newTestSession(t)
	leaf := node("lonely")
	s.forest = outline.Forest{node("root", leaf)}
	before := leaf.UpdatedAt

	s.Zoom(leaf.ID)

	loc, ok := outline.Locate(s.Forest(), leaf.ID)
	if !ok || len(loc.Node.Children) != 1 {
		t.Fatal("zooming into a leaf should create one empty child")
	}
	child := loc.Node.Children[0]
	if child.Text != "" {
		t.Fatalf("auto-created child should be empty, got %q", child.Text)
	}
	if !loc.Node.UpdatedAt.After(before.Time) {
		t.Fatal("auto-creating a child should bump the parent's updatedAt")
	}
	if s.ZoomedID() != leaf.ID {
		t.Fatal("zoom target should be the leaf")
	}
	if got := s.Focus(); got.ID != child.ID || got.Mode != ModeEdit || got.Pos.Offset("") != 0 {
		t.Fatalf("focus should enter the new child at start, edit mode: %+v", got)
	}
}

func TestZoomIntoReadOnlyLeaf(t *testing.T) {
	s := newTestSession(t)
	leaf := node("locked")
	leaf.IsReadOnly = true
	s.forest = outline.Forest{leaf}

	s.Zoom(leaf.ID)
	if s.ZoomedID() != leaf.ID {
		t.Fatal("read-only leaf should still be zoomable")
	}
	loc, _ := outline.Locate(s.Forest(), leaf.ID)
	if len(loc.Node.Children) != 0 {
		t.Fatal("read-only leaf must not gain an auto-created child")
	}
}

func TestZoomOutOneLevel(t *testing.T) {
	s := newTestSession(t)
	x := node("x", node("deep"))
	p := node("p", x)
	r := node("r", p)
	s.forest = outline.Forest{r}

	s.Zoom(x.ID)
	s.ZoomOut()
	if s.ZoomedID() != p.ID {
		t.Fatalf("expected zoom at p, got %s", s.ZoomedID())
	}
	if s.Focus().ID != x.ID {
		t.Fatal("zooming out one level should focus the previous zoom target")
	}
	s.ZoomOut()
	if s.ZoomedID() != r.ID {
		t.Fatalf("expected zoom at r, got %s", s.ZoomedID())
	}
	s.ZoomOut()
	if s.ZoomedID() != "" {
		t.Fatal("expected zoom cleared at the top")
	}
	if s.Focus().ID != r.ID {
		t.Fatal("final zoom-out should focus the last zoom target")
	}
	s.ZoomOut() // already at the root: no-op
	if s.ZoomedID() != "" {
		t.Fatal("zoom-out at the root should be a no-op")
	}
}

func TestDeleteFocusFallback(t *testing.T) {
	s := newTestSession(t)
	a := node("a")
	b := node("b", node("b1"))
	c := node("c")
	s.forest = outline.Forest{a, b, c}

	s.SetFocus(b.ID, End(), ModeView)
	s.Delete(b.ID, ModeView)
	if s.Focus().ID != a.ID {
		t.Fatalf("deleting should focus the previous visible row, got %+v", s.Focus())
	}
	if got := len(s.Forest()); got != 2 {
		t.Fatalf("expected 2 roots, got %d", got)
	}

	s.SetFocus(a.ID, End(), ModeView)
	s.Delete(a.ID, ModeView)
	if s.Focus().ID != c.ID {
		t.Fatalf("deleting the first row should focus the next survivor, got %+v", s.Focus())
	}

	s.Delete(c.ID, ModeView)
	if s.Focus().ID != "" {
		t.Fatalf("deleting the last row should clear focus, got %+v", s.Focus())
	}
	if len(s.Forest()) != 0 {
		t.Fatal("forest should be empty")
	}
}

func TestDeleteCascadePrunesLists(t *testing.T) {
	s := newTestSession(t)
	kid := node("kid")
	parent := node("parent", kid)
	s.forest = outline.Forest{parent, node("other")}

	s.UpdateText(kid.ID, "kid edited")
	s.ToggleFavorite(parent.ID)

	s.Delete(parent.ID, ModeView)

	seq := s.VisibleSequence()
	for _, id := range []string{parent.ID, kid.ID} {
		if _, ok := outline.Locate(s.Forest(), id); ok {
			t.Fatalf("id %s should be gone from the forest", id)
		}
		for _, vid := range seq {
			if vid == id {
				t.Fatalf("id %s should be gone from the visible sequence", id)
			}
		}
	}
	for _, e := range s.Recents() {
		if e.ID == kid.ID || e.ID == parent.ID {
			t.Fatal("deleted ids must leave the recents list")
		}
	}
	for _, e := range s.Favorites() {
		if e.ID == parent.ID {
			t.Fatal("deleted ids must leave the favorites list")
		}
	}
}

func TestDeleteUnderZoomFallsBackToAncestor(t *testing.T) {
	s := newTestSession(t)
	x := node("x", node("x1"))
	p := node("p", x)
	s.forest = outline.Forest{p}

	s.Zoom(x.ID)
	s.Delete(x.ID, ModeView)
	if s.ZoomedID() != p.ID {
		t.Fatalf("zoom should fall back to the surviving parent, got %q", s.ZoomedID())
	}
}

func TestDeleteReadOnlyRefused(t *testing.T) {
	s := newTestSession(t)
	locked := node("locked")
	locked.IsReadOnly = true
	s.forest = outline.Forest{locked}

	s.Delete(locked.ID, ModeView)
	if _, ok := outline.Locate(s.Forest(), locked.ID); !ok {
		t.Fatal("read-only bullets must not be deletable")
	}
}

func TestRecencyBound(t *testing.T) {
	s := newTestSession(t)

	last := ""
	var ids []string
	for i := 0; i < 20; i++ {
		id := s.AddSiblingAfter(last)
		s.UpdateText(id, fmt.Sprintf("bullet %02d", i))
		ids = append(ids, id)
		last = id
	}

	recents := s.Recents()
	if len(recents) != RecencyCap {
		t.Fatalf("expected %d recents, got %d", RecencyCap, len(recents))
	}
	for i, e := range recents {
		wantID := ids[len(ids)-1-i]
		if e.ID != wantID {
			t.Fatalf("recents[%d] = %s, want %s (most recent first)", i, e.ID, wantID)
		}
	}
	if recents[0].Text != "bullet 19" {
		t.Fatalf("front entry should be the last edit, got %q", recents[0].Text)
	}
}

func TestMergeFocusAndRecency(t *testing.T) {
	s := newTestSession(t)
	a := node("Hello")
	b := node(" World", node("pk"), node("qk"))
	s.forest = outline.Forest{node("top", a, b)}

	s.Merge(b.ID)

	loc, ok := outline.Locate(s.Forest(), a.ID)
	if !ok {
		t.Fatal("previous sibling should survive the merge")
	}
	if loc.Node.Text != "Hello World" {
		t.Fatalf("merge law violated: %q", loc.Node.Text)
	}
	if _, ok := outline.Locate(s.Forest(), b.ID); ok {
		t.Fatal("merged bullet should be gone")
	}

	focus := s.Focus()
	if focus.ID != a.ID || focus.Mode != ModeEdit {
		t.Fatalf("focus should land on the merged sibling in edit mode: %+v", focus)
	}
	if focus.Pos.Offset("Hello World") != len("Hello") {
		t.Fatalf("cursor should sit at the seam, got %d", focus.Pos.Offset("Hello World"))
	}
	if recents := s.Recents(); len(recents) == 0 || recents[0].ID != a.ID || recents[0].Text != "Hello World" {
		t.Fatalf("merge should upsert the surviving sibling's recency entry: %+v", recents)
	}
}

func TestJournalIdempotent(t *testing.T) {
	s := newTestSession(t)
	day := time.Date(2026, time.August, 22, 9, 30, 0, 0, time.UTC)

	first := s.OpenJournal(day)
	second := s.OpenJournal(day)
	if first == "" || first != second {
		t.Fatalf("same day should reuse the same node: %q vs %q", first, second)
	}

	f := s.Forest()
	if len(f) != 1 || f[0].Text != "Daily Log" {
		t.Fatalf("expected a single Daily Log root, got %d roots", len(f))
	}
	year := f[0].Children
	if len(year) != 1 || year[0].Text != "2026" {
		t.Fatalf("expected one 2026 segment, got %+v", year)
	}
	month := year[0].Children
	if len(month) != 1 || month[0].Text != "08" {
		t.Fatalf("expected one 08 segment, got %+v", month)
	}
	days := month[0].Children
	if len(days) != 1 || days[0].Text != "2026-08-22" {
		t.Fatalf("expected one day node, got %+v", days)
	}

	if s.ZoomedID() != month[0].ID {
		t.Fatal("journal should zoom to the month segment")
	}
	if s.Focus().ID != first {
		t.Fatal("journal should focus the day node")
	}

	// A different day in the same month only adds the day node.
	other := s.OpenJournal(day.AddDate(0, 0, 1))
	if other == first {
		t.Fatal("different days need different nodes")
	}
	loc, ok := outline.Locate(s.Forest(), month[0].ID)
	if !ok || len(loc.Node.Children) != 2 {
		t.Fatalf("expected 2 day nodes under the month segment")
	}
}

func TestImportRegeneratesIDs(t *testing.T) {
	s := newTestSession(t)
	root := s.AddSiblingAfter("")
	s.UpdateText(root, "existing")

	data := []byte(`[
		{"id": "ext-1", "text": "imported", "children": [
			{"id": "ext-2", "text": "nested", "isFavorite": true}
		]}
	]`)
	count, err := s.ImportJSON(data, "")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 imported bullets, got %d", count)
	}

	f := s.Forest()
	if len(f) != 2 {
		t.Fatalf("imported roots should append at the end, got %d roots", len(f))
	}
	imp := f[1]
	if imp.ID == "ext-1" || imp.OriginalID != "ext-1" {
		t.Fatalf("import must regenerate ids and keep provenance: id=%s orig=%s", imp.ID, imp.OriginalID)
	}
	if imp.CreatedAt.IsZero() || imp.UpdatedAt.IsZero() {
		t.Fatal("missing timestamps must be backfilled")
	}
	nested := imp.Children[0]
	if nested.ID == "ext-2" || nested.OriginalID != "ext-2" {
		t.Fatal("nested ids must be regenerated too")
	}

	found := false
	for _, e := range s.Favorites() {
		if e.ID == nested.ID && e.Text == "nested" {
			found = true
		}
	}
	if !found {
		t.Fatal("imported favorite flags should list the bullet in favorites")
	}
}

func TestImportRejectsWholeFileOnBadElement(t *testing.T) {
	s := newTestSession(t)
	root := s.AddSiblingAfter("")
	s.UpdateText(root, "existing")
	before := s.Count()

	data := []byte(`[
		{"id": "ok", "text": "fine"},
		{"id": "bad", "children": [{"id": "x", "text": "y"}]}
	]`)
	if _, err := s.ImportJSON(data, ""); err == nil {
		t.Fatal("expected a validation error")
	}
	if s.Count() != before {
		t.Fatal("a rejected import must not change the forest")
	}

	if _, err := s.ImportJSON([]byte(`not json`), ""); err == nil {
		t.Fatal("expected a parse error")
	}
	if _, err := s.ImportJSON([]byte(`[{"id":"a","text":"b"}]`), "missing-target"); err == nil {
		t.Fatal("expected a target error")
	}
}

func TestImportUnderTarget(t *testing.T) {
	s := newTestSession(t)
	target := s.AddSiblingAfter("")
	s.UpdateText(target, "target")

	count, err := s.ImportJSON([]byte(`[{"id":"a","text":"one"},{"id":"b","text":"two"}]`), target)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 imported, got %d", count)
	}
	loc, _ := outline.Locate(s.Forest(), target)
	if len(loc.Node.Children) != 2 || loc.Node.Children[0].Text != "one" || loc.Node.Children[1].Text != "two" {
		t.Fatalf("imported bullets should be children of the target in order: %+v", loc.Node.Children)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestSession(t)
	a := s.AddSiblingAfter("")
	s.UpdateText(a, "alpha #tag")
	b := s.AddSiblingAfter(a)
	s.UpdateText(b, "beta")
	s.Indent(b)
	s.Fold(a, true, false)

	data, err := s.ExportJSON()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(string(data), "isCollapsed") {
		t.Fatal("export must include UI flags")
	}

	dest := newTestSession(t)
	count, err := dest.ImportJSON(data, "")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 bullets, got %d", count)
	}
	f := dest.Forest()
	if len(f) != 1 || f[0].Text != "alpha #tag" || !f[0].IsCollapsed {
		t.Fatalf("round trip lost the root: %+v", f[0])
	}
	if len(f[0].Children) != 1 || f[0].Children[0].Text != "beta" {
		t.Fatal("round trip lost the child")
	}
	if f[0].OriginalID != a {
		t.Fatal("round trip should record provenance")
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	s := newTestSession(t)
	id := s.AddSiblingAfter("")
	s.UpdateText(id, "precious")

	if err := s.Reset(false); err == nil {
		t.Fatal("reset without confirmation must be refused")
	}
	if _, ok := outline.Locate(s.Forest(), id); !ok {
		t.Fatal("refused reset must not touch the forest")
	}

	if err := s.Reset(true); err != nil {
		t.Fatalf("confirmed reset: %v", err)
	}
	if _, ok := outline.Locate(s.Forest(), id); ok {
		t.Fatal("reset should drop the old forest")
	}
	if len(s.Forest()) == 0 {
		t.Fatal("reset should reseed the welcome outline")
	}
	if len(s.Recents()) != 0 || len(s.Favorites()) != 0 {
		t.Fatal("reset should clear the auxiliary lists")
	}
}

func TestFavoriteSnapshotGoesStale(t *testing.T) {
	s := newTestSession(t)
	id := s.AddSiblingAfter("")
	s.UpdateText(id, "original label")

	s.ToggleFavorite(id)
	favs := s.Favorites()
	if len(favs) != 1 || favs[0].Text != "original label" {
		t.Fatalf("favorite should snapshot the text: %+v", favs)
	}

	s.UpdateText(id, "renamed")
	favs = s.Favorites()
	if favs[0].Text != "original label" {
		t.Fatal("favorite text is a snapshot and must not be refreshed")
	}

	s.ToggleFavorite(id)
	if len(s.Favorites()) != 0 {
		t.Fatal("toggling off should remove the entry")
	}
}

func TestHomeCollapsesTopLevel(t *testing.T) {
	s := newTestSession(t)
	a := node("a", node("a1"))
	b := node("b", node("b1"))
	c := node("c")
	s.forest = outline.Forest{a, b, c}
	s.Zoom(a.ID)

	s.Home()

	if s.ZoomedID() != "" {
		t.Fatal("home should zoom all the way out")
	}
	for _, id := range []string{a.ID, b.ID} {
		loc, _ := outline.Locate(s.Forest(), id)
		if !loc.Node.IsCollapsed {
			t.Fatalf("top-level bullet %s should be collapsed", id)
		}
	}
	if s.Focus().ID != a.ID {
		t.Fatal("home should focus the first root")
	}
	if got := len(s.VisibleSequence()); got != 3 {
		t.Fatalf("only the three roots should be visible, got %d rows", got)
	}
}

func TestNavigateToAndResolveLink(t *testing.T) {
	s := newTestSession(t)
	targetChild := node("Project Plan")
	parent := node("Work", targetChild)
	parent.IsCollapsed = true
	s.forest = outline.Forest{parent, node("Other")}

	if !s.ResolveLink("project plan") {
		t.Fatal("case-insensitive link resolution should find the bullet")
	}
	if s.ZoomedID() != parent.ID {
		t.Fatal("navigation should zoom to the target's parent")
	}
	if s.Focus().ID != targetChild.ID || s.Focus().Mode != ModeView {
		t.Fatalf("navigation should focus the target: %+v", s.Focus())
	}

	if s.ResolveLink("No Such Bullet") {
		t.Fatal("unresolved links must report false")
	}
}

func TestArrowGesturesFoldAndClimb(t *testing.T) {
	s := newTestSession(t)
	kid := node("kid")
	parent := node("parent", kid)
	s.forest = outline.Forest{parent}

	s.SetFocus(parent.ID, End(), ModeView)
	s.CollapseOrFocusParent()
	loc, _ := outline.Locate(s.Forest(), parent.ID)
	if !loc.Node.IsCollapsed {
		t.Fatal("left on an expanded parent should collapse it")
	}

	s.ExpandOrFocusChild()
	loc, _ = outline.Locate(s.Forest(), parent.ID)
	if loc.Node.IsCollapsed {
		t.Fatal("right on a collapsed parent should expand it")
	}

	s.ExpandOrFocusChild()
	if s.Focus().ID != kid.ID {
		t.Fatal("right on an expanded parent should descend to the first child")
	}

	s.CollapseOrFocusParent()
	if s.Focus().ID != parent.ID {
		t.Fatal("left on a leaf should climb to the parent")
	}
}

func TestSaveRoundTripsThroughStore(t *testing.T) {
	p, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.SaveForest(outline.Forest{}); err != nil {
		t.Fatalf("save empty forest: %v", err)
	}

	s := Load(p)
	id := s.AddSiblingAfter("")
	s.UpdateText(id, "persisted")
	s.ToggleFavorite(id)
	s.ToggleTheme()
	if !s.Dirty() {
		t.Fatal("edits should leave dirty state")
	}
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.Dirty() {
		t.Fatal("save should clear dirty state")
	}

	reloaded := Load(p)
	if _, ok := outline.Locate(reloaded.Forest(), id); !ok {
		t.Fatal("saved forest should survive a reload")
	}
	if len(reloaded.Favorites()) != 1 || reloaded.Favorites()[0].ID != id {
		t.Fatal("saved favorites should survive a reload")
	}
	if reloaded.Theme() != store.ThemeLight {
		t.Fatalf("saved theme should survive a reload, got %q", reloaded.Theme())
	}
}

func TestLoadSeedsWelcomeOnFirstRun(t *testing.T) {
	p, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	s := Load(p)
	if len(s.Forest()) == 0 {
		t.Fatal("first run should seed the welcome outline")
	}

	// The seed is written through, so a second load sees the same forest.
	again := Load(p)
	if len(again.Forest()) != len(s.Forest()) {
		t.Fatal("seed should persist immediately")
	}
}

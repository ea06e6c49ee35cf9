package store

import (
	"testing"
	"time"

	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/outline"
)

func testPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestForestMissingVersusEmpty(t *testing.T) {
	p := testPersistence(t)

	if _, ok, err := p.Forest(); err != nil || ok {
		t.Fatalf("fresh store: got ok=%v err=%v, want missing", ok, err)
	}

	if err := p.SaveForest(outline.Forest{}); err != nil {
		t.Fatalf("save empty forest: %v", err)
	}

	f, ok, err := p.Forest()
	if err != nil || !ok {
		t.Fatalf("after save: got ok=%v err=%v, want present", ok, err)
	}
	if len(f) != 0 {
		t.Fatalf("expected empty forest, got %d roots", len(f))
	}
}

func TestForestRoundTrip(t *testing.T) {
	p := testPersistence(t)

	root := bullet.New("groceries")
	root.IsCollapsed = true
	child := bullet.New("milk #errand")
	child.IsFavorite = true
	root.Children = []*bullet.Bullet{child}

	if err := p.SaveForest(outline.Forest{root}); err != nil {
		t.Fatalf("save forest: %v", err)
	}

	f, ok, err := p.Forest()
	if err != nil || !ok {
		t.Fatalf("load forest: ok=%v err=%v", ok, err)
	}
	if len(f) != 1 || f[0].ID != root.ID || !f[0].IsCollapsed {
		t.Fatalf("root did not survive the round trip: %+v", f[0])
	}
	got := f[0].Children
	if len(got) != 1 || got[0].Text != "milk #errand" || !got[0].IsFavorite {
		t.Fatalf("child did not survive the round trip: %+v", got)
	}
	if !got[0].CreatedAt.Equal(child.CreatedAt.Time) {
		t.Fatalf("createdAt drifted: %v != %v", got[0].CreatedAt, child.CreatedAt)
	}
}

func TestListDefaultsAreEmpty(t *testing.T) {
	p := testPersistence(t)

	recents, err := p.Recents()
	if err != nil {
		t.Fatalf("recents: %v", err)
	}
	if len(recents) != 0 {
		t.Fatalf("expected no recents, got %d", len(recents))
	}

	favs, err := p.Favorites()
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if len(favs) != 0 {
		t.Fatalf("expected no favorites, got %d", len(favs))
	}
}

func TestListsRoundTrip(t *testing.T) {
	p := testPersistence(t)

	recents := []bullet.RecencyEntry{
		{ID: "a", Text: "alpha", UpdatedAt: bullet.At(time.Now().UTC())},
		{ID: "b", Text: "beta", UpdatedAt: bullet.At(time.Now().UTC())},
	}
	if err := p.SaveRecents(recents); err != nil {
		t.Fatalf("save recents: %v", err)
	}
	gotRecents, err := p.Recents()
	if err != nil {
		t.Fatalf("recents: %v", err)
	}
	if len(gotRecents) != 2 || gotRecents[0].ID != "a" || gotRecents[1].Text != "beta" {
		t.Fatalf("recents did not survive the round trip: %+v", gotRecents)
	}

	favs := []bullet.FavoriteEntry{{ID: "a", Text: "alpha"}}
	if err := p.SaveFavorites(favs); err != nil {
		t.Fatalf("save favorites: %v", err)
	}
	gotFavs, err := p.Favorites()
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if len(gotFavs) != 1 || gotFavs[0].ID != "a" {
		t.Fatalf("favorites did not survive the round trip: %+v", gotFavs)
	}
}

func TestSettingsDefaultAndOverride(t *testing.T) {
	p := testPersistence(t)

	s, err := p.Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", s)
	}

	s.MainColor = "#00afff"
	s.FontSize = 16
	if err := p.SaveSettings(s); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	got, err := p.Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if got.MainColor != "#00afff" || got.FontSize != 16 {
		t.Fatalf("settings did not survive the round trip: %+v", got)
	}
}

func TestThemeDefaultsToDarkAndRejectsUnknown(t *testing.T) {
	p := testPersistence(t)

	theme, err := p.Theme()
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != ThemeDark {
		t.Fatalf("expected dark default, got %q", theme)
	}

	if err := p.SaveTheme(ThemeLight); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	if theme, _ = p.Theme(); theme != ThemeLight {
		t.Fatalf("expected light, got %q", theme)
	}

	if err := p.SaveTheme("solarized"); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	if theme, _ = p.Theme(); theme != ThemeDark {
		t.Fatalf("unknown theme should fall back to dark, got %q", theme)
	}
}

func TestSidebarStateRoundTrip(t *testing.T) {
	p := testPersistence(t)

	open, err := p.SidebarOpen()
	if err != nil {
		t.Fatalf("sidebar open: %v", err)
	}
	if !open {
		t.Fatal("sidebar should default to open")
	}

	if err := p.SaveSidebarOpen(false); err != nil {
		t.Fatalf("save sidebar open: %v", err)
	}
	if open, _ = p.SidebarOpen(); open {
		t.Fatal("sidebar should be closed after save")
	}

	width, err := p.SidebarWidth()
	if err != nil {
		t.Fatalf("sidebar width: %v", err)
	}
	if width != DefaultSidebarWidth {
		t.Fatalf("expected default width %d, got %d", DefaultSidebarWidth, width)
	}

	if err := p.SaveSidebarWidth(48); err != nil {
		t.Fatalf("save sidebar width: %v", err)
	}
	if width, _ = p.SidebarWidth(); width != 48 {
		t.Fatalf("expected width 48, got %d", width)
	}

	// Absurdly narrow widths clamp instead of breaking the layout.
	if err := p.SaveSidebarWidth(3); err != nil {
		t.Fatalf("save sidebar width: %v", err)
	}
	if width, _ = p.SidebarWidth(); width != 16 {
		t.Fatalf("expected clamped width 16, got %d", width)
	}
}

func TestResetDropsEverything(t *testing.T) {
	p := testPersistence(t)

	if err := p.SaveForest(outline.Forest{bullet.New("doomed")}); err != nil {
		t.Fatalf("save forest: %v", err)
	}
	if err := p.SaveTheme(ThemeLight); err != nil {
		t.Fatalf("save theme: %v", err)
	}

	if err := p.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, ok, err := p.Forest(); err != nil || ok {
		t.Fatalf("forest should be missing after reset: ok=%v err=%v", ok, err)
	}
	theme, err := p.Theme()
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != ThemeDark {
		t.Fatalf("theme should reset to dark, got %q", theme)
	}
}

func TestWelcomeForestHasTagAndLinkExamples(t *testing.T) {
	f := WelcomeForest(time.Now().UTC())
	if len(f) == 0 {
		t.Fatal("welcome forest is empty")
	}
	ids := outline.IDs(f)
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %q in welcome forest", id)
		}
		seen[id] = true
	}

	var hasTag, hasLink bool
	for _, id := range ids {
		loc, ok := outline.Locate(f, id)
		if !ok {
			t.Fatalf("locate %q", id)
		}
		if containsTagWord(loc.Node.Text) {
			hasTag = true
		}
		if containsLinkMarker(loc.Node.Text) {
			hasLink = true
		}
	}
	if !hasTag {
		t.Fatal("welcome forest should mention a #tag")
	}
	if !hasLink {
		t.Fatal("welcome forest should mention the [[ link syntax")
	}
}

func containsTagWord(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '#' && s[i+1] != ' ' {
			return true
		}
	}
	return false
}

func containsLinkMarker(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '[' && s[i+1] == '[' {
			return true
		}
	}
	return false
}

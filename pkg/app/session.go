package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/outline"
	"github.com/outlinehq/hoist/pkg/search"
	"github.com/outlinehq/hoist/pkg/store"
)

// Session is the single state container for one running outline editor: the
// forest, zoom and focus state, the recents and favorites lists, and the user
// preferences, initialized from persistence before first use. Every mutation
// happens synchronously on one logical actor; persistence writes are
// post-commit and best-effort, so UIs and CLIs can share the same operations.
type Session struct {
	persist store.Persistence

	forest    outline.Forest
	zoomedID  string
	focus     FocusState
	recents   []bullet.RecencyEntry
	favorites []bullet.FavoriteEntry

	settings     store.Settings
	theme        string
	sidebarOpen  bool
	sidebarWidth int

	effects []func(*Session)
	dirty   map[string]bool
	now     func() time.Time
}

// Load initializes a session from persistence. Unreadable keys degrade to
// their defaults so a damaged database never blocks startup. A forest that
// has never been written is seeded with the welcome outline; a deliberately
// emptied one stays empty.
func Load(p store.Persistence) *Session {
	s := &Session{
		persist: p,
		dirty:   make(map[string]bool),
		now:     time.Now,
	}

	forest, ok, err := p.Forest()
	logErr(err)
	if !ok && err == nil {
		forest = store.WelcomeForest(s.now().UTC())
		logErr(p.SaveForest(forest))
	}
	s.forest = forest

	s.recents, err = p.Recents()
	logErr(err)
	s.favorites, err = p.Favorites()
	logErr(err)
	s.settings, err = p.Settings()
	logErr(err)
	s.theme, err = p.Theme()
	logErr(err)
	s.sidebarOpen, err = p.SidebarOpen()
	logErr(err)
	s.sidebarWidth, err = p.SidebarWidth()
	logErr(err)

	return s
}

func logErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "hoist: %v\n", err)
	}
}

// Forest returns the current committed forest. Callers must treat it as
// immutable; every change goes through an operation.
func (s *Session) Forest() outline.Forest { return s.forest }

func (s *Session) ZoomedID() string { return s.zoomedID }

func (s *Session) Focus() FocusState { return s.focus }

func (s *Session) Recents() []bullet.RecencyEntry { return s.recents }

func (s *Session) Favorites() []bullet.FavoriteEntry { return s.favorites }

func (s *Session) Settings() store.Settings { return s.settings }

func (s *Session) Theme() string { return s.theme }

func (s *Session) SidebarOpen() bool { return s.sidebarOpen }

func (s *Session) SidebarWidth() int { return s.sidebarWidth }

// DBPath reports where the backing database lives, for status display.
func (s *Session) DBPath() string { return s.persist.BasePath() }

// Count is the number of bullets in the forest.
func (s *Session) Count() int { return outline.Count(s.forest) }

// VisibleRows flattens the current page: the zoom-scoped, fold-aware rows in
// display order with their depths.
func (s *Session) VisibleRows() []outline.Row {
	return outline.VisibleRows(s.forest, s.zoomedID)
}

// VisibleSequence is the id ordering linear navigation moves over.
func (s *Session) VisibleSequence() []string {
	return outline.VisibleSequence(s.forest, s.zoomedID)
}

// Breadcrumbs is the ancestor chain from the true root to the zoom target.
func (s *Session) Breadcrumbs() []*bullet.Bullet {
	return outline.Breadcrumbs(s.forest, s.zoomedID)
}

// FocusedBullet resolves the focus id against the forest.
func (s *Session) FocusedBullet() (*bullet.Bullet, bool) {
	if s.focus.ID == "" {
		return nil, false
	}
	loc, ok := outline.Locate(s.forest, s.focus.ID)
	if !ok {
		return nil, false
	}
	return loc.Node, true
}

// ResolveBullet turns a command-line reference into a bullet id. A reference
// is tried as an id first, then as an exact text match, then case-insensitive.
func (s *Session) ResolveBullet(ref string) (string, bool) {
	if _, ok := outline.Locate(s.forest, ref); ok {
		return ref, true
	}
	if n := outline.FindByText(s.forest, ref); n != nil {
		return n.ID, true
	}
	return "", false
}

// Flattened lists every bullet with its ancestor path, in outline order.
func (s *Session) Flattened() []search.FlatBullet {
	return search.Flatten(s.forest)
}

// Search runs a quick-find query over the flattened outline and orders the
// hits by the chosen sort mode.
func (s *Session) Search(query string, mode search.SortMode) []search.FlatBullet {
	return search.Sorted(search.Filter(s.Flattened(), query), mode)
}

// Tags lists every #tag in the outline, deduplicated and sorted.
func (s *Session) Tags() []string {
	return search.Tags(s.Flattened())
}

// TagSuggestions filters the tag list by the partial being typed.
func (s *Session) TagSuggestions(partial string) []string {
	return search.TagSuggestions(s.Flattened(), partial)
}

// LinkSuggestions filters the flattened outline by the partial link text.
func (s *Session) LinkSuggestions(partial string) []search.FlatBullet {
	return search.LinkSuggestions(s.Flattened(), partial)
}

// Watch subscribes to persistence change events, for refreshing the view when
// another process writes the database.
func (s *Session) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.persist.Watch(ctx)
}

// SetTheme switches between light and dark.
func (s *Session) SetTheme(theme string) {
	if theme != store.ThemeLight && theme != store.ThemeDark {
		return
	}
	if s.theme == theme {
		return
	}
	s.theme = theme
	s.markDirty(store.KeyTheme)
}

// ToggleTheme flips the theme and returns the new value.
func (s *Session) ToggleTheme() string {
	if s.theme == store.ThemeDark {
		s.SetTheme(store.ThemeLight)
	} else {
		s.SetTheme(store.ThemeDark)
	}
	return s.theme
}

func (s *Session) SetSidebarOpen(open bool) {
	if s.sidebarOpen == open {
		return
	}
	s.sidebarOpen = open
	s.markDirty(store.KeySidebarOpen)
}

func (s *Session) SetSidebarWidth(width int) {
	if width < 16 {
		width = 16
	}
	if s.sidebarWidth == width {
		return
	}
	s.sidebarWidth = width
	s.markDirty(store.KeySidebarWidth)
}

// UpdateSettings replaces the settings payload.
func (s *Session) UpdateSettings(settings store.Settings) {
	if s.settings == settings {
		return
	}
	s.settings = settings
	s.markDirty(store.KeySettings)
}

// commit installs the transformed forest, marks it for persistence, and then
// drains the effect queue. Focus effects queued during an operation run
// strictly after the new forest is in place, so a freshly created bullet
// exists before it can take focus.
func (s *Session) commit(f outline.Forest) {
	s.forest = f
	s.markDirty(store.KeyBullets)
	s.drainEffects()
}

func (s *Session) queue(eff func(*Session)) {
	s.effects = append(s.effects, eff)
}

func (s *Session) queueFocus(id string, pos Position, mode Mode) {
	s.queue(func(s *Session) { s.SetFocus(id, pos, mode) })
}

func (s *Session) drainEffects() {
	for len(s.effects) > 0 {
		eff := s.effects[0]
		s.effects = s.effects[1:]
		eff(s)
	}
}

func (s *Session) markDirty(key string) {
	s.dirty[key] = true
}

// Dirty reports whether any state is waiting to be persisted.
func (s *Session) Dirty() bool {
	return len(s.dirty) > 0
}

// Save writes every dirty key. Each key is independent, last-write-wins; a
// failed key stays dirty so the next save retries it. Callers log the error
// and carry on, per the best-effort persistence policy.
func (s *Session) Save() error {
	var errs []error
	save := func(key string, write func() error) {
		if !s.dirty[key] {
			return
		}
		if err := write(); err != nil {
			errs = append(errs, err)
			return
		}
		delete(s.dirty, key)
	}

	save(store.KeyBullets, func() error { return s.persist.SaveForest(s.forest) })
	save(store.KeyRecents, func() error { return s.persist.SaveRecents(s.recents) })
	save(store.KeyFavorites, func() error { return s.persist.SaveFavorites(s.favorites) })
	save(store.KeySettings, func() error { return s.persist.SaveSettings(s.settings) })
	save(store.KeyTheme, func() error { return s.persist.SaveTheme(s.theme) })
	save(store.KeySidebarOpen, func() error { return s.persist.SaveSidebarOpen(s.sidebarOpen) })
	save(store.KeySidebarWidth, func() error { return s.persist.SaveSidebarWidth(s.sidebarWidth) })

	return errors.Join(errs...)
}

// Reload re-reads everything from persistence, dropping unsaved local state.
// Zoom and focus survive when their targets still exist.
func (s *Session) Reload() {
	forest, ok, err := s.persist.Forest()
	logErr(err)
	if err == nil && ok {
		s.forest = forest
	}

	if recents, err := s.persist.Recents(); err == nil {
		s.recents = recents
	} else {
		logErr(err)
	}
	if favorites, err := s.persist.Favorites(); err == nil {
		s.favorites = favorites
	} else {
		logErr(err)
	}
	if settings, err := s.persist.Settings(); err == nil {
		s.settings = settings
	} else {
		logErr(err)
	}
	if theme, err := s.persist.Theme(); err == nil {
		s.theme = theme
	} else {
		logErr(err)
	}
	if open, err := s.persist.SidebarOpen(); err == nil {
		s.sidebarOpen = open
	} else {
		logErr(err)
	}
	if width, err := s.persist.SidebarWidth(); err == nil {
		s.sidebarWidth = width
	} else {
		logErr(err)
	}

	if s.zoomedID != "" {
		if _, ok := outline.Locate(s.forest, s.zoomedID); !ok {
			s.zoomedID = ""
		}
	}
	if s.focus.ID != "" {
		if _, ok := outline.Locate(s.forest, s.focus.ID); !ok {
			s.focus = FocusState{}
		}
	}
	s.dirty = make(map[string]bool)
}

// Reset wipes the database and reseeds the welcome outline. The confirm flag
// is the caller's proof that the user agreed to lose everything.
func (s *Session) Reset(confirm bool) error {
	if !confirm {
		return errors.New("app: reset requires confirmation")
	}
	if err := s.persist.Reset(); err != nil {
		return err
	}

	s.forest = store.WelcomeForest(s.now().UTC())
	s.zoomedID = ""
	s.focus = FocusState{}
	s.recents = nil
	s.favorites = nil
	s.settings = store.DefaultSettings()
	s.theme = store.ThemeDark
	s.sidebarOpen = true
	s.sidebarWidth = store.DefaultSidebarWidth
	s.effects = nil
	s.dirty = map[string]bool{store.KeyBullets: true}
	return s.Save()
}

func (s *Session) timestamp() bullet.Timestamp {
	return bullet.At(s.now().UTC())
}

func (s *Session) newBullet(text string) *bullet.Bullet {
	n := bullet.New(text)
	at := s.timestamp()
	n.CreatedAt = at
	n.UpdatedAt = at
	return n
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/outline"
)

// Keys in the embedded key-value store. Each key holds one whole JSON value
// and every write replaces the value outright.
const (
	KeyBullets      = "bullets"
	KeyRecents      = "recentBullets"
	KeyFavorites    = "favoriteBullets"
	KeySettings     = "settings"
	KeyTheme        = "theme"
	KeySidebarOpen  = "isSidebarOpen"
	KeySidebarWidth = "sidebarWidth"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	// DefaultSidebarWidth is used until the user resizes the sidebar.
	DefaultSidebarWidth = 32
)

// Settings is the user-tunable settings payload stored under KeySettings.
type Settings struct {
	MainColor  string `json:"mainColor"`
	FileName   string `json:"fileName"`
	FontFamily string `json:"fontFamily"`
	FontSize   int    `json:"fontSize"`
}

// DefaultSettings returns the out-of-the-box settings values.
func DefaultSettings() Settings {
	return Settings{
		MainColor:  "#d787ff",
		FileName:   "outline",
		FontFamily: "monospace",
		FontSize:   14,
	}
}

// Persistence is the storage contract for the outline session. Readers fall
// back to defaults when a key has never been written; the boolean returned by
// Forest distinguishes a missing key from a stored empty forest so first-run
// seeding does not clobber a deliberately emptied outline.
type Persistence interface {
	Forest() (outline.Forest, bool, error)
	SaveForest(f outline.Forest) error
	Recents() ([]bullet.RecencyEntry, error)
	SaveRecents([]bullet.RecencyEntry) error
	Favorites() ([]bullet.FavoriteEntry, error)
	SaveFavorites([]bullet.FavoriteEntry) error
	Settings() (Settings, error)
	SaveSettings(Settings) error
	Theme() (string, error)
	SaveTheme(theme string) error
	SidebarOpen() (bool, error)
	SaveSidebarOpen(open bool) error
	SidebarWidth() (int, error)
	SaveSidebarWidth(width int) error
	Reset() error
	Watch(ctx context.Context) (<-chan Event, error)
	BasePath() string
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) BasePath() string {
	return p.basePath
}

// get reads and decodes one key. A key that has never been written reports
// (false, nil) so callers can apply their default. Reads go straight to disk:
// watch-triggered reloads must see writes made by other processes, which the
// in-memory cache would hide.
func (p *persistence) get(key string, v interface{}) (bool, error) {
	r, err := p.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	data, err := io.ReadAll(r)
	if cerr := r.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return true, nil
}

func (p *persistence) put(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Forest() (outline.Forest, bool, error) {
	var f outline.Forest
	ok, err := p.get(KeyBullets, &f)
	if err != nil || !ok {
		return nil, ok, err
	}
	return f, true, nil
}

func (p *persistence) SaveForest(f outline.Forest) error {
	if f == nil {
		f = outline.Forest{}
	}
	return p.put(KeyBullets, f)
}

func (p *persistence) Recents() ([]bullet.RecencyEntry, error) {
	var list []bullet.RecencyEntry
	if _, err := p.get(KeyRecents, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (p *persistence) SaveRecents(list []bullet.RecencyEntry) error {
	if list == nil {
		list = []bullet.RecencyEntry{}
	}
	return p.put(KeyRecents, list)
}

func (p *persistence) Favorites() ([]bullet.FavoriteEntry, error) {
	var list []bullet.FavoriteEntry
	if _, err := p.get(KeyFavorites, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (p *persistence) SaveFavorites(list []bullet.FavoriteEntry) error {
	if list == nil {
		list = []bullet.FavoriteEntry{}
	}
	return p.put(KeyFavorites, list)
}

func (p *persistence) Settings() (Settings, error) {
	s := DefaultSettings()
	ok, err := p.get(KeySettings, &s)
	if err != nil || !ok {
		return DefaultSettings(), err
	}
	if s.FileName == "" {
		s.FileName = DefaultSettings().FileName
	}
	return s, nil
}

func (p *persistence) SaveSettings(s Settings) error {
	return p.put(KeySettings, s)
}

func (p *persistence) Theme() (string, error) {
	var theme string
	ok, err := p.get(KeyTheme, &theme)
	if err != nil || !ok {
		return ThemeDark, err
	}
	if theme != ThemeLight && theme != ThemeDark {
		return ThemeDark, nil
	}
	return theme, nil
}

func (p *persistence) SaveTheme(theme string) error {
	return p.put(KeyTheme, theme)
}

func (p *persistence) SidebarOpen() (bool, error) {
	open := true
	ok, err := p.get(KeySidebarOpen, &open)
	if err != nil || !ok {
		return true, err
	}
	return open, nil
}

func (p *persistence) SaveSidebarOpen(open bool) error {
	return p.put(KeySidebarOpen, open)
}

func (p *persistence) SidebarWidth() (int, error) {
	width := DefaultSidebarWidth
	ok, err := p.get(KeySidebarWidth, &width)
	if err != nil || !ok {
		return DefaultSidebarWidth, err
	}
	if width < 16 {
		width = 16
	}
	return width, nil
}

func (p *persistence) SaveSidebarWidth(width int) error {
	return p.put(KeySidebarWidth, width)
}

// Reset drops every stored key. The caller decides whether to reseed.
func (p *persistence) Reset() error {
	if err := p.d.EraseAll(); err != nil {
		return fmt.Errorf("store: reset: %w", err)
	}
	return nil
}

const keySuffix = ".json"

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s + keySuffix,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, keySuffix)
}

package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultAccent matches the stored default mainColor setting.
const DefaultAccent = "#d787ff"

// Theme centralizes Lip Gloss styles for the Bubble Tea editor.
type Theme struct {
	Crumbs  CrumbTheme
	Outline OutlineTheme
	Sidebar SidebarTheme
	Finder  FinderTheme
	Popup   PopupTheme
	Status  StatusTheme
	Overlay OverlayTheme
}

// CrumbTheme styles the breadcrumb header above the page.
type CrumbTheme struct {
	Crumb   lipgloss.Style
	Sep     lipgloss.Style
	Current lipgloss.Style
	Title   lipgloss.Style
}

// OutlineTheme styles the rows of the page itself.
type OutlineTheme struct {
	Marker   lipgloss.Style
	Text     lipgloss.Style
	Focused  lipgloss.Style
	Untitled lipgloss.Style
	Favorite lipgloss.Style
	Lock     lipgloss.Style
	Meta     lipgloss.Style
	Empty    lipgloss.Style
}

// SidebarTheme styles the favorites/recents pane.
type SidebarTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Entry    lipgloss.Style
	Selected lipgloss.Style
	Time     lipgloss.Style
}

// FinderTheme styles the quick-find modal and the import target picker.
type FinderTheme struct {
	Frame       lipgloss.Style
	Title       lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	Hit         lipgloss.Style
	HitSelected lipgloss.Style
	Path        lipgloss.Style
	Count       lipgloss.Style
}

// PopupTheme styles the inline tag/link autocomplete.
type PopupTheme struct {
	Frame    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
}

// StatusTheme styles the bottom status bar.
type StatusTheme struct {
	Bar   lipgloss.Style
	Mode  lipgloss.Style
	Info  lipgloss.Style
	Error lipgloss.Style
}

// OverlayTheme styles centered overlays: help, confirm, import.
type OverlayTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Key   lipgloss.Style
	Desc  lipgloss.Style
}

// Default returns the dark theme with the built-in accent.
func Default() Theme {
	return Dark(DefaultAccent)
}

// Dark builds the dark-background theme around an accent color, normally the
// stored mainColor setting.
func Dark(accent string) Theme {
	base := parseAccent(accent)
	soft := base.BlendLab(colorful.Color{R: 0.1, G: 0.1, B: 0.12}, 0.45)

	return build(palette{
		textFg:   lipgloss.Color("252"),
		faintFg:  lipgloss.Color("243"),
		dimFg:    lipgloss.Color("240"),
		accentFg: base,
		softFg:   soft,
		barBg:    lipgloss.Color("236"),
		barFg:    lipgloss.Color("250"),
		errFg:    lipgloss.Color("203"),
	})
}

// Light builds the light-background theme around the same accent.
func Light(accent string) Theme {
	base := parseAccent(accent)
	ink := base.BlendLab(colorful.Color{R: 0.15, G: 0.1, B: 0.2}, 0.35)
	soft := base.BlendLab(colorful.Color{R: 0.9, G: 0.9, B: 0.92}, 0.35)

	return build(palette{
		textFg:   lipgloss.Color("235"),
		faintFg:  lipgloss.Color("244"),
		dimFg:    lipgloss.Color("249"),
		accentFg: ink,
		softFg:   soft,
		barBg:    lipgloss.Color("254"),
		barFg:    lipgloss.Color("238"),
		errFg:    lipgloss.Color("160"),
	})
}

// ForSession picks the theme for a stored theme name and accent.
func ForSession(name, accent string) Theme {
	if name == "light" {
		return Light(accent)
	}
	return Dark(accent)
}

type palette struct {
	textFg   color.Color
	faintFg  color.Color
	dimFg    color.Color
	accentFg color.Color
	softFg   color.Color
	barBg    color.Color
	barFg    color.Color
	errFg    color.Color
}

func build(p palette) Theme {
	text := lipgloss.NewStyle().Foreground(p.textFg)
	faint := lipgloss.NewStyle().Foreground(p.faintFg)
	dim := lipgloss.NewStyle().Foreground(p.dimFg)
	accent := lipgloss.NewStyle().Foreground(p.accentFg)
	soft := lipgloss.NewStyle().Foreground(p.softFg)
	selected := lipgloss.NewStyle().Foreground(p.accentFg).Reverse(true)

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.dimFg).
		Padding(0, 1)

	return Theme{
		Crumbs: CrumbTheme{
			Crumb:   faint,
			Sep:     dim,
			Current: accent,
			Title:   text.Bold(true),
		},
		Outline: OutlineTheme{
			Marker:   soft,
			Text:     text,
			Focused:  selected,
			Untitled: dim.Italic(true),
			Favorite: accent,
			Lock:     dim,
			Meta:     dim.Italic(true),
			Empty:    dim.Italic(true),
		},
		Sidebar: SidebarTheme{
			Frame:    frame,
			Title:    accent.Bold(true),
			Entry:    text,
			Selected: selected,
			Time:     dim,
		},
		Finder: FinderTheme{
			Frame:       frame.Padding(1, 2),
			Title:       text.Bold(true),
			Tab:         faint,
			TabActive:   accent.Bold(true).Underline(true),
			Hit:         text,
			HitSelected: selected,
			Path:        dim,
			Count:       faint,
		},
		Popup: PopupTheme{
			Frame:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.dimFg).Padding(0, 1),
			Item:     text,
			Selected: selected,
		},
		Status: StatusTheme{
			Bar:   lipgloss.NewStyle().Background(p.barBg).Foreground(p.barFg).Padding(0, 1),
			Mode:  lipgloss.NewStyle().Background(p.barBg).Foreground(p.accentFg).Bold(true).Padding(0, 1),
			Info:  lipgloss.NewStyle().Background(p.barBg).Foreground(p.barFg).Padding(0, 1),
			Error: lipgloss.NewStyle().Background(p.barBg).Foreground(p.errFg).Bold(true).Padding(0, 1),
		},
		Overlay: OverlayTheme{
			Frame: frame.Padding(1, 2),
			Title: text.Bold(true),
			Body:  text,
			Key:   accent,
			Desc:  faint,
		},
	}
}

func parseAccent(accent string) colorful.Color {
	c, err := colorful.Hex(accent)
	if err != nil {
		c, _ = colorful.Hex(DefaultAccent)
	}
	return c
}

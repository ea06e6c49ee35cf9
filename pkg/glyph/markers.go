package glyph

import "fmt"

// Glyph describes one symbol from the outline legend. Key holds the keyboard
// chord or typed syntax that produces the state, when there is one.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Syntax  bool
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 7)

	g = append(g, Glyph{
		Key:     "",
		Symbol:  "•",
		Meaning: "bullet",
	}, Glyph{
		Key:     "ctrl+.",
		Symbol:  "▸",
		Meaning: "collapsed, children hidden",
	}, Glyph{
		Key:     "ctrl+.",
		Symbol:  "▾",
		Meaning: "expanded, children shown",
	}, Glyph{
		Key:     "ctrl+y",
		Symbol:  "★",
		Meaning: "favorite",
	}, Glyph{
		Key:     "",
		Symbol:  "⊘",
		Meaning: "read-only",
	}, Glyph{
		Key:     "#word",
		Symbol:  "#",
		Meaning: "tag, searchable",
		Syntax:  true,
	}, Glyph{
		Key:     "[[",
		Symbol:  "[[",
		Meaning: "link to another bullet",
		Syntax:  true,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Marker enumerates the per-node symbols drawn in front of outline rows.
type Marker int

const (
	Dot Marker = iota
	Collapsed
	Expanded
	Favorite
	ReadOnly
)

func (m Marker) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Marker) String() string {
	return m.Glyph().String()
}

// For picks the marker for a node's fold state.
func For(hasChildren, collapsed bool) Marker {
	if !hasChildren {
		return Dot
	}
	if collapsed {
		return Collapsed
	}
	return Expanded
}

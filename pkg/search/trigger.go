package search

import (
	"strings"
	"unicode"
)

// TriggerKind distinguishes the two autocomplete popups.
type TriggerKind int

const (
	TriggerNone TriggerKind = iota
	TriggerTag
	TriggerLink
)

// Trigger describes an in-progress token found at the cursor: the byte offset
// where its marker starts and the partial text typed after the marker.
type Trigger struct {
	Kind    TriggerKind
	Start   int
	Partial string
}

// DetectTrigger re-scans text at the cursor offset, returning the tag or link
// trigger whose token the cursor currently sits at, if any. A tag trigger is
// a '#' plus word characters running unbroken up to the cursor, with the '#'
// at the line start or after a non-word character. A link trigger is a "[["
// before the cursor with no closing "]]" in between.
func DetectTrigger(text string, cursor int) Trigger {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	head := text[:cursor]

	if open := strings.LastIndex(head, "[["); open >= 0 {
		if !strings.Contains(head[open:], "]]") {
			return Trigger{Kind: TriggerLink, Start: open, Partial: head[open+2:]}
		}
	}

	i := cursor
	for i > 0 && isWordByte(head[i-1]) {
		i--
	}
	if i > 0 && head[i-1] == '#' {
		markStart := i - 1
		if markStart == 0 || !isWordByte(head[markStart-1]) {
			return Trigger{Kind: TriggerTag, Start: markStart, Partial: head[i:cursor]}
		}
	}

	return Trigger{Kind: TriggerNone}
}

func isWordByte(b byte) bool {
	r := rune(b)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Complete splices a selection over the trigger's token and returns the new
// text plus the cursor offset just past the inserted form. Tag selections
// insert the full #tag; link selections insert [[text]].
func Complete(text string, cursor int, trig Trigger, sel Selection) (string, int) {
	if cursor > len(text) {
		cursor = len(text)
	}
	var inserted string
	switch s := sel.(type) {
	case TagSelection:
		inserted = s.Tag
		if !strings.HasPrefix(inserted, "#") {
			inserted = "#" + inserted
		}
	case LinkSelection:
		inserted = "[[" + s.Bullet.Text + "]]"
	default:
		return text, cursor
	}
	if trig.Kind == TriggerNone || trig.Start > len(text) {
		return text, cursor
	}
	out := text[:trig.Start] + inserted + text[cursor:]
	return out, trig.Start + len(inserted)
}

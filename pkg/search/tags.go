package search

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// MaxTagSuggestions bounds the tag popup.
	MaxTagSuggestions = 100
	// MaxLinkSuggestions bounds the link popup.
	MaxLinkSuggestions = 50
)

var (
	tagPattern  = regexp.MustCompile(`#\w+`)
	linkPattern = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)
)

// FirstLink returns the target of the first complete [[link]] in text.
func FirstLink(text string) (string, bool) {
	m := linkPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Tags collects every #tag token across the records: case preserved,
// de-duplicated, alphabetically sorted.
func Tags(records []FlatBullet) []string {
	seen := map[string]bool{}
	var tags []string
	for _, r := range records {
		for _, tag := range tagPattern.FindAllString(r.Text, -1) {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// TagSuggestions filters the tree's tags by case-insensitive substring match
// against the in-progress token (with or without its leading #), capped at
// MaxTagSuggestions.
func TagSuggestions(records []FlatBullet, partial string) []string {
	needle := strings.ToLower(strings.TrimPrefix(partial, "#"))
	var out []string
	for _, tag := range Tags(records) {
		if needle != "" && !strings.Contains(strings.ToLower(tag), needle) {
			continue
		}
		out = append(out, tag)
		if len(out) == MaxTagSuggestions {
			break
		}
	}
	return out
}

// LinkSuggestions filters records by case-insensitive substring match of the
// in-progress [[partial against each candidate's text, capped at
// MaxLinkSuggestions.
func LinkSuggestions(records []FlatBullet, partial string) []FlatBullet {
	needle := strings.ToLower(partial)
	var out []FlatBullet
	for _, r := range records {
		if needle != "" && !strings.Contains(strings.ToLower(r.Text), needle) {
			continue
		}
		out = append(out, r)
		if len(out) == MaxLinkSuggestions {
			break
		}
	}
	return out
}

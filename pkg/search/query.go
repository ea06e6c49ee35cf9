package search

import (
	"sort"
	"strings"
)

// SortMode orders quick-find results.
type SortMode int

const (
	// SortInsertion keeps tree order (the "search" tab).
	SortInsertion SortMode = iota
	// SortEdited orders by updatedAt, newest first (the "edited" tab).
	SortEdited
	// SortCreated orders by createdAt, newest first (the "created" tab).
	SortCreated
)

func (m SortMode) String() string {
	switch m {
	case SortEdited:
		return "edited"
	case SortCreated:
		return "created"
	default:
		return "search"
	}
}

// ParseSortMode maps a tab name to its mode.
func ParseSortMode(s string) (SortMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "search":
		return SortInsertion, true
	case "edited":
		return SortEdited, true
	case "created":
		return SortCreated, true
	}
	return SortInsertion, false
}

// Matches applies the quick-find query language to one text: the query splits
// on " or " (case-insensitive) into clauses, each clause splits on whitespace
// into terms, and the text matches when some clause has all of its terms as
// substrings. An empty or blank query matches everything.
func Matches(text, query string) bool {
	q := strings.ToLower(query)
	if strings.TrimSpace(q) == "" {
		return true
	}
	lower := strings.ToLower(text)
	for _, clause := range strings.Split(q, " or ") {
		terms := strings.Fields(clause)
		all := true
		for _, term := range terms {
			if !strings.Contains(lower, term) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// Filter returns the records whose text matches the query, in input order.
func Filter(records []FlatBullet, query string) []FlatBullet {
	out := make([]FlatBullet, 0, len(records))
	for _, r := range records {
		if Matches(r.Text, query) {
			out = append(out, r)
		}
	}
	return out
}

// Sorted returns a copy of records in the given order. Missing timestamps
// sort as the oldest possible value.
func Sorted(records []FlatBullet, mode SortMode) []FlatBullet {
	out := make([]FlatBullet, len(records))
	copy(out, records)
	switch mode {
	case SortEdited:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAt.After(out[j].UpdatedAt.Time)
		})
	case SortCreated:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt.Time)
		})
	}
	return out
}

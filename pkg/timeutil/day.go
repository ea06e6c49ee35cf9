package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// ParseDay resolves a journal date argument. It accepts the keywords "today",
// "yesterday", and "tomorrow", an ISO date like 2026-08-22, or the empty
// string, which means today.
func ParseDay(input string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	}

	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(input), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or today/yesterday/tomorrow", input)
	}
	return day, nil
}

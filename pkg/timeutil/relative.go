package timeutil

import (
	"fmt"
	"time"
)

// Relative renders how long ago t was, compactly, for list views. Zero times
// render empty; future times (clock skew across machines sharing a database)
// render as "just now".
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	delta := now.Sub(t)
	switch {
	case delta < time.Minute:
		return "just now"
	case delta < time.Hour:
		return fmt.Sprintf("%dm ago", int(delta.Minutes()))
	case delta < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(delta.Hours()))
	case delta < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(delta.Hours()/24))
	case t.Year() == now.Year():
		return t.Format("Jan 2")
	default:
		return t.Format("Jan 2, 2006")
	}
}

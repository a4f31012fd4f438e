package util

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate leniently parses a date cell. ok is false for empty or
// unparseable cells; the caller substitutes its own fallback.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EarliestOr returns the earliest of the given date cells, with now
// standing in for each cell that is empty or unparseable — not as a
// candidate in its own right, so four present dates all later than now
// still yield the earliest date. All cells missing yields now itself.
func EarliestOr(now time.Time, cells ...string) time.Time {
	if len(cells) == 0 {
		return now
	}
	var earliest time.Time
	for i, cell := range cells {
		t, ok := ParseDate(cell)
		if !ok {
			t = now
		}
		if i == 0 || t.Before(earliest) {
			earliest = t
		}
	}
	return earliest
}

package utils

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// EpochString validates a raw epoch value from the export and returns its
// canonical decimal form. The export stores seconds-since-epoch as bare JSON
// numbers; anything that is not a whole number comes back as nil and is
// stored as NULL.
func EpochString(n json.Number) *string {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	s = strconv.FormatInt(v, 10)
	return &s
}

// ParseEpoch parses a stored numeric-string timestamp. The second return is
// false for NULL or non-numeric values, which query layers drop silently.
func ParseEpoch(s *string) (int64, bool) {
	if s == nil {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.TrimSpace(*s), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ISOWeekStart returns midnight UTC of the Monday beginning t's ISO week.
func ISOWeekStart(t time.Time) time.Time {
	t = t.UTC()
	back := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -back).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

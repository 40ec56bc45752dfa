package intervals

import (
	"fmt"
	"strings"
	"time"
)

// Grouping selects the calendar granularity used to partition a time range.
// Weeks start on Monday (ISO convention).
type Grouping int

const (
	PerHour Grouping = iota
	PerDay
	PerWeek
	PerMonth
	PerQuarter
	PerYear
)

var groupingNames = map[Grouping]string{
	PerHour:    "hour",
	PerDay:     "day",
	PerWeek:    "week",
	PerMonth:   "month",
	PerQuarter: "quarter",
	PerYear:    "year",
}

func (g Grouping) String() string {
	if name, ok := groupingNames[g]; ok {
		return name
	}
	return fmt.Sprintf("grouping(%d)", int(g))
}

// ParseGrouping converts a raw string like "day" or "week" to a Grouping.
func ParseGrouping(s string) (Grouping, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for g, name := range groupingNames {
		if s == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown grouping %q", s)
}

// IsValidGrouping returns true if s names a supported grouping.
func IsValidGrouping(s string) bool {
	_, err := ParseGrouping(s)
	return err == nil
}

// truncate returns the start of the unit enclosing t, computed on t's
// wall-clock fields in t's location. Month, quarter and year truncation go
// through time.Date so variable month lengths and leap years are handled by
// the calendar, not by fixed durations.
func (g Grouping) truncate(t time.Time) time.Time {
	year, month, day := t.Date()
	loc := t.Location()
	switch g {
	case PerHour:
		return time.Date(year, month, day, t.Hour(), 0, 0, 0, loc)
	case PerDay:
		return time.Date(year, month, day, 0, 0, 0, 0, loc)
	case PerWeek:
		// Weekday is Sunday-based; shift so Monday counts as zero days back.
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(year, month, day, 0, 0, 0, 0, loc).AddDate(0, 0, -back)
	case PerMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc)
	case PerQuarter:
		qm := time.Month((int(month)-1)/3*3 + 1)
		return time.Date(year, qm, 1, 0, 0, 0, 0, loc)
	case PerYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	default:
		panic(fmt.Sprintf("intervals: unsupported grouping %d", int(g)))
	}
}

// next returns the start of the unit immediately following the boundary t.
// It must only be called on values produced by truncate; on a boundary,
// AddDate lands exactly on the following boundary for every grouping.
func (g Grouping) next(t time.Time) time.Time {
	switch g {
	case PerHour:
		// Fixed-offset locations have no transitions, so an hour is constant.
		return t.Add(time.Hour)
	case PerDay:
		return t.AddDate(0, 0, 1)
	case PerWeek:
		return t.AddDate(0, 0, 7)
	case PerMonth:
		return t.AddDate(0, 1, 0)
	case PerQuarter:
		return t.AddDate(0, 3, 0)
	case PerYear:
		return t.AddDate(1, 0, 0)
	default:
		panic(fmt.Sprintf("intervals: unsupported grouping %d", int(g)))
	}
}

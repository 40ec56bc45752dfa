package intervals

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidRange is returned when end is before begin. A misordered
	// range fails hard so callers cannot mistake it for "no data".
	ErrInvalidRange = errors.New("intervals: end before begin")

	// ErrOutOfRange is returned when an input or computed boundary falls
	// outside the supported calendar range (years 1 through 9999).
	ErrOutOfRange = errors.New("intervals: instant outside supported calendar range")
)

const (
	minYear = 1
	maxYear = 9999
)

func checkYear(t time.Time) error {
	if y := t.Year(); y < minYear || y > maxYear {
		return fmt.Errorf("%w: year %d", ErrOutOfRange, y)
	}
	return nil
}

// Generator holds the configuration for interval generation. The zero value
// is not useful; start from NewGenerator and chain the With/Without methods.
// Generator is a plain value, so every method returns an updated copy and
// concurrent use of a configured Generator is safe.
type Generator struct {
	grouping       Grouping
	offsetWestSecs int
	precision      time.Duration
	extendBegin    bool
	extendEnd      bool
}

// NewGenerator returns the default configuration: per-day grouping, zero
// offset, one millisecond precision, and both extension flags enabled.
func NewGenerator() Generator {
	return Generator{
		grouping:    PerDay,
		precision:   time.Millisecond,
		extendBegin: true,
		extendEnd:   true,
	}
}

// WithGrouping sets the calendar granularity.
func (g Generator) WithGrouping(grouping Grouping) Generator {
	g.grouping = grouping
	return g
}

// WithOffsetWestSecs sets the alignment offset in seconds west of UTC.
// Positive values shift boundaries behind UTC, negative values ahead.
func (g Generator) WithOffsetWestSecs(seconds int) Generator {
	g.offsetWestSecs = seconds
	return g
}

// WithPrecision sets the gap between one interval's end and the next
// interval's start. The value is not validated; callers pick a precision
// finer than the grouping they care about.
func (g Generator) WithPrecision(precision time.Duration) Generator {
	g.precision = precision
	return g
}

// WithoutExtendedBegin makes the first interval start on the first boundary
// at or after begin instead of the boundary before it.
func (g Generator) WithoutExtendedBegin() Generator {
	g.extendBegin = false
	return g
}

// WithoutExtendedEnd makes the last interval end on or before end instead of
// reaching to the boundary after it.
func (g Generator) WithoutExtendedEnd() Generator {
	g.extendEnd = false
	return g
}

// WithoutExtension disables both extensions, so all intervals lie fully
// inside [begin, end].
func (g Generator) WithoutExtension() Generator {
	g.extendBegin = false
	g.extendEnd = false
	return g
}

// Intervals partitions [begin, end] into calendar-aligned intervals and
// returns them ordered by start, normalized to UTC. begin and end may carry
// any fixed UTC offset. A begin or end lying exactly on a boundary counts as
// on that boundary for both extension flags.
func (g Generator) Intervals(begin, end time.Time) ([]Interval, error) {
	if end.Before(begin) {
		return nil, fmt.Errorf("%w: begin=%s end=%s",
			ErrInvalidRange, begin.UTC().Format(time.RFC3339Nano), end.UTC().Format(time.RFC3339Nano))
	}
	if err := checkYear(begin); err != nil {
		return nil, err
	}
	if err := checkYear(end); err != nil {
		return nil, err
	}

	loc := locationWest(g.offsetWestSecs)
	cur := g.grouping.truncate(begin.In(loc))
	if !g.extendBegin && cur.Before(begin) {
		cur = g.grouping.next(cur)
	}

	var result []Interval
	for cur.Before(end) {
		upper := g.grouping.next(cur)
		// The end is recomputed from the exact boundary each iteration, so
		// the precision gap never accumulates across intervals.
		result = append(result, Interval{Start: cur.UTC(), End: upper.Add(-g.precision).UTC()})
		cur = upper
	}
	if g.extendEnd && cur.Equal(end) {
		upper := g.grouping.next(cur)
		result = append(result, Interval{Start: cur.UTC(), End: upper.Add(-g.precision).UTC()})
		cur = upper
	}
	if !g.extendEnd {
		// Drop a trailing interval whose upper boundary overshoots end. Only
		// the last interval can cross it.
		if n := len(result); n > 0 && result[n-1].End.Add(g.precision).After(end) {
			result = result[:n-1]
		}
	}

	if err := checkYear(cur); err != nil {
		return nil, err
	}
	return result, nil
}

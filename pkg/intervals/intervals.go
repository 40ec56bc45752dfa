// Package intervals partitions arbitrary time ranges into contiguous,
// calendar-aligned intervals grouped per hour, day, week, month, quarter or
// year.
//
// Boundaries can be shifted by a signed offset west of UTC so that e.g. daily
// intervals start at midnight of a local wall clock instead of midnight UTC.
// Consecutive intervals keep a fixed, configurable gap (1ms by default)
// between one interval's end and the next interval's start. All returned
// instants are normalized to UTC.
package intervals

import "time"

// Interval is an ordered pair of UTC instants with Start before End.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Contains reports whether t lies within the interval, inclusive on both
// sides.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

// ExtendedUTCIntervals returns intervals of the given grouping covering
// [begin, end] with default options: 1ms precision and both ends extended to
// fully enclose the range.
func ExtendedUTCIntervals(begin, end time.Time, grouping Grouping, offsetWestSecs int) ([]Interval, error) {
	return NewGenerator().
		WithGrouping(grouping).
		WithOffsetWestSecs(offsetWestSecs).
		Intervals(begin, end)
}

// UTCIntervalsOpts returns intervals of the given grouping covering
// [begin, end] with fully explicit options.
func UTCIntervalsOpts(begin, end time.Time, grouping Grouping, offsetWestSecs int,
	precision time.Duration, extendBegin, extendEnd bool) ([]Interval, error) {
	gen := NewGenerator().
		WithGrouping(grouping).
		WithOffsetWestSecs(offsetWestSecs).
		WithPrecision(precision)
	if !extendBegin {
		gen = gen.WithoutExtendedBegin()
	}
	if !extendEnd {
		gen = gen.WithoutExtendedEnd()
	}
	return gen.Intervals(begin, end)
}

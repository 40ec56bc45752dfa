package intervals

import (
	"errors"
	"testing"
	"time"
)

func utcMilli(y int, m time.Month, d, hh, mm, ss, ms int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, ms*int(time.Millisecond), time.UTC)
}

func assertIntervals(t *testing.T, got, want []Interval) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d intervals, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) {
			t.Fatalf("interval %d = [%v, %v], want [%v, %v]",
				i, got[i].Start, got[i].End, want[i].Start, want[i].End)
		}
	}
}

func TestDailyIntervalsDefaults(t *testing.T) {
	begin := utc(2022, time.June, 25, 8, 23, 45)
	end := time.Date(2022, time.June, 27, 9, 31, 12, 0, time.UTC)

	got, err := NewGenerator().Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	assertIntervals(t, got, []Interval{
		{utc(2022, time.June, 25, 0, 0, 0), utcMilli(2022, time.June, 25, 23, 59, 59, 999)},
		{utc(2022, time.June, 26, 0, 0, 0), utcMilli(2022, time.June, 26, 23, 59, 59, 999)},
		{utc(2022, time.June, 27, 0, 0, 0), utcMilli(2022, time.June, 27, 23, 59, 59, 999)},
	})
}

func TestDailyIntervalsFromFixedOffsetInputs(t *testing.T) {
	// Inputs in CEST; outputs are normalized to UTC and cover the UTC days
	// the instants actually fall on.
	cest := time.FixedZone("CEST", 2*3600)
	begin := time.Date(2022, time.September, 25, 1, 23, 45, 0, cest)
	end := time.Date(2022, time.September, 26, 1, 23, 45, 0, cest)

	got, err := NewGenerator().Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	assertIntervals(t, got, []Interval{
		{utc(2022, time.September, 24, 0, 0, 0), utcMilli(2022, time.September, 24, 23, 59, 59, 999)},
		{utc(2022, time.September, 25, 0, 0, 0), utcMilli(2022, time.September, 25, 23, 59, 59, 999)},
	})
	for _, iv := range got {
		if loc := iv.Start.Location(); loc != time.UTC {
			t.Fatalf("start location = %v, want UTC", loc)
		}
	}
}

func TestExtensionFlagMatrix(t *testing.T) {
	begin := utc(2022, time.October, 29, 8, 23, 45)
	end := utc(2022, time.November, 1, 8, 23, 45)

	cases := []struct {
		name        string
		extendBegin bool
		extendEnd   bool
		wantLen     int
	}{
		{"both off", false, false, 2},
		{"begin only", true, false, 3},
		{"end only", false, true, 3},
		{"both on", true, true, 4},
	}
	for _, tc := range cases {
		got, err := UTCIntervalsOpts(begin, end, PerDay, 0, time.Millisecond, tc.extendBegin, tc.extendEnd)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(got) != tc.wantLen {
			t.Fatalf("%s: got %d intervals, want %d", tc.name, len(got), tc.wantLen)
		}
		first, last := got[0], got[len(got)-1]
		if tc.extendBegin && first.Start.After(begin) {
			t.Fatalf("%s: first start %v after begin %v", tc.name, first.Start, begin)
		}
		if !tc.extendBegin && first.Start.Before(begin) {
			t.Fatalf("%s: first start %v before begin %v", tc.name, first.Start, begin)
		}
		if tc.extendEnd && last.End.Before(end) {
			t.Fatalf("%s: last end %v before end %v", tc.name, last.End, end)
		}
		if !tc.extendEnd && last.End.After(end) {
			t.Fatalf("%s: last end %v after end %v", tc.name, last.End, end)
		}
	}
}

func TestPrecisionVariants(t *testing.T) {
	begin := utc(2022, time.October, 29, 8, 23, 45)
	end := utc(2022, time.November, 1, 8, 23, 45)

	for _, precision := range []time.Duration{time.Millisecond, time.Microsecond, time.Nanosecond} {
		got, err := UTCIntervalsOpts(begin, end, PerDay, 0, precision, false, false)
		if err != nil {
			t.Fatalf("precision %v: %v", precision, err)
		}
		if len(got) == 0 {
			t.Fatalf("precision %v: no intervals", precision)
		}
		for _, iv := range got {
			if hh, mm, ss := iv.Start.Clock(); hh != 0 || mm != 0 || ss != 0 {
				t.Fatalf("precision %v: start %v not at midnight", precision, iv.Start)
			}
			wantEnd := iv.Start.AddDate(0, 0, 1).Add(-precision)
			if !iv.End.Equal(wantEnd) {
				t.Fatalf("precision %v: end %v, want %v", precision, iv.End, wantEnd)
			}
		}
	}
}

// The precision gap is recomputed from the exact boundary each step, so it
// must not drift even across hundreds of intervals.
func TestPrecisionDoesNotAccumulate(t *testing.T) {
	begin := utc(2021, time.January, 1, 0, 0, 0)
	end := utc(2022, time.December, 31, 0, 0, 0)

	got, err := NewGenerator().WithPrecision(time.Microsecond).Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	if len(got) < 700 {
		t.Fatalf("expected ~730 daily intervals, got %d", len(got))
	}
	for i, iv := range got {
		boundary := iv.End.Add(time.Microsecond)
		if b := BoundaryAtOrBefore(boundary, PerDay, 0); !b.Equal(boundary) {
			t.Fatalf("interval %d: end+precision %v is not a boundary", i, boundary)
		}
		if i > 0 && !got[i-1].End.Add(time.Microsecond).Equal(iv.Start) {
			t.Fatalf("interval %d: gap to predecessor is not exactly the precision", i)
		}
	}
}

func TestWeeklyIntervals(t *testing.T) {
	begin := utc(2022, time.October, 4, 8, 23, 45)
	end := utc(2022, time.October, 18, 8, 23, 45)

	got, err := NewGenerator().WithGrouping(PerWeek).Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	assertIntervals(t, got, []Interval{
		{utc(2022, time.October, 3, 0, 0, 0), utcMilli(2022, time.October, 9, 23, 59, 59, 999)},
		{utc(2022, time.October, 10, 0, 0, 0), utcMilli(2022, time.October, 16, 23, 59, 59, 999)},
		{utc(2022, time.October, 17, 0, 0, 0), utcMilli(2022, time.October, 23, 23, 59, 59, 999)},
	})
}

func TestWeeklyIntervalsOverAYear(t *testing.T) {
	begin := utc(2021, time.September, 9, 8, 23, 45)
	end := utc(2022, time.September, 8, 8, 23, 45)

	got, err := NewGenerator().WithGrouping(PerWeek).Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	if len(got) != 53 {
		t.Fatalf("got %d weekly intervals, want 53", len(got))
	}
	for _, iv := range got {
		if iv.Start.Weekday() != time.Monday {
			t.Fatalf("start %v is not a Monday", iv.Start)
		}
		if iv.End.Weekday() != time.Sunday {
			t.Fatalf("end %v is not a Sunday", iv.End)
		}
	}
}

func TestWeeklyMicrosecondEastOffsetNoExtension(t *testing.T) {
	// One hour east of UTC (offset west is negative): local Monday midnight
	// is Sunday 23:00 UTC.
	begin := utc(2022, time.October, 2, 8, 23, 45)
	end := utc(2022, time.October, 18, 8, 23, 45)

	got, err := NewGenerator().
		WithGrouping(PerWeek).
		WithOffsetWestSecs(-3600).
		WithPrecision(time.Microsecond).
		WithoutExtension().
		Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d intervals, want 2", len(got))
	}
	if want := utc(2022, time.October, 2, 23, 0, 0); !got[0].Start.Equal(want) {
		t.Fatalf("first start = %v, want %v", got[0].Start, want)
	}
	if !got[0].Start.After(begin) {
		t.Fatalf("first start %v not strictly after begin %v", got[0].Start, begin)
	}
	wantEnd := time.Date(2022, time.October, 16, 22, 59, 59, 999999000, time.UTC)
	if !got[1].End.Equal(wantEnd) {
		t.Fatalf("last end = %v, want %v", got[1].End, wantEnd)
	}
	if !got[1].End.Before(end) {
		t.Fatalf("last end %v not strictly before end %v", got[1].End, end)
	}
}

func TestMonthlyIntervalsWithWestOffset(t *testing.T) {
	pdt := time.FixedZone("PDT", -7*3600)
	begin := time.Date(2022, time.June, 10, 12, 23, 45, 0, pdt)
	end := time.Date(2022, time.August, 26, 12, 23, 45, 0, pdt)

	got, err := ExtendedUTCIntervals(begin, end, PerMonth, 7*3600)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	assertIntervals(t, got, []Interval{
		{utc(2022, time.June, 1, 7, 0, 0), utcMilli(2022, time.July, 1, 6, 59, 59, 999)},
		{utc(2022, time.July, 1, 7, 0, 0), utcMilli(2022, time.August, 1, 6, 59, 59, 999)},
		{utc(2022, time.August, 1, 7, 0, 0), utcMilli(2022, time.September, 1, 6, 59, 59, 999)},
	})
}

func TestMonthlyIntervalsAcrossLeapFebruary(t *testing.T) {
	begin := utc(2024, time.January, 15, 12, 0, 0)
	end := utc(2024, time.April, 10, 12, 0, 0)

	got, err := NewGenerator().WithGrouping(PerMonth).Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	assertIntervals(t, got, []Interval{
		{utc(2024, time.January, 1, 0, 0, 0), utcMilli(2024, time.January, 31, 23, 59, 59, 999)},
		{utc(2024, time.February, 1, 0, 0, 0), utcMilli(2024, time.February, 29, 23, 59, 59, 999)},
		{utc(2024, time.March, 1, 0, 0, 0), utcMilli(2024, time.March, 31, 23, 59, 59, 999)},
		{utc(2024, time.April, 1, 0, 0, 0), utcMilli(2024, time.April, 30, 23, 59, 59, 999)},
	})
}

func TestQuarterlyAndYearlyIntervals(t *testing.T) {
	quarterly, err := NewGenerator().WithGrouping(PerQuarter).
		Intervals(utc(2022, time.February, 15, 0, 0, 0), utc(2022, time.September, 1, 0, 0, 0))
	if err != nil {
		t.Fatalf("quarterly: %v", err)
	}
	assertIntervals(t, quarterly, []Interval{
		{utc(2022, time.January, 1, 0, 0, 0), utcMilli(2022, time.March, 31, 23, 59, 59, 999)},
		{utc(2022, time.April, 1, 0, 0, 0), utcMilli(2022, time.June, 30, 23, 59, 59, 999)},
		{utc(2022, time.July, 1, 0, 0, 0), utcMilli(2022, time.September, 30, 23, 59, 59, 999)},
	})

	yearly, err := NewGenerator().WithGrouping(PerYear).
		Intervals(utc(2023, time.June, 1, 0, 0, 0), utc(2025, time.February, 1, 0, 0, 0))
	if err != nil {
		t.Fatalf("yearly: %v", err)
	}
	assertIntervals(t, yearly, []Interval{
		{utc(2023, time.January, 1, 0, 0, 0), utcMilli(2023, time.December, 31, 23, 59, 59, 999)},
		{utc(2024, time.January, 1, 0, 0, 0), utcMilli(2024, time.December, 31, 23, 59, 59, 999)},
		{utc(2025, time.January, 1, 0, 0, 0), utcMilli(2025, time.December, 31, 23, 59, 59, 999)},
	})
}

func TestBeginExactlyOnBoundary(t *testing.T) {
	begin := utc(2022, time.June, 25, 0, 0, 0)
	end := utc(2022, time.June, 26, 12, 0, 0)

	// An exact coincidence counts as "on" the boundary: disabling the begin
	// extension must not skip the first interval.
	got, err := NewGenerator().WithoutExtendedBegin().Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	if len(got) == 0 || !got[0].Start.Equal(begin) {
		t.Fatalf("first interval should start exactly at begin, got %v", got)
	}

	// Same with the extension enabled.
	extended, err := NewGenerator().Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	if !extended[0].Start.Equal(begin) {
		t.Fatalf("extended first start = %v, want %v", extended[0].Start, begin)
	}
}

func TestEndExactlyOnBoundary(t *testing.T) {
	begin := utc(2022, time.June, 25, 8, 0, 0)
	end := utc(2022, time.June, 27, 0, 0, 0)

	// Extended: one more interval starting exactly at end.
	extended, err := NewGenerator().Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	if len(extended) != 3 {
		t.Fatalf("extended: got %d intervals, want 3", len(extended))
	}
	if !extended[2].Start.Equal(end) {
		t.Fatalf("extended last start = %v, want %v", extended[2].Start, end)
	}

	// Not extended: the interval closing exactly at end stays.
	trimmed, err := NewGenerator().WithoutExtendedEnd().Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	if len(trimmed) != 2 {
		t.Fatalf("trimmed: got %d intervals, want 2", len(trimmed))
	}
	if want := utcMilli(2022, time.June, 26, 23, 59, 59, 999); !trimmed[1].End.Equal(want) {
		t.Fatalf("trimmed last end = %v, want %v", trimmed[1].End, want)
	}
}

func TestSubUnitRangeWithoutExtensionIsEmpty(t *testing.T) {
	begin := utc(2022, time.October, 29, 8, 23, 45)
	end := utc(2022, time.October, 29, 10, 23, 45)

	got, err := NewGenerator().WithoutExtension().Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestMisorderedRangeFails(t *testing.T) {
	begin := utc(2022, time.November, 29, 8, 23, 45)
	end := utc(2022, time.October, 1, 8, 23, 45)

	if _, err := NewGenerator().Intervals(begin, end); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := ExtendedUTCIntervals(begin, end, PerDay, 0); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange from convenience wrapper, got %v", err)
	}
}

func TestOutOfRangeFails(t *testing.T) {
	end := utc(9999, time.December, 31, 10, 0, 0)
	if _, err := NewGenerator().Intervals(end.Add(-24*time.Hour), end); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange near the calendar maximum, got %v", err)
	}

	tooLate := time.Date(10001, time.January, 1, 0, 0, 0, 0, time.UTC)
	if _, err := NewGenerator().Intervals(tooLate, tooLate.Add(time.Hour)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for out-of-range input, got %v", err)
	}
}

func TestGeneratorValueSemantics(t *testing.T) {
	base := NewGenerator()
	weekly := base.WithGrouping(PerWeek).WithoutExtension()

	begin := utc(2022, time.June, 25, 8, 23, 45)
	end := utc(2022, time.June, 27, 9, 31, 12)

	// The derived configuration must not leak back into the base one.
	got, err := base.Intervals(begin, end)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("base generator changed by derived config: got %d intervals, want 3", len(got))
	}
	if _, err := weekly.Intervals(begin, end); err != nil {
		t.Fatalf("weekly: %v", err)
	}
}

func TestOffsetNegationInvariance(t *testing.T) {
	begin := utc(2022, time.June, 10, 19, 23, 45)
	end := utc(2022, time.August, 26, 19, 23, 45)

	for _, offset := range []int{7200, -7200, 25200} {
		west := time.Duration(offset) * time.Second
		shifted, err := ExtendedUTCIntervals(begin, end, PerDay, offset)
		if err != nil {
			t.Fatalf("offset %d: %v", offset, err)
		}
		plain, err := ExtendedUTCIntervals(begin.Add(-west), end.Add(-west), PerDay, 0)
		if err != nil {
			t.Fatalf("offset %d: %v", offset, err)
		}
		if len(shifted) != len(plain) {
			t.Fatalf("offset %d: %d vs %d intervals", offset, len(shifted), len(plain))
		}
		for i := range shifted {
			if !shifted[i].Start.Equal(plain[i].Start.Add(west)) || !shifted[i].End.Equal(plain[i].End.Add(west)) {
				t.Fatalf("offset %d: interval %d mismatch", offset, i)
			}
		}
	}
}

func TestIntervalHelpers(t *testing.T) {
	iv := Interval{Start: utc(2022, time.June, 25, 0, 0, 0), End: utcMilli(2022, time.June, 25, 23, 59, 59, 999)}
	if want := 24*time.Hour - time.Millisecond; iv.Duration() != want {
		t.Fatalf("Duration = %v, want %v", iv.Duration(), want)
	}
	if !iv.Contains(iv.Start) || !iv.Contains(iv.End) {
		t.Fatalf("interval should contain both of its endpoints")
	}
	if iv.Contains(iv.End.Add(time.Millisecond)) {
		t.Fatalf("interval should not contain the next boundary")
	}
}

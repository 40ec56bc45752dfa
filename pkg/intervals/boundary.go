package intervals

import "time"

// locationWest returns a fixed-offset location displaced by offsetWestSecs
// seconds west of UTC (positive values are behind UTC). time.FixedZone takes
// an east-positive offset, hence the negation.
func locationWest(offsetWestSecs int) *time.Location {
	if offsetWestSecs == 0 {
		return time.UTC
	}
	return time.FixedZone("", -offsetWestSecs)
}

// BoundaryAtOrBefore returns the grouping boundary at or before t as a UTC
// instant. The instant is viewed in a wall clock shifted offsetWestSecs
// seconds west of UTC, truncated to the start of its enclosing grouping unit,
// and normalized back to UTC.
func BoundaryAtOrBefore(t time.Time, g Grouping, offsetWestSecs int) time.Time {
	return g.truncate(t.In(locationWest(offsetWestSecs))).UTC()
}

// NextBoundary returns the grouping boundary immediately following boundary
// as a UTC instant. boundary must itself be a grouping boundary under the
// same offset; any instant strictly between boundary and the returned value
// truncates back to boundary.
func NextBoundary(boundary time.Time, g Grouping, offsetWestSecs int) time.Time {
	return g.next(boundary.In(locationWest(offsetWestSecs))).UTC()
}

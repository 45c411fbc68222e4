package domain

import "time"

const millisPerDay = 86_400_000

// DateRange is a half-open stay interval [CheckIn, CheckOut): the guest
// occupies the room on check-in night and releases it on check-out day.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// IsValid reports whether the range is well-formed (check-out strictly
// after check-in).
func (r DateRange) IsValid() bool {
	return !r.CheckIn.IsZero() && !r.CheckOut.IsZero() && r.CheckOut.After(r.CheckIn)
}

// Nights returns the number of nights charged for the stay. Partial days
// round up, so a stay of any positive length is charged at least one night.
// The difference is wall-clock time, not calendar dates: a range crossing a
// DST transition can round to an unexpected night count.
func (r DateRange) Nights() int {
	diff := r.CheckOut.Sub(r.CheckIn).Milliseconds()
	if diff <= 0 {
		return 0
	}
	nights := diff / millisPerDay
	if diff%millisPerDay != 0 {
		nights++
	}
	return int(nights)
}

// Overlaps reports whether two half-open ranges intersect.
//
// The single test below is equivalent to enumerating the three cases:
//  1. other's check-in falls inside r,
//  2. other's check-out falls inside r,
//  3. other fully encloses r.
//
// Back-to-back stays do not overlap: a check-in on another stay's
// check-out day is allowed.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

// TruncateToDay zeroes the time-of-day component, keeping the location.
// Date comparisons against "today" go through this first.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package timesheet

import "time"

// Overlaps reports whether two half-open intervals [start1, end1) and
// [start2, end2) intersect. Back-to-back intervals (end1 == start2) do not
// overlap. Callers are responsible for ensuring end > start.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}

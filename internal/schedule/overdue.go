package schedule

import "time"

// IsOverdue reports whether a deadline-bearing item has slipped: the deadline
// is present, strictly before today (date-only, time of day ignored), and the
// item is not complete. Both the calendar styling and the goal tracker use
// this single predicate.
func IsOverdue(deadline string, progress int, now time.Time) bool {
	if deadline == "" {
		return false
	}
	if progress >= 100 {
		return false
	}
	return deadline < NormalizeDate(now)
}

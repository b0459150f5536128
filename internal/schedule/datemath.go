package schedule

import "time"

const dateLayout = "2006-01-02"

// NormalizeDate renders t as the canonical YYYY-MM-DD string in t's own
// location (local wall-clock, never UTC-shifted). These strings are the only
// date representation that crosses the store/grid boundary.
func NormalizeDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate is the inverse of NormalizeDate. The returned time is midnight
// local time on that date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

// IsSameDay compares two dates by their normalized string form.
func IsSameDay(a, b time.Time) bool {
	return NormalizeDate(a) == NormalizeDate(b)
}

// mondayIndex maps time.Weekday (Sunday=0) to a Monday-first index 0..6.
// Sunday is the last day of its own week, not the first of the next.
func mondayIndex(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}

// WeekDays returns the 7 consecutive dates of the Monday-first week
// containing anchor.
func WeekDays(anchor time.Time) []time.Time {
	start := anchor.AddDate(0, 0, -mondayIndex(anchor.Weekday()))
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthCell is one cell of the fixed 6x7 month grid.
type MonthCell struct {
	Date           time.Time
	IsCurrentMonth bool
}

// MonthDays returns exactly 42 cells for the month containing anchor: a
// Monday-relative leading pad from the previous month, every day of the
// month itself, and a computed trailing pad from the next month. Months that
// would fit in 4 or 5 rows still get 6, so the grid shape never changes.
func MonthDays(anchor time.Time) []MonthCell {
	year, month := anchor.Year(), anchor.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, anchor.Location())

	cells := make([]MonthCell, 0, 42)
	for i := mondayIndex(first.Weekday()); i > 0; i-- {
		cells = append(cells, MonthCell{Date: first.AddDate(0, 0, -i)})
	}
	for i := 0; i < daysInMonth(year, month); i++ {
		cells = append(cells, MonthCell{Date: first.AddDate(0, 0, i), IsCurrentMonth: true})
	}
	next := first.AddDate(0, 1, 0)
	for i := 0; len(cells) < 42; i++ {
		cells = append(cells, MonthCell{Date: next.AddDate(0, 0, i)})
	}
	return cells
}

// AddMonths steps anchor by delta calendar months, preserving the day of
// month where possible and clamping to the target month's length (Jan 31 +1
// month lands on Feb 28/29, not Mar 2/3).
func AddMonths(anchor time.Time, delta int) time.Time {
	y, m, d := anchor.Date()
	// Normalize via day 1 so the month step itself never overflows.
	first := time.Date(y, m, 1, 0, 0, 0, 0, anchor.Location())
	first = first.AddDate(0, delta, 0)
	return time.Date(first.Year(), first.Month(), clampDay(first.Year(), first.Month(), d), 0, 0, 0, 0, anchor.Location())
}

func daysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	max := daysInMonth(y, m)
	if d > max {
		return max
	}
	return d
}

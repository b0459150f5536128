package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestWeekDays_AlwaysMondayFirst(t *testing.T) {
	// 2024-06-10 is a Monday; walk every starting weekday of that week.
	for i := 0; i < 7; i++ {
		anchor := date(2024, time.June, 10+i)
		days := WeekDays(anchor)
		if len(days) != 7 {
			t.Fatalf("anchor %s: expected 7 days, got %d", NormalizeDate(anchor), len(days))
		}
		if days[0].Weekday() != time.Monday {
			t.Fatalf("anchor %s: first day is %s, want Monday", NormalizeDate(anchor), days[0].Weekday())
		}
		for j := 1; j < 7; j++ {
			if !days[j].Equal(days[j-1].AddDate(0, 0, 1)) {
				t.Fatalf("anchor %s: days not consecutive at %d", NormalizeDate(anchor), j)
			}
		}
	}
}

func TestWeekDays_SundayBelongsToItsOwnWeek(t *testing.T) {
	// 2024-06-16 is a Sunday; its week starts Monday 2024-06-10.
	days := WeekDays(date(2024, time.June, 16))
	if got := NormalizeDate(days[0]); got != "2024-06-10" {
		t.Fatalf("expected week start 2024-06-10, got %s", got)
	}
	if got := NormalizeDate(days[6]); got != "2024-06-16" {
		t.Fatalf("expected Sunday as last day, got %s", got)
	}
}

func TestMonthDays_Always42Cells(t *testing.T) {
	for y := 2020; y <= 2026; y++ {
		for m := time.January; m <= time.December; m++ {
			cells := MonthDays(date(y, m, 15))
			if len(cells) != 42 {
				t.Fatalf("%d-%02d: expected 42 cells, got %d", y, m, len(cells))
			}
			inMonth := 0
			for _, c := range cells {
				if c.IsCurrentMonth {
					inMonth++
				}
			}
			if want := daysInMonth(y, m); inMonth != want {
				t.Fatalf("%d-%02d: expected %d in-month cells, got %d", y, m, want, inMonth)
			}
		}
	}
}

func TestMonthDays_June2024Padding(t *testing.T) {
	// June 2024 has 30 days and starts on a Saturday: 5 leading May days,
	// 30 June days, 7 trailing July days.
	cells := MonthDays(date(2024, time.June, 12))
	if got := NormalizeDate(cells[0].Date); got != "2024-05-27" {
		t.Fatalf("expected grid to open on 2024-05-27, got %s", got)
	}
	lead := 0
	for _, c := range cells {
		if c.IsCurrentMonth {
			break
		}
		lead++
	}
	if lead != 5 {
		t.Fatalf("expected 5 leading padding days, got %d", lead)
	}
	trail := 0
	for i := len(cells) - 1; i >= 0 && !cells[i].IsCurrentMonth; i-- {
		trail++
	}
	if trail != 7 {
		t.Fatalf("expected 7 trailing padding days, got %d", trail)
	}
	if got := NormalizeDate(cells[41].Date); got != "2024-07-07" {
		t.Fatalf("expected grid to close on 2024-07-07, got %s", got)
	}
}

func TestAddMonths_ClampsDayOfMonth(t *testing.T) {
	got := AddMonths(date(2024, time.January, 31), 1)
	if NormalizeDate(got) != "2024-02-29" {
		t.Fatalf("expected 2024-02-29, got %s", NormalizeDate(got))
	}
	got = AddMonths(date(2023, time.January, 31), 1)
	if NormalizeDate(got) != "2023-02-28" {
		t.Fatalf("expected 2023-02-28, got %s", NormalizeDate(got))
	}
	got = AddMonths(date(2024, time.March, 15), -1)
	if NormalizeDate(got) != "2024-02-15" {
		t.Fatalf("expected 2024-02-15, got %s", NormalizeDate(got))
	}
}

func TestNormalizeDate_RoundTrips(t *testing.T) {
	d := date(2024, time.June, 5)
	s := NormalizeDate(d)
	if s != "2024-06-05" {
		t.Fatalf("expected 2024-06-05, got %s", s)
	}
	back, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !IsSameDay(d, back) {
		t.Fatalf("round trip lost the day: %s vs %s", NormalizeDate(d), NormalizeDate(back))
	}
}

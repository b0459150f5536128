package schedule

import (
	"testing"
	"time"
)

func TestIsOverdue(t *testing.T) {
	now := date(2024, time.June, 12)

	cases := []struct {
		name     string
		deadline string
		progress int
		want     bool
	}{
		{"past deadline incomplete", "2023-01-01", 50, true},
		{"past deadline complete", "2023-01-01", 100, false},
		{"no deadline", "", 0, false},
		{"deadline today", "2024-06-12", 0, false},
		{"deadline tomorrow", "2024-06-13", 0, false},
		{"yesterday zero progress", "2024-06-11", 0, true},
		{"past deadline over-complete", "2023-01-01", 120, false},
	}
	for _, tc := range cases {
		if got := IsOverdue(tc.deadline, tc.progress, now); got != tc.want {
			t.Fatalf("%s: IsOverdue(%q, %d) = %v, want %v", tc.name, tc.deadline, tc.progress, got, tc.want)
		}
	}
}

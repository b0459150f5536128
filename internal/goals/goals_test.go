package goals

import (
	"fmt"
	"testing"
	"time"

	"cozy-cli/internal/model"
)

func newTestTracker(sections []model.GoalSection) (*Tracker, *[]model.GoalSection) {
	secs := sections
	n := 0
	newID := func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
	return NewTracker(&secs, newID), &secs
}

func TestAddSection_ComesWithStarterGoal(t *testing.T) {
	tr, secs := newTestTracker(nil)

	sec := tr.AddSection()
	if sec.Title != DefaultSectionTitle {
		t.Fatalf("title = %q", sec.Title)
	}
	if len(sec.Goals) != 1 || sec.Goals[0].Title != DefaultGoalTitle {
		t.Fatalf("starter goal missing: %+v", sec.Goals)
	}
	if len(*secs) != 1 {
		t.Fatalf("section not appended")
	}
}

func TestRemoveSection(t *testing.T) {
	tr, secs := newTestTracker([]model.GoalSection{
		{ID: "sec-a", Title: "A"},
		{ID: "sec-b", Title: "B"},
	})

	tr.RemoveSection("sec-a")
	if len(*secs) != 1 || (*secs)[0].ID != "sec-b" {
		t.Fatalf("got %+v", *secs)
	}

	tr.RemoveSection("sec-missing")
	if len(*secs) != 1 {
		t.Fatalf("unknown id should be a no-op, got %+v", *secs)
	}
}

func TestRenameSection(t *testing.T) {
	tr, secs := newTestTracker([]model.GoalSection{{ID: "sec-a", Title: "A"}})

	tr.RenameSection("sec-a", "Craft")
	if (*secs)[0].Title != "Craft" {
		t.Fatalf("got %q", (*secs)[0].Title)
	}

	tr.RenameSection("sec-missing", "x")
}

func TestAddGoal(t *testing.T) {
	tr, secs := newTestTracker([]model.GoalSection{{ID: "sec-a"}})

	g, ok := tr.AddGoal("sec-a")
	if !ok || g.Title != DefaultGoalTitle {
		t.Fatalf("got %+v ok=%v", g, ok)
	}
	if len((*secs)[0].Goals) != 1 {
		t.Fatalf("goal not appended")
	}

	if _, ok := tr.AddGoal("sec-missing"); ok {
		t.Fatalf("expected miss on unknown section")
	}
}

func TestUpdateGoal_LeavesProgressAlone(t *testing.T) {
	tr, secs := newTestTracker([]model.GoalSection{
		{ID: "sec-a", Goals: []model.Goal{{ID: "goal-1", Title: "Old", Progress: 50}}},
	})

	tr.UpdateGoal("sec-a", "goal-1", "New title", "2025-01-15")

	g := (*secs)[0].Goals[0]
	if g.Title != "New title" || g.Deadline != "2025-01-15" {
		t.Fatalf("got %+v", g)
	}
	if g.Progress != 50 {
		t.Fatalf("progress changed: %d", g.Progress)
	}
}

func TestBumpProgress_StepsAndCaps(t *testing.T) {
	tr, secs := newTestTracker([]model.GoalSection{
		{ID: "sec-a", Goals: []model.Goal{{ID: "goal-1", Progress: 85}}},
	})

	if tr.BumpProgress("sec-a", "goal-1") {
		t.Fatalf("85 -> 95 should not complete")
	}
	if got := (*secs)[0].Goals[0].Progress; got != 95 {
		t.Fatalf("progress = %d, want 95", got)
	}

	if !tr.BumpProgress("sec-a", "goal-1") {
		t.Fatalf("95 -> 100 should complete")
	}
	if got := (*secs)[0].Goals[0].Progress; got != 100 {
		t.Fatalf("progress = %d, want 100", got)
	}

	if tr.BumpProgress("sec-a", "goal-1") {
		t.Fatalf("bump at 100 must not re-trigger completion")
	}
	if got := (*secs)[0].Goals[0].Progress; got != 100 {
		t.Fatalf("progress = %d, want capped 100", got)
	}
}

func TestBumpProgress_UnknownGoal(t *testing.T) {
	tr, _ := newTestTracker([]model.GoalSection{{ID: "sec-a"}})
	if tr.BumpProgress("sec-a", "goal-missing") {
		t.Fatalf("unknown goal should not complete anything")
	}
}

func TestAnyOverdue(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		secs []model.GoalSection
		want bool
	}{
		{"empty", nil, false},
		{"future deadline", []model.GoalSection{
			{Goals: []model.Goal{{Deadline: "2024-06-20", Progress: 10}}},
		}, false},
		{"past but complete", []model.GoalSection{
			{Goals: []model.Goal{{Deadline: "2024-06-01", Progress: 100}}},
		}, false},
		{"past and incomplete", []model.GoalSection{
			{Goals: []model.Goal{{Deadline: "2024-06-01", Progress: 90}}},
		}, true},
		{"no deadline", []model.GoalSection{
			{Goals: []model.Goal{{Progress: 0}}},
		}, false},
	}
	for _, tc := range cases {
		if got := AnyOverdue(tc.secs, now); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

package companion

import (
	"strings"
	"testing"
	"time"

	"cozy-cli/internal/model"
)

func testEvents() []model.CalendarEvent {
	return []model.CalendarEvent{
		{ID: "ev-1", Title: "Team Meeting", Date: "2024-06-10", StartHour: 9, Duration: 1,
			Description: "Bring the roadmap."},
		{ID: "ev-2", Title: "Lunch", Date: "2024-06-10", StartHour: 12, Duration: 1},
		{ID: "ev-3", Title: "Focus block", Date: "2024-06-11", StartHour: 14, Duration: 2,
			Description: "meeting prep"},
	}
}

func TestNewAgent_DefaultsName(t *testing.T) {
	if a := NewAgent(""); a.Name != DefaultName {
		t.Fatalf("name = %q", a.Name)
	}
	if a := NewAgent("Nian"); a.Name != "Nian" {
		t.Fatalf("name = %q", a.Name)
	}
}

func TestSearch_HitsGetIntroLinesOutro(t *testing.T) {
	a := NewAgent("")

	lines := a.Search(testEvents(), "meeting")
	// Intro + two hits (title match and description match) + outro.
	if len(lines) != 4 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if lines[0] != searchIntro {
		t.Fatalf("first line = %q", lines[0])
	}
	if want := "You have 'Team Meeting' on June 10 at 9:00! (Note: Bring the roadmap.)"; lines[1] != want {
		t.Fatalf("hit line = %q, want %q", lines[1], want)
	}
	if want := "You have 'Focus block' on June 11 at 14:00! (Note: meeting prep)"; lines[2] != want {
		t.Fatalf("hit line = %q, want %q", lines[2], want)
	}
	if lines[3] != searchOutro {
		t.Fatalf("last line = %q", lines[3])
	}
}

func TestSearch_NoDescriptionSkipsNoteSuffix(t *testing.T) {
	a := NewAgent("")

	lines := a.Search(testEvents(), "lunch")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if strings.Contains(lines[1], "Note:") {
		t.Fatalf("unexpected note suffix: %q", lines[1])
	}
	if want := "You have 'Lunch' on June 10 at 12:00!"; lines[1] != want {
		t.Fatalf("hit line = %q, want %q", lines[1], want)
	}
}

func TestSearch_NoHits(t *testing.T) {
	a := NewAgent("")

	lines := a.Search(testEvents(), "dentist")
	if len(lines) != 1 || lines[0] != noResultLine {
		t.Fatalf("got %q", lines)
	}
}

func TestSearch_BlankQuery(t *testing.T) {
	a := NewAgent("")
	if lines := a.Search(testEvents(), "   "); lines != nil {
		t.Fatalf("got %q", lines)
	}
}

func TestRename(t *testing.T) {
	a := NewAgent("")

	line, ok := a.Rename("  Nian ")
	if !ok || a.Name != "Nian" {
		t.Fatalf("name = %q ok=%v", a.Name, ok)
	}
	if want := "You want to call me Nian? Fine, I like it!"; line != want {
		t.Fatalf("reaction = %q", line)
	}

	if _, ok := a.Rename("  "); ok {
		t.Fatalf("blank rename should be rejected")
	}
	if a.Name != "Nian" {
		t.Fatalf("name changed on rejected rename: %q", a.Name)
	}
}

func TestRunaway(t *testing.T) {
	a := NewAgent("")
	a.Now = func() time.Time {
		return time.Date(2024, time.June, 12, 10, 0, 0, 0, time.Local)
	}

	ok := []model.GoalSection{{Goals: []model.Goal{{Deadline: "2024-06-20", Progress: 10}}}}
	if a.Runaway(ok) {
		t.Fatalf("future deadline should not trigger runaway")
	}

	slipped := []model.GoalSection{{Goals: []model.Goal{{Deadline: "2024-06-01", Progress: 90}}}}
	if !a.Runaway(slipped) {
		t.Fatalf("overdue goal should trigger runaway")
	}
}

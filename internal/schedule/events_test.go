package schedule

import (
	"testing"

	"cozy-cli/internal/model"
)

func testEvent(id, date string, hour int) model.CalendarEvent {
	return model.CalendarEvent{
		ID:        id,
		Title:     "Event " + id,
		Date:      date,
		StartHour: hour,
		Duration:  1,
		Color:     DefaultPalette[0],
	}
}

func TestEventStore_UpdateNoCrossTalk(t *testing.T) {
	s := NewEventStore(nil)
	s.Add(testEvent("1", "2024-06-10", 9))
	s.Add(testEvent("2", "2024-06-10", 12))

	first, _ := s.Find("1")

	other := testEvent("2", "2024-06-11", 14)
	other.Title = "Moved"
	s.Update(other)

	got, ok := s.Find("1")
	if !ok {
		t.Fatalf("event 1 disappeared")
	}
	if got != first {
		t.Fatalf("unrelated update changed event 1: %+v vs %+v", got, first)
	}
}

func TestEventStore_UpdateUnknownIDIsNoOp(t *testing.T) {
	s := NewEventStore([]model.CalendarEvent{testEvent("1", "2024-06-10", 9)})
	s.Update(testEvent("ghost", "2024-06-10", 9))
	if s.Len() != 1 {
		t.Fatalf("expected 1 event, got %d", s.Len())
	}
}

func TestEventStore_RemoveIsIdempotent(t *testing.T) {
	s := NewEventStore([]model.CalendarEvent{testEvent("1", "2024-06-10", 9)})
	s.Remove("1")
	s.Remove("1")
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d events", s.Len())
	}
}

func TestEventStore_ByDateFiltersExactly(t *testing.T) {
	s := NewEventStore([]model.CalendarEvent{
		testEvent("1", "2024-06-10", 9),
		testEvent("2", "2024-06-11", 9),
		testEvent("3", "2024-06-10", 15),
	})
	got := s.ByDate("2024-06-10")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected ByDate result: %+v", got)
	}
	if s.ByDate("2024-06-12") != nil {
		t.Fatalf("expected no events on empty day")
	}
}

func TestEventStore_AllReturnsSnapshot(t *testing.T) {
	s := NewEventStore([]model.CalendarEvent{testEvent("1", "2024-06-10", 9)})
	snap := s.All()
	snap[0].Title = "mutated"
	got, _ := s.Find("1")
	if got.Title == "mutated" {
		t.Fatalf("All returned a live reference into the store")
	}
}

func TestDeserializeEvents_FallsBackToSeed(t *testing.T) {
	seed := []model.CalendarEvent{testEvent("seed", "2024-06-10", 9)}

	if got := DeserializeEvents(nil, seed); len(got) != 1 || got[0].ID != "seed" {
		t.Fatalf("expected seed for absent data, got %+v", got)
	}
	if got := DeserializeEvents([]byte("{not json"), seed); len(got) != 1 || got[0].ID != "seed" {
		t.Fatalf("expected seed for malformed data, got %+v", got)
	}

	s := NewEventStore([]model.CalendarEvent{testEvent("1", "2024-06-10", 9)})
	raw, err := s.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if got := DeserializeEvents(raw, seed); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected stored events, got %+v", got)
	}
}

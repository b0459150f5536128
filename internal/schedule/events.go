package schedule

import (
	"encoding/json"

	"cozy-cli/internal/model"
)

// EventStore holds the in-memory event collection. It assigns no meaning to
// insertion order beyond stable iteration, and performs no validation:
// callers (the session and the editor surface) own the invariants.
type EventStore struct {
	events []model.CalendarEvent
}

func NewEventStore(seed []model.CalendarEvent) *EventStore {
	s := &EventStore{}
	s.events = append(s.events, seed...)
	return s
}

func (s *EventStore) Add(ev model.CalendarEvent) {
	s.events = append(s.events, ev)
}

// Update replaces the stored event with the same id wholesale. There is no
// partial merge: ev must be a complete event, typically reconstructed from a
// snapshot of the current one. An unknown id is a silent no-op, which keeps
// stale callbacks (a drag finishing after a delete) harmless.
func (s *EventStore) Update(ev model.CalendarEvent) {
	for i := range s.events {
		if s.events[i].ID == ev.ID {
			s.events[i] = ev
			return
		}
	}
}

// Remove deletes the event with the given id. Unknown ids are a no-op.
func (s *EventStore) Remove(id string) {
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return
		}
	}
}

func (s *EventStore) Find(id string) (model.CalendarEvent, bool) {
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.CalendarEvent{}, false
}

// All returns a snapshot copy of the collection.
func (s *EventStore) All() []model.CalendarEvent {
	out := make([]model.CalendarEvent, len(s.events))
	copy(out, s.events)
	return out
}

// ByDate returns the events whose normalized date equals date, in store order.
func (s *EventStore) ByDate(date string) []model.CalendarEvent {
	var out []model.CalendarEvent
	for _, ev := range s.events {
		if ev.Date == date {
			out = append(out, ev)
		}
	}
	return out
}

func (s *EventStore) Len() int { return len(s.events) }

// Serialize renders the collection as a JSON array for the persistence
// collaborator.
func (s *EventStore) Serialize() ([]byte, error) {
	return json.Marshal(s.events)
}

// DeserializeEvents parses a stored JSON array. Absent or malformed input is
// treated the same way: the caller-supplied seed is returned instead. The
// store never crashes on bad persisted data.
func DeserializeEvents(raw []byte, seed []model.CalendarEvent) []model.CalendarEvent {
	if len(raw) == 0 {
		return seed
	}
	var events []model.CalendarEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		return seed
	}
	return events
}

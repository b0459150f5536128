package schedule

import (
	"time"

	"cozy-cli/internal/model"
)

type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
)

// DefaultEventTitle seeds newly created events.
const DefaultEventTitle = "New Event"

// Session is the transient interaction state over the event store: the
// (viewMode, anchor) navigation pair, the at-most-one event under edit, and
// the id of an event in flight during a drag. None of this is ever
// persisted; every session starts at "today, week view".
type Session struct {
	Mode   ViewMode
	Anchor time.Time

	Store *EventStore
	Cfg   Config

	// NewID mints ids for created events.
	NewID func() string

	// Now is split out so tests can pin "today". Nil means time.Now.
	Now func() time.Time

	// editing is a snapshot copy; in-progress edits never touch the store
	// until SaveEdit.
	editing    *model.CalendarEvent
	draggingID string
}

func NewSession(store *EventStore, cfg Config, newID func() string) *Session {
	s := &Session{Mode: ViewWeek, Store: store, Cfg: cfg, NewID: newID}
	s.Anchor = s.now()
	return s
}

func (s *Session) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Prev shifts the anchor one unit of the current view backwards.
func (s *Session) Prev() { s.shift(-1) }

// Next shifts the anchor one unit of the current view forwards.
func (s *Session) Next() { s.shift(1) }

func (s *Session) shift(dir int) {
	switch s.Mode {
	case ViewMonth:
		s.Anchor = AddMonths(s.Anchor, dir)
	case ViewWeek:
		s.Anchor = s.Anchor.AddDate(0, 0, 7*dir)
	default:
		s.Anchor = s.Anchor.AddDate(0, 0, dir)
	}
}

// Today re-anchors on the current date without changing the view mode.
func (s *Session) Today() { s.Anchor = s.now() }

// SetMode switches the view mode only; the anchor stays where it is, so
// switching from month to week while anchored on day 15 keeps day 15 as the
// reference point.
func (s *Session) SetMode(mode ViewMode) { s.Mode = mode }

// ClickMonthCell is the drill-down compound transition: anchor on the
// clicked day and switch to day view.
func (s *Session) ClickMonthCell(day time.Time) {
	s.Anchor = day
	s.Mode = ViewDay
}

// CreateAt handles double-click on an hour cell: a new event with default
// fields appears at (date, hour). It does not open the editor; the user
// clicks the fresh event to edit it.
func (s *Session) CreateAt(date string, hour int) model.CalendarEvent {
	ev := model.CalendarEvent{
		ID:        s.NewID(),
		Title:     DefaultEventTitle,
		Date:      date,
		StartHour: hour,
		Duration:  1,
		Color:     s.Cfg.Palette[0],
	}
	s.Store.Add(ev)
	return ev
}

// DragStart marks the event as in flight. Nothing else changes.
func (s *Session) DragStart(id string) { s.draggingID = id }

// Dragging reports the in-flight event id, if any.
func (s *Session) Dragging() (string, bool) {
	return s.draggingID, s.draggingID != ""
}

// Drop relocates the in-flight event to the target cell, touching only date
// and start hour. The drag clears unconditionally, so a drop with no event
// in flight or onto a deleted event is harmless. A drop back onto the origin
// cell still runs the update path; it just changes nothing.
func (s *Session) Drop(date string, hour int) {
	id := s.draggingID
	s.draggingID = ""
	if id == "" {
		return
	}
	ev, ok := s.Store.Find(id)
	if !ok {
		return
	}
	ev.Date = date
	ev.StartHour = hour
	s.Store.Update(ev)
}

// CancelDrag abandons an in-flight drag (drop outside any valid cell).
func (s *Session) CancelDrag() { s.draggingID = "" }

// OpenEditor targets the event for editing with a snapshot copy. Opening
// while another editor is open replaces the target; editors never stack.
func (s *Session) OpenEditor(id string) bool {
	ev, ok := s.Store.Find(id)
	if !ok {
		return false
	}
	snapshot := ev
	s.editing = &snapshot
	return true
}

// Editing returns the current snapshot under edit, if any.
func (s *Session) Editing() (model.CalendarEvent, bool) {
	if s.editing == nil {
		return model.CalendarEvent{}, false
	}
	return *s.editing, true
}

// SaveEdit replaces the event wholesale and closes the editor.
func (s *Session) SaveEdit(ev model.CalendarEvent) {
	s.Store.Update(ev)
	s.editing = nil
}

// DeleteEdit removes the event under edit and closes the editor.
func (s *Session) DeleteEdit() {
	if s.editing != nil {
		s.Store.Remove(s.editing.ID)
	}
	s.editing = nil
}

// CloseEditor discards the in-progress snapshot; the store is untouched.
func (s *Session) CloseEditor() { s.editing = nil }

// HeaderLabel is the title for the current (mode, anchor) pair.
func (s *Session) HeaderLabel() string { return HeaderLabel(s.Mode, s.Anchor) }

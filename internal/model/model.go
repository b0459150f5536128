package model

import "time"

// Note is a quick sticky-note style todo on the sidebar.
type Note struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Done    bool   `json:"isDone"`
	// Rotation is a cosmetic paper tilt in degrees (-3..3), fixed at creation.
	Rotation  float64   `json:"rotation"`
	CreatedAt time.Time `json:"createdAt"`
}

type IdeaCategory string

const (
	IdeaCategoryLife   IdeaCategory = "life"
	IdeaCategoryWork   IdeaCategory = "work"
	IdeaCategoryArt    IdeaCategory = "art"
	IdeaCategoryRandom IdeaCategory = "random"
)

// IdeaCategories lists the valid categories in display order.
func IdeaCategories() []IdeaCategory {
	return []IdeaCategory{IdeaCategoryLife, IdeaCategoryWork, IdeaCategoryArt, IdeaCategoryRandom}
}

type Idea struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Category  IdeaCategory `json:"category"`
	Content   string       `json:"content,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// CalendarEvent is a dated, timed entry on the calendar grid.
//
// Date is always the canonical local-wall-clock "YYYY-MM-DD" string; it is the
// sole date representation crossing the store/grid boundary. StartHour lies in
// the visible-hours window; Duration is whole hours, at least 1. The rendered
// end (StartHour+Duration) may run past the visible window; that clips
// visually and is not a data error. Events may overlap freely.
type CalendarEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartHour   int    `json:"startHour"`
	Duration    int    `json:"duration"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// Goal is one tracked goal inside a GoalSection. Deadline, when present, is a
// "YYYY-MM-DD" date string; Progress is 0..100.
type Goal struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Progress int    `json:"progress"`
	Deadline string `json:"deadline,omitempty"`
}

// GoalSection groups goals under one identity domain ("Core Skills", ...).
type GoalSection struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Goals []Goal `json:"goals"`
}

type ChatSender string

const (
	ChatSenderUser      ChatSender = "user"
	ChatSenderCompanion ChatSender = "companion"
)

type ChatMessage struct {
	Sender ChatSender `json:"sender"`
	Text   string     `json:"text"`
}

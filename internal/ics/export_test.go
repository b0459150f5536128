package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"cozy-cli/internal/model"
)

func TestExport_RoundTripsThroughParser(t *testing.T) {
	events := []model.CalendarEvent{
		{ID: "ev-1", Title: "Deep Work", Date: "2024-06-10", StartHour: 9, Duration: 2,
			Description: "Focus on new features."},
		{ID: "ev-2", Title: "Lunch", Date: "2024-06-10", StartHour: 12, Duration: 1},
	}
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.Local)

	var buf strings.Builder
	if err := Export(&buf, events, now); err != nil {
		t.Fatalf("export: %v", err)
	}

	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse back: %v", err)
	}
	ves := cal.Events()
	if len(ves) != 2 {
		t.Fatalf("got %d events", len(ves))
	}

	first := ves[0]
	if p := first.GetProperty(ical.ComponentPropertyUniqueId); p == nil || p.Value != "ev-1" {
		t.Fatalf("uid lost: %+v", p)
	}
	if p := first.GetProperty(ical.ComponentPropertySummary); p == nil || p.Value != "Deep Work" {
		t.Fatalf("summary lost: %+v", p)
	}
	if p := first.GetProperty(ical.ComponentPropertyDescription); p == nil || p.Value != "Focus on new features." {
		t.Fatalf("description lost: %+v", p)
	}

	start, err := first.GetStartAt()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	end, err := first.GetEndAt()
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if got := end.Sub(start); got != 2*time.Hour {
		t.Fatalf("duration = %v, want 2h", got)
	}

	second := ves[1]
	if p := second.GetProperty(ical.ComponentPropertyDescription); p != nil {
		t.Fatalf("empty description should be omitted, got %+v", p)
	}
}

func TestExport_BadDateFails(t *testing.T) {
	events := []model.CalendarEvent{{ID: "ev-x", Title: "Broken", Date: "not-a-date"}}
	var buf strings.Builder
	if err := Export(&buf, events, time.Now()); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

// Package ics renders the calendar as an iCalendar feed so events can be
// pulled into any external calendar client.
package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"cozy-cli/internal/model"
	"cozy-cli/internal/schedule"
)

const productID = "-//cozy//calendar//EN"

// Export writes the events as a VCALENDAR. Each event becomes a timed VEVENT
// in the local timezone: DTSTART at the event's start hour, DTEND duration
// hours later.
func Export(w io.Writer, events []model.CalendarEvent, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, ev := range events {
		day, err := schedule.ParseDate(ev.Date)
		if err != nil {
			return fmt.Errorf("event %s: bad date %q: %w", ev.ID, ev.Date, err)
		}
		start := day.Add(time.Duration(ev.StartHour) * time.Hour)
		end := start.Add(time.Duration(ev.Duration) * time.Hour)

		ve := cal.AddEvent(ev.ID)
		ve.SetDtStampTime(now)
		ve.SetStartAt(start)
		ve.SetEndAt(end)
		ve.SetSummary(ev.Title)
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

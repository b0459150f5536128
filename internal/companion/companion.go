// Package companion implements the desk-cat agent: a renameable helper that
// answers keyword searches over calendar events with a fixed set of templated
// lines, and sulks when a goal slips its deadline.
package companion

import (
	"fmt"
	"strings"
	"time"

	"cozy-cli/internal/goals"
	"cozy-cli/internal/model"
)

// DefaultName is the companion's name until the user renames it.
const DefaultName = "Momo"

// Reply pacing in the TUI. The first line lands after ReplyLeadDelay, each
// following line ReplyGapDelay after the previous one.
const (
	ReplyLeadDelay = 600 * time.Millisecond
	ReplyGapDelay  = 1200 * time.Millisecond
)

const (
	introLine      = "Yawn... oh, you're here! I was waiting for you. Let's organize things together!"
	runawayLine    = "Meow... you promised to finish this. I'm going to hide until you're done. I believe in you!"
	searchIntro    = "Did you forget again? Hehe, lucky you have me!"
	foundItemLine  = "You have '{title}' on {date} at {time}!"
	foundNoteLine  = "Note: {note}"
	searchOutro    = "Don't forget it this time~"
	noResultLine   = "I looked everywhere but couldn't find it. Maybe check under the rug?"
	rewardLine     = "Wow! You actually did it! Here, you can pet me for 5 minutes. Just 5 minutes, okay?"
	nameReaction   = "You want to call me {name}? Fine, I like it!"
	dateLineLayout = "January 2"
)

// Agent reads events and goal sections; it never mutates either.
type Agent struct {
	Name string
	Now  func() time.Time
}

func NewAgent(name string) *Agent {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	return &Agent{Name: name, Now: time.Now}
}

func (a *Agent) Intro() string {
	return introLine
}

// Rename updates the agent's name and returns its reaction line. Blank names
// are rejected and produce no reaction.
func (a *Agent) Rename(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	a.Name = name
	return fill(nameReaction, "{name}", name), true
}

func (a *Agent) RewardLine() string {
	return rewardLine
}

// Runaway reports whether the agent is hiding: any goal past its deadline and
// below 100% sends it away until the goal is finished.
func (a *Agent) Runaway(sections []model.GoalSection) bool {
	return goals.AnyOverdue(sections, a.Now())
}

func (a *Agent) RunawayLine() string {
	return runawayLine
}

// Search runs a case-insensitive substring match over event titles and
// descriptions and returns the reply lines in display order. A hit list gets
// an intro, one line per event (with the description folded in when present),
// and an outro. No hits gets the single no-result line.
func (a *Agent) Search(events []model.CalendarEvent, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var hits []model.CalendarEvent
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Title), q) ||
			strings.Contains(strings.ToLower(ev.Description), q) {
			hits = append(hits, ev)
		}
	}

	if len(hits) == 0 {
		return []string{noResultLine}
	}

	lines := []string{searchIntro}
	for _, ev := range hits {
		line := fill(foundItemLine,
			"{title}", ev.Title,
			"{date}", formatDate(ev.Date),
			"{time}", fmt.Sprintf("%d:00", ev.StartHour),
		)
		if note := strings.TrimSpace(ev.Description); note != "" {
			line += " (" + fill(foundNoteLine, "{note}", note) + ")"
		}
		lines = append(lines, line)
	}
	return append(lines, searchOutro)
}

// fill substitutes a fixed set of {key} placeholders; it is deliberately not
// a templating engine.
func fill(template string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(template)
}

func formatDate(date string) string {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return date
	}
	return t.Format(dateLineLayout)
}

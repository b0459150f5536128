// Package goals implements the identity/goal tracker: sections of goals with
// percentage progress and optional deadlines. Overdue detection is shared
// with the calendar via schedule.IsOverdue.
package goals

import (
	"time"

	"cozy-cli/internal/model"
	"cozy-cli/internal/schedule"
)

// ProgressStep is how much one bump advances a goal.
const ProgressStep = 10

const (
	DefaultSectionTitle = "New Domain"
	DefaultGoalTitle    = "New Goal"
)

// Tracker mutates a slice of sections in place. It owns no storage; callers
// hold the slice inside the persisted DB.
type Tracker struct {
	Sections *[]model.GoalSection
	NewID    func(prefix string) string
}

func NewTracker(sections *[]model.GoalSection, newID func(prefix string) string) *Tracker {
	return &Tracker{Sections: sections, NewID: newID}
}

// AddSection appends a new domain with one starter goal, mirroring how the
// board grows in practice.
func (t *Tracker) AddSection() model.GoalSection {
	sec := model.GoalSection{
		ID:    t.NewID("sec"),
		Title: DefaultSectionTitle,
		Goals: []model.Goal{{ID: t.NewID("goal"), Title: DefaultGoalTitle}},
	}
	*t.Sections = append(*t.Sections, sec)
	return sec
}

// RemoveSection deletes a whole domain. Unknown ids are a no-op.
func (t *Tracker) RemoveSection(id string) {
	secs := *t.Sections
	for i := range secs {
		if secs[i].ID == id {
			*t.Sections = append(secs[:i], secs[i+1:]...)
			return
		}
	}
}

func (t *Tracker) RenameSection(id, title string) {
	if sec, ok := t.find(id); ok {
		sec.Title = title
	}
}

// AddGoal appends a starter goal to the section. Unknown section = no-op.
func (t *Tracker) AddGoal(sectionID string) (model.Goal, bool) {
	sec, ok := t.find(sectionID)
	if !ok {
		return model.Goal{}, false
	}
	g := model.Goal{ID: t.NewID("goal"), Title: DefaultGoalTitle}
	sec.Goals = append(sec.Goals, g)
	return g, true
}

// UpdateGoal sets title and deadline, leaving progress alone.
func (t *Tracker) UpdateGoal(sectionID, goalID, title, deadline string) {
	g, ok := t.findGoal(sectionID, goalID)
	if !ok {
		return
	}
	g.Title = title
	g.Deadline = deadline
}

// BumpProgress advances the goal by ProgressStep, capped at 100. It reports
// whether this bump completed the goal, which triggers the companion reward.
func (t *Tracker) BumpProgress(sectionID, goalID string) (completed bool) {
	g, ok := t.findGoal(sectionID, goalID)
	if !ok {
		return false
	}
	before := g.Progress
	g.Progress = min(g.Progress+ProgressStep, 100)
	return before < 100 && g.Progress == 100
}

func (t *Tracker) find(id string) (*model.GoalSection, bool) {
	secs := *t.Sections
	for i := range secs {
		if secs[i].ID == id {
			return &secs[i], true
		}
	}
	return nil, false
}

func (t *Tracker) findGoal(sectionID, goalID string) (*model.Goal, bool) {
	sec, ok := t.find(sectionID)
	if !ok {
		return nil, false
	}
	for i := range sec.Goals {
		if sec.Goals[i].ID == goalID {
			return &sec.Goals[i], true
		}
	}
	return nil, false
}

// AnyOverdue reports whether any goal across the sections has slipped its
// deadline. The companion uses this for its runaway mode.
func AnyOverdue(sections []model.GoalSection, now time.Time) bool {
	for _, sec := range sections {
		for _, g := range sec.Goals {
			if schedule.IsOverdue(g.Deadline, g.Progress, now) {
				return true
			}
		}
	}
	return false
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"cozy-cli/internal/goals"
	"cozy-cli/internal/model"
	"cozy-cli/internal/schedule"
	"cozy-cli/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// goalEditor edits one goal's title and deadline.
type goalEditor struct {
	sectionID string
	goalID    string
	title     textinput.Model
	deadline  textinput.Model
	focus     int
}

func newGoalEditor(sectionID string, g model.Goal) *goalEditor {
	title := textinput.New()
	title.SetValue(g.Title)
	title.CharLimit = 120
	title.Focus()

	deadline := textinput.New()
	deadline.Placeholder = "YYYY-MM-DD"
	deadline.SetValue(g.Deadline)
	deadline.CharLimit = 10

	return &goalEditor{sectionID: sectionID, goalID: g.ID, title: title, deadline: deadline}
}

func (m *appModel) tracker() *goals.Tracker {
	return goals.NewTracker(&m.db.Sections, store.NewID)
}

func (m *appModel) clampGoalCursor() {
	if m.secIdx >= len(m.db.Sections) {
		m.secIdx = len(m.db.Sections) - 1
	}
	if m.secIdx < 0 {
		m.secIdx = 0
	}
	if len(m.db.Sections) == 0 {
		m.goalIdx = 0
		return
	}
	n := len(m.db.Sections[m.secIdx].Goals)
	if m.goalIdx >= n {
		m.goalIdx = n - 1
	}
	if m.goalIdx < 0 {
		m.goalIdx = 0
	}
}

func (m *appModel) selectedGoal() (sec *model.GoalSection, g *model.Goal) {
	m.clampGoalCursor()
	if len(m.db.Sections) == 0 {
		return nil, nil
	}
	sec = &m.db.Sections[m.secIdx]
	if len(sec.Goals) == 0 {
		return sec, nil
	}
	return sec, &sec.Goals[m.goalIdx]
}

func (m appModel) updateGoals(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.goalIdx > 0 {
			m.goalIdx--
		} else if m.secIdx > 0 {
			m.secIdx--
			m.goalIdx = len(m.db.Sections[m.secIdx].Goals) - 1
		}
		m.clampGoalCursor()
		return m, nil
	case "down", "j":
		if m.secIdx < len(m.db.Sections) {
			if m.goalIdx < len(m.db.Sections[m.secIdx].Goals)-1 {
				m.goalIdx++
			} else if m.secIdx < len(m.db.Sections)-1 {
				m.secIdx++
				m.goalIdx = 0
			}
		}
		m.clampGoalCursor()
		return m, nil

	case "+", " ":
		sec, g := m.selectedGoal()
		if sec == nil || g == nil {
			return m, nil
		}
		if m.tracker().BumpProgress(sec.ID, g.ID) {
			m.chatHistory = append(m.chatHistory, model.ChatMessage{
				Sender: model.ChatSenderCompanion,
				Text:   m.agent.RewardLine(),
			})
			m.status = m.agent.Name + " has something to say (press c)"
		}
		m.persist()
		return m, nil

	case "a":
		if sec, _ := m.selectedGoal(); sec != nil {
			m.tracker().AddGoal(sec.ID)
			m.persist()
		}
		return m, nil
	case "A":
		m.tracker().AddSection()
		m.secIdx = len(m.db.Sections) - 1
		m.goalIdx = 0
		m.persist()
		return m, nil

	case "e":
		if sec, g := m.selectedGoal(); sec != nil && g != nil {
			m.goalEditor = newGoalEditor(sec.ID, *g)
			m.modal = modalGoal
		}
		return m, nil

	case "r":
		if sec, _ := m.selectedGoal(); sec != nil {
			m.renamingSection = true
			m.renameTargetID = sec.ID
			m.renameInput.SetValue(sec.Title)
			m.renameInput.Focus()
		}
		return m, nil
	case "i":
		m.renamingSection = true
		m.renameTargetID = ""
		m.renameInput.Placeholder = "a Pro Chef"
		m.renameInput.SetValue(m.db.IdentityName)
		m.renameInput.Focus()
		return m, nil

	case "X":
		if sec, _ := m.selectedGoal(); sec != nil {
			m.confirmSectionID = sec.ID
			m.modal = modalConfirmDeleteSection
		}
		return m, nil
	}
	return m, nil
}

// applySectionRename commits the rename input: either the identity headline
// or a section title, depending on the target.
func (m *appModel) applySectionRename() {
	v := strings.TrimSpace(m.renameInput.Value())
	if m.renameTargetID == "" {
		m.db.IdentityName = v
	} else if v != "" {
		m.tracker().RenameSection(m.renameTargetID, v)
	}
	m.renamingSection = false
	m.persist()
}

func (m appModel) updateGoalModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.goalEditor
	switch msg.String() {
	case "esc":
		m.goalEditor = nil
		m.modal = modalNone
		return m, nil
	case "tab", "shift+tab", "up", "down":
		e.focus = 1 - e.focus
		if e.focus == 0 {
			e.title.Focus()
			e.deadline.Blur()
		} else {
			e.title.Blur()
			e.deadline.Focus()
		}
		return m, nil
	case "enter":
		m.tracker().UpdateGoal(e.sectionID, e.goalID,
			strings.TrimSpace(e.title.Value()), strings.TrimSpace(e.deadline.Value()))
		m.goalEditor = nil
		m.modal = modalNone
		m.persist()
		return m, nil
	}

	var cmd tea.Cmd
	if e.focus == 0 {
		e.title, cmd = e.title.Update(msg)
	} else {
		e.deadline, cmd = e.deadline.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateConfirmDeleteSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.tracker().RemoveSection(m.confirmSectionID)
		m.confirmSectionID = ""
		m.modal = modalNone
		m.clampGoalCursor()
		m.persist()
		return m, nil
	case "n", "esc":
		m.confirmSectionID = ""
		m.modal = modalNone
		return m, nil
	}
	return m, nil
}

func progressBar(progress, width int) string {
	if width < 4 {
		width = 4
	}
	filled := progress * width / 100
	return lipgloss.NewStyle().Foreground(colorAccent).Render(strings.Repeat("█", filled)) +
		styleMuted().Render(strings.Repeat("░", width-filled))
}

func (m appModel) renderGoals(width int) string {
	var b strings.Builder

	identity := m.db.IdentityName
	if identity == "" {
		identity = "..."
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorAccent).
		Render("I want to be " + identity))
	b.WriteString("\n\n")

	now := time.Now()
	barW := width / 3
	if barW > 30 {
		barW = 30
	}

	for si := range m.db.Sections {
		sec := m.db.Sections[si]
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(sec.Title))
		b.WriteString("\n")
		for gi := range sec.Goals {
			g := sec.Goals[gi]
			cursor := "  "
			if si == m.secIdx && gi == m.goalIdx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s %s %3d%%", cursor,
				truncateToWidth(g.Title, width/3), progressBar(g.Progress, barW), g.Progress)
			if g.Deadline != "" {
				if schedule.IsOverdue(g.Deadline, g.Progress, now) {
					line += lipgloss.NewStyle().Foreground(colorOverdueFg).Bold(true).
						Render("  overdue " + g.Deadline)
				} else {
					line += styleMuted().Render("  due " + g.Deadline)
				}
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.renamingSection {
		b.WriteString(m.renameInput.View())
		b.WriteString("\n")
	}
	b.WriteString(styleMuted().Render("space: +10%   a/A: goal/section   e: edit   r: rename   i: identity   X: delete section"))
	return b.String()
}

func (m appModel) renderGoalModal(width int) string {
	e := m.goalEditor
	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, styleMuted().Width(10).Render("Title"), e.title.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, styleMuted().Width(10).Render("Deadline"), e.deadline.View()),
		"",
		styleMuted().Render("enter: save   esc: cancel"),
	}
	return renderModalBox(width, "Edit goal", strings.Join(rows, "\n"))
}

func (m appModel) renderConfirmDeleteSection(width int) string {
	name := m.confirmSectionID
	if sec, ok := m.db.FindSection(m.confirmSectionID); ok {
		name = sec.Title
	}
	body := fmt.Sprintf("Delete domain %q and all its goals?\n\n%s",
		name, styleMuted().Render("y: delete   n/esc: keep"))
	return renderModalBox(width, "Delete domain", body)
}

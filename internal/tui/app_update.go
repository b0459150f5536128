package tui

import (
	"cozy-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case companionLineMsg:
		m.chatHistory = append(m.chatHistory, model.ChatMessage{
			Sender: model.ChatSenderCompanion,
			Text:   msg.line,
		})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	// Modals capture all input while open.
	switch m.modal {
	case modalEvent:
		return m.updateEventModal(msg)
	case modalGoal:
		return m.updateGoalModal(msg)
	case modalConfirmDeleteSection:
		return m.updateConfirmDeleteSection(msg)
	case modalChat:
		return m.updateChat(msg)
	}

	// Inline inputs on the sidebar panes.
	if m.addingNote || m.addingIdea || m.renamingSection {
		return m.updateInlineInput(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.pane = (m.pane + 1) % 4
		return m, nil
	case "shift+tab":
		m.pane = (m.pane + 3) % 4
		return m, nil
	case "c":
		m.modal = modalChat
		m.chatInput.Focus()
		return m, nil
	}

	switch m.pane {
	case paneCalendar:
		return m.updateCalendar(msg)
	case paneNotes:
		return m.updateNotes(msg)
	case paneIdeas:
		return m.updateIdeas(msg)
	case paneGoals:
		return m.updateGoals(msg)
	}
	return m, nil
}

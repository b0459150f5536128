package tui

import (
	"strings"
	"time"

	"cozy-cli/internal/companion"
	"cozy-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type companionLineMsg struct{ line string }

// companionReplyCmds schedules the reply lines with the companion's pacing:
// a short beat before the first line, then a slower dramatic gap between
// lines.
func companionReplyCmds(lines []string) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(lines))
	for i, line := range lines {
		delay := companion.ReplyLeadDelay + time.Duration(i)*companion.ReplyGapDelay
		line := line
		cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg {
			return companionLineMsg{line: line}
		}))
	}
	return cmds
}

func (m appModel) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		m.chatInput.Blur()
		return m, nil

	case "enter":
		raw := strings.TrimSpace(m.chatInput.Value())
		m.chatInput.SetValue("")
		if raw == "" {
			return m, nil
		}

		// "/name Momo" renames the companion; everything else is a search.
		if rest, ok := strings.CutPrefix(raw, "/name "); ok {
			if reaction, renamed := m.agent.Rename(rest); renamed {
				m.db.CompanionName = m.agent.Name
				m.persist()
				m.chatHistory = append(m.chatHistory, model.ChatMessage{
					Sender: model.ChatSenderCompanion,
					Text:   reaction,
				})
			}
			return m, nil
		}

		m.chatHistory = append(m.chatHistory, model.ChatMessage{
			Sender: model.ChatSenderUser,
			Text:   raw,
		})

		if m.agent.Runaway(m.db.Sections) {
			return m, tea.Batch(companionReplyCmds([]string{m.agent.RunawayLine()})...)
		}
		lines := m.agent.Search(m.session.Store.All(), raw)
		return m, tea.Batch(companionReplyCmds(lines)...)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m appModel) renderChat(width int) string {
	w := width - 12
	if w > 56 {
		w = 56
	}
	if w < 24 {
		w = 24
	}

	// Show only the tail of the conversation.
	history := m.chatHistory
	if len(history) > 8 {
		history = history[len(history)-8:]
	}

	var lines []string
	for _, msg := range history {
		if msg.Sender == model.ChatSenderUser {
			lines = append(lines, lipgloss.NewStyle().Bold(true).
				Render("you: ")+truncateToWidth(msg.Text, w-5))
		} else {
			lines = append(lines, lipgloss.NewStyle().Foreground(colorAccent).
				Render(m.agent.Name+": ")+msg.Text)
		}
	}

	body := strings.Join(lines, "\n") + "\n\n" +
		m.chatInput.View() + "\n" +
		styleMuted().Render("enter: ask   /name <name>: rename   esc: close")
	return renderModalBox(width, m.agent.Name, body)
}

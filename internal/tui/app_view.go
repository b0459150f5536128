package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	switch m.modal {
	case modalEvent:
		return m.centerModal(m.renderEventModal(m.width))
	case modalGoal:
		return m.centerModal(m.renderGoalModal(m.width))
	case modalConfirmDeleteSection:
		return m.centerModal(m.renderConfirmDeleteSection(m.width))
	case modalChat:
		return m.centerModal(m.renderChat(m.width))
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.pane {
	case paneCalendar:
		b.WriteString(m.renderCalendar(m.width-2, m.height-5))
	case paneNotes:
		b.WriteString(m.renderNotes())
	case paneIdeas:
		b.WriteString(m.renderIdeas(m.width - 2))
	case paneGoals:
		b.WriteString(m.renderGoals(m.width - 2))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m appModel) centerModal(modal string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m appModel) renderTabs() string {
	var parts []string
	for _, p := range []pane{paneCalendar, paneNotes, paneIdeas, paneGoals} {
		label := paneNames[p]
		if p == m.pane {
			parts = append(parts, lipgloss.NewStyle().
				Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true).
				Padding(0, 2).Render(label))
		} else {
			parts = append(parts, styleMuted().Padding(0, 2).Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m appModel) renderFooter() string {
	if m.status != "" {
		return lipgloss.NewStyle().Foreground(colorAccent).Render(m.status)
	}
	help := "tab: switch pane   c: companion   q: quit"
	if m.pane == paneCalendar {
		help = "h/l: prev/next   t: today   m/w/d: view   n: new   g: move   enter: open   " + help
	}
	return styleMuted().Render(truncateToWidth(help, m.width))
}

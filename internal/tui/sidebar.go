package tui

import (
	"math/rand"
	"strings"
	"time"

	"cozy-cli/internal/model"
	"cozy-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.addingNote = true
		m.noteInput.SetValue("")
		m.noteInput.Focus()
		return m, nil
	case " ":
		if it, ok := m.notesList.SelectedItem().(noteItem); ok {
			if n, found := m.db.FindNote(it.note.ID); found {
				n.Done = !n.Done
				m.persist()
				m.refreshNotes()
			}
		}
		return m, nil
	case "x":
		if it, ok := m.notesList.SelectedItem().(noteItem); ok {
			kept := m.db.Notes[:0]
			for _, n := range m.db.Notes {
				if n.ID != it.note.ID {
					kept = append(kept, n)
				}
			}
			m.db.Notes = kept
			m.persist()
			m.refreshNotes()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.notesList, cmd = m.notesList.Update(msg)
	return m, cmd
}

func (m appModel) updateIdeas(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.addingIdea = true
		m.ideaField = 0
		m.ideaTitleInput.SetValue("")
		m.ideaBodyInput.SetValue("")
		m.ideaCategory = model.IdeaCategoryRandom
		m.ideaTitleInput.Focus()
		m.ideaBodyInput.Blur()
		return m, nil
	case "r":
		// Cycle the selected idea through the categories.
		if it, ok := m.ideasList.SelectedItem().(ideaItem); ok {
			if idea, found := m.db.FindIdea(it.idea.ID); found {
				cats := model.IdeaCategories()
				for i, c := range cats {
					if c == idea.Category {
						idea.Category = cats[(i+1)%len(cats)]
						break
					}
				}
				m.persist()
				m.refreshIdeas()
			}
		}
		return m, nil
	case "x":
		if it, ok := m.ideasList.SelectedItem().(ideaItem); ok {
			kept := m.db.Ideas[:0]
			for _, idea := range m.db.Ideas {
				if idea.ID != it.idea.ID {
					kept = append(kept, idea)
				}
			}
			m.db.Ideas = kept
			m.persist()
			m.refreshIdeas()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.ideasList, cmd = m.ideasList.Update(msg)
	return m, cmd
}

// updateInlineInput routes keys into whichever sidebar input is active.
func (m appModel) updateInlineInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.addingNote = false
		m.addingIdea = false
		m.renamingSection = false
		return m, nil

	case "tab":
		if m.addingIdea {
			// Cycle title -> body -> category.
			m.ideaField = (m.ideaField + 1) % 3
			m.ideaTitleInput.Blur()
			m.ideaBodyInput.Blur()
			switch m.ideaField {
			case 0:
				m.ideaTitleInput.Focus()
			case 1:
				m.ideaBodyInput.Focus()
			}
			return m, nil
		}

	case "left", "right":
		if m.addingIdea && m.ideaField == 2 {
			cats := model.IdeaCategories()
			dir := 1
			if msg.String() == "left" {
				dir = len(cats) - 1
			}
			for i, c := range cats {
				if c == m.ideaCategory {
					m.ideaCategory = cats[(i+dir)%len(cats)]
					break
				}
			}
			return m, nil
		}

	case "enter":
		switch {
		case m.addingNote:
			content := strings.TrimSpace(m.noteInput.Value())
			if content != "" {
				n := model.Note{
					ID:        store.NewID("note"),
					Content:   content,
					Rotation:  rand.Float64()*6 - 3,
					CreatedAt: time.Now(),
				}
				m.db.Notes = append([]model.Note{n}, m.db.Notes...)
				m.persist()
				m.refreshNotes()
			}
			m.addingNote = false
			return m, nil

		case m.addingIdea:
			title := strings.TrimSpace(m.ideaTitleInput.Value())
			if title != "" {
				idea := model.Idea{
					ID:        store.NewID("idea"),
					Title:     title,
					Category:  m.ideaCategory,
					Content:   m.ideaBodyInput.Value(),
					CreatedAt: time.Now(),
				}
				m.db.Ideas = append([]model.Idea{idea}, m.db.Ideas...)
				m.persist()
				m.refreshIdeas()
			}
			m.addingIdea = false
			return m, nil

		case m.renamingSection:
			m.applySectionRename()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch {
	case m.addingNote:
		m.noteInput, cmd = m.noteInput.Update(msg)
	case m.addingIdea && m.ideaField == 0:
		m.ideaTitleInput, cmd = m.ideaTitleInput.Update(msg)
	case m.addingIdea && m.ideaField == 1:
		m.ideaBodyInput, cmd = m.ideaBodyInput.Update(msg)
	case m.renamingSection:
		m.renameInput, cmd = m.renameInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) renderNotes() string {
	var b strings.Builder
	if m.addingNote {
		b.WriteString(m.noteInput.View())
		b.WriteString("\n\n")
	}
	b.WriteString(m.notesList.View())
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("a: add   space: toggle   x: delete"))
	return b.String()
}

func (m appModel) renderIdeas(width int) string {
	var b strings.Builder
	if m.addingIdea {
		b.WriteString(m.ideaTitleInput.View())
		b.WriteString("\n")
		b.WriteString(m.ideaBodyInput.View())
		b.WriteString("\n")
		cat := string(m.ideaCategory)
		if m.ideaField == 2 {
			cat = "< " + cat + " >"
		}
		b.WriteString(styleMuted().Render("category: " + cat))
		b.WriteString("\n\n")
	}
	b.WriteString(m.ideasList.View())

	// Markdown preview of the selected idea, below the shelf.
	if it, ok := m.ideasList.SelectedItem().(ideaItem); ok && it.idea.Content != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorBorder).
			Render(renderMarkdown(it.idea.Content, width-4)))
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("a: add   r: re-categorize   x: delete"))
	return b.String()
}

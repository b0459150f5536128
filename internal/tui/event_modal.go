package tui

import (
	"strconv"
	"strings"
	"time"

	"cozy-cli/internal/model"
	"cozy-cli/internal/schedule"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldTitle = iota
	fieldDate
	fieldHour
	fieldDuration
	fieldDescription
	fieldColor
	fieldCount
)

// eventEditor edits a snapshot of one event. Nothing reaches the store until
// save; cancel throws the whole snapshot away.
type eventEditor struct {
	id     string
	cfg    schedule.Config
	inputs [fieldDescription + 1]textinput.Model
	colorI int
	focus  int
}

func newEventEditor(ev model.CalendarEvent, cfg schedule.Config) *eventEditor {
	e := &eventEditor{id: ev.ID, cfg: cfg}

	mk := func(placeholder, value string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.SetValue(value)
		ti.CharLimit = limit
		return ti
	}
	e.inputs[fieldTitle] = mk("Title", ev.Title, 120)
	e.inputs[fieldDate] = mk("YYYY-MM-DD", ev.Date, 10)
	e.inputs[fieldHour] = mk("9", strconv.Itoa(ev.StartHour), 2)
	e.inputs[fieldDuration] = mk("1", strconv.Itoa(ev.Duration), 2)
	e.inputs[fieldDescription] = mk("Description", ev.Description, 400)

	for i, c := range cfg.Palette {
		if c == ev.Color {
			e.colorI = i
			break
		}
	}
	e.inputs[fieldTitle].Focus()
	return e
}

func (e *eventEditor) setFocus(f int) {
	e.focus = (f + fieldCount) % fieldCount
	for i := range e.inputs {
		if i == e.focus {
			e.inputs[i].Focus()
		} else {
			e.inputs[i].Blur()
		}
	}
}

// snapshot assembles the complete event from the current field values. Bad
// numeric input degrades to the nearest valid value rather than erroring.
func (e *eventEditor) snapshot() model.CalendarEvent {
	hour, err := strconv.Atoi(strings.TrimSpace(e.inputs[fieldHour].Value()))
	if err != nil || hour < e.cfg.FirstHour {
		hour = e.cfg.FirstHour
	}
	if hour > e.cfg.LastHour {
		hour = e.cfg.LastHour
	}
	dur, err := strconv.Atoi(strings.TrimSpace(e.inputs[fieldDuration].Value()))
	if err != nil || dur < 1 {
		dur = 1
	}
	date := strings.TrimSpace(e.inputs[fieldDate].Value())
	if _, perr := schedule.ParseDate(date); perr != nil {
		date = schedule.NormalizeDate(time.Now())
	}
	return model.CalendarEvent{
		ID:          e.id,
		Title:       e.inputs[fieldTitle].Value(),
		Date:        date,
		StartHour:   hour,
		Duration:    dur,
		Color:       e.cfg.Palette[e.colorI],
		Description: e.inputs[fieldDescription].Value(),
	}
}

func (m appModel) updateEventModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.editor
	switch msg.String() {
	case "esc":
		m.session.CloseEditor()
		m.editor = nil
		m.modal = modalNone
		return m, nil
	case "ctrl+d":
		m.session.DeleteEdit()
		m.editor = nil
		m.modal = modalNone
		m.persist()
		return m, nil
	case "ctrl+s", "enter":
		m.session.SaveEdit(e.snapshot())
		m.editor = nil
		m.modal = modalNone
		m.persist()
		return m, nil
	case "tab", "down":
		e.setFocus(e.focus + 1)
		return m, nil
	case "shift+tab", "up":
		e.setFocus(e.focus - 1)
		return m, nil
	case "left":
		if e.focus == fieldColor {
			e.colorI = (e.colorI + len(e.cfg.Palette) - 1) % len(e.cfg.Palette)
			return m, nil
		}
	case "right":
		if e.focus == fieldColor {
			e.colorI = (e.colorI + 1) % len(e.cfg.Palette)
			return m, nil
		}
	}

	if e.focus < fieldColor {
		var cmd tea.Cmd
		e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) renderEventModal(width int) string {
	e := m.editor
	labels := []string{"Title", "Date", "Start hour", "Duration", "Notes"}

	var rows []string
	for i, label := range labels {
		l := styleMuted().Width(11).Render(label)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, l, e.inputs[i].View()))
	}

	var swatches []string
	for i, c := range e.cfg.Palette {
		block := "  "
		if i == e.colorI {
			block = "><"
		}
		swatches = append(swatches, swatchStyle(c).Render(block))
	}
	colorRow := lipgloss.JoinHorizontal(lipgloss.Top,
		styleMuted().Width(11).Render("Color"),
		lipgloss.JoinHorizontal(lipgloss.Top, swatches...))
	if e.focus == fieldColor {
		colorRow += styleMuted().Render("  ←/→")
	}
	rows = append(rows, colorRow)

	help := styleMuted().Render("enter: save   ctrl+d: delete   esc: cancel")
	body := strings.Join(append(rows, "", help), "\n")

	return renderModalBox(width, "Edit event", body)
}

func renderModalBox(width int, title, body string) string {
	w := width - 8
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	header := lipgloss.NewStyle().
		Bold(true).
		Background(colorControlBg).
		Foreground(colorSurfaceFg).
		Width(w).
		Padding(0, 1).
		Render(title)
	content := lipgloss.NewStyle().Width(w).Padding(0, 1).Render(body)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Render(header + "\n" + content)
}

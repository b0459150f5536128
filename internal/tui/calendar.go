package tui

import (
	"fmt"
	"strings"
	"time"

	"cozy-cli/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	switch msg.String() {
	case "h":
		s.Prev()
		m.cursorDate = s.Anchor
		return m, nil
	case "l":
		s.Next()
		m.cursorDate = s.Anchor
		return m, nil
	case "t":
		s.Today()
		m.cursorDate = s.Anchor
		return m, nil
	case "m":
		s.SetMode(schedule.ViewMonth)
		return m, nil
	case "w":
		s.SetMode(schedule.ViewWeek)
		return m, nil
	case "d":
		s.SetMode(schedule.ViewDay)
		return m, nil

	case "up":
		if s.Mode == schedule.ViewMonth {
			m.cursorDate = m.cursorDate.AddDate(0, 0, -7)
		} else if m.cursorHour > m.cfg.FirstHour {
			m.cursorHour--
		}
		return m, nil
	case "down":
		if s.Mode == schedule.ViewMonth {
			m.cursorDate = m.cursorDate.AddDate(0, 0, 7)
		} else if m.cursorHour < m.cfg.LastHour {
			m.cursorHour++
		}
		return m, nil
	case "left":
		if s.Mode == schedule.ViewDay {
			s.Prev()
			m.cursorDate = s.Anchor
		} else {
			m.cursorDate = m.cursorDate.AddDate(0, 0, -1)
		}
		return m, nil
	case "right":
		if s.Mode == schedule.ViewDay {
			s.Next()
			m.cursorDate = s.Anchor
		} else {
			m.cursorDate = m.cursorDate.AddDate(0, 0, 1)
		}
		return m, nil

	case "enter":
		if s.Mode == schedule.ViewMonth {
			s.ClickMonthCell(m.cursorDate)
			return m, nil
		}
		if m.grabbed {
			s.Drop(schedule.NormalizeDate(m.cursorDate), m.cursorHour)
			m.grabbed = false
			m.persist()
			return m, nil
		}
		if ev, ok := m.eventAtCursor(); ok {
			if s.OpenEditor(ev.ID) {
				m.editor = newEventEditor(ev, m.cfg)
				m.modal = modalEvent
			}
		}
		return m, nil

	case "n":
		hour := m.cursorHour
		if s.Mode == schedule.ViewMonth {
			hour = 9
		}
		s.CreateAt(schedule.NormalizeDate(m.cursorDate), hour)
		m.persist()
		return m, nil

	case "g":
		if s.Mode == schedule.ViewMonth {
			return m, nil
		}
		if ev, ok := m.eventAtCursor(); ok {
			s.DragStart(ev.ID)
			m.grabbed = true
			m.status = "moving '" + ev.Title + "': pick a cell and press enter, esc cancels"
		}
		return m, nil

	case "x":
		if ev, ok := m.eventAtCursor(); ok {
			s.Store.Remove(ev.ID)
			m.persist()
		}
		return m, nil

	case "esc":
		if m.grabbed {
			s.CancelDrag()
			m.grabbed = false
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) renderCalendar(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(m.session.HeaderLabel())
	modes := renderModeTabs(m.session.Mode)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", modes))
	b.WriteString("\n")

	switch m.session.Mode {
	case schedule.ViewMonth:
		b.WriteString(m.renderMonthGrid(width))
	case schedule.ViewDay:
		b.WriteString(m.renderDayColumns(width, []schedule.DayColumn{
			m.cfg.DayColumnFor(m.session.Store, m.session.Anchor, time.Now()),
		}))
	default:
		b.WriteString(m.renderDayColumns(width,
			m.cfg.WeekColumns(m.session.Store, m.session.Anchor, time.Now())))
	}
	return b.String()
}

func renderModeTabs(mode schedule.ViewMode) string {
	var parts []string
	for _, mv := range []schedule.ViewMode{schedule.ViewMonth, schedule.ViewWeek, schedule.ViewDay} {
		label := string(mv)
		if mv == mode {
			parts = append(parts, lipgloss.NewStyle().
				Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true).
				Padding(0, 1).Render(label))
		} else {
			parts = append(parts, styleMuted().Padding(0, 1).Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m appModel) renderMonthGrid(width int) string {
	cellW := width/7 - 1
	if cellW < 8 {
		cellW = 8
	}
	cursor := schedule.NormalizeDate(m.cursorDate)

	var b strings.Builder
	for _, wd := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		b.WriteString(padOrCutANSI(styleMuted().Render(wd), cellW+1))
	}
	b.WriteString("\n")

	cells := m.cfg.MonthCells(m.session.Store, m.session.Anchor, time.Now())
	for row := 0; row < 6; row++ {
		lines := make([][]string, 7)
		maxLines := 1
		for col := 0; col < 7; col++ {
			cell := cells[row*7+col]
			lines[col] = m.renderMonthCell(cell, cellW, cell.DateStr == cursor)
			if len(lines[col]) > maxLines {
				maxLines = len(lines[col])
			}
		}
		for ln := 0; ln < maxLines; ln++ {
			for col := 0; col < 7; col++ {
				s := ""
				if ln < len(lines[col]) {
					s = lines[col][ln]
				}
				b.WriteString(padOrCutANSI(s, cellW))
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m appModel) renderMonthCell(cell schedule.MonthCellView, w int, selected bool) []string {
	day := fmt.Sprintf("%2d", cell.Date.Day())
	st := lipgloss.NewStyle()
	if !cell.IsCurrentMonth {
		st = styleMuted()
	}
	if cell.IsToday {
		st = st.Background(colorTodayBg).Bold(true)
	}
	if selected {
		st = st.Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true)
	}
	out := []string{st.Render(day)}

	for _, chip := range cell.Chips {
		out = append(out, swatchStyle(chip.Color).Render(truncateToWidth(chip.Title, w)))
	}
	if cell.Overflow > 0 {
		out = append(out, styleMuted().Render(fmt.Sprintf("+%d more", cell.Overflow)))
	}
	return out
}

func (m appModel) renderDayColumns(width int, cols []schedule.DayColumn) string {
	const gutter = 6 // "HH:00 "
	colW := (width-gutter)/len(cols) - 1
	if colW < 10 {
		colW = 10
	}
	cursorDate := schedule.NormalizeDate(m.cursorDate)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutter))
	for _, col := range cols {
		head := col.Date.Format("Mon 2")
		st := lipgloss.NewStyle().Bold(true)
		if col.IsToday {
			st = st.Background(colorTodayBg)
		}
		b.WriteString(padOrCutANSI(st.Render(head), colW))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for _, hour := range m.cfg.Hours() {
		b.WriteString(styleMuted().Render(fmt.Sprintf("%2d:00 ", hour)))
		for _, col := range cols {
			b.WriteString(padOrCutANSI(m.renderHourCell(col, hour, colW, col.DateStr == cursorDate), colW))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderHourCell draws the slot content for one (day, hour) pair. The topmost
// covering event wins, matching the z-stack order of the projection.
func (m appModel) renderHourCell(col schedule.DayColumn, hour, w int, onCursorDay bool) string {
	selected := onCursorDay && hour == m.cursorHour

	var top *schedule.Span
	for i := range col.Spans {
		sp := col.Spans[i]
		if sp.Event.StartHour <= hour && hour < sp.Event.StartHour+sp.Event.Duration {
			top = &sp
		}
	}

	if top == nil {
		if selected {
			return lipgloss.NewStyle().Background(colorSelectedBg).Render(strings.Repeat(" ", w))
		}
		return styleMuted().Render(strings.Repeat("·", w))
	}

	st := swatchStyle(top.Event.Color)
	if selected {
		st = st.Bold(true).Underline(true)
	}
	if hour == top.Event.StartHour {
		label := top.Event.Title
		if m.grabbed {
			if id, ok := m.session.Dragging(); ok && id == top.Event.ID {
				label = "✈ " + label
			}
		}
		return st.Render(truncateToWidth(label, w))
	}
	return st.Render(strings.Repeat(" ", w))
}

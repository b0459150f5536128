package tui

import (
	"fmt"
	"time"

	"cozy-cli/internal/companion"
	"cozy-cli/internal/model"
	"cozy-cli/internal/schedule"
	"cozy-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type pane int

const (
	paneCalendar pane = iota
	paneNotes
	paneIdeas
	paneGoals
)

var paneNames = map[pane]string{
	paneCalendar: "Calendar",
	paneNotes:    "Notes",
	paneIdeas:    "Ideas",
	paneGoals:    "Goals",
}

type modalKind int

const (
	modalNone modalKind = iota
	modalEvent
	modalGoal
	modalConfirmDeleteSection
	modalChat
)

type appModel struct {
	store store.Store
	db    *store.DB

	width  int
	height int

	pane   pane
	modal  modalKind
	status string

	cfg     schedule.Config
	session *schedule.Session

	// Calendar cursor. cursorDate tracks the focused cell; cursorHour the
	// focused slot in week/day view.
	cursorDate time.Time
	cursorHour int
	grabbed    bool

	notesList  list.Model
	noteInput  textinput.Model
	addingNote bool

	ideasList      list.Model
	ideaTitleInput textinput.Model
	ideaBodyInput  textinput.Model
	ideaCategory   model.IdeaCategory
	addingIdea     bool
	ideaField      int

	secIdx          int
	goalIdx         int
	renameInput     textinput.Model
	renamingSection bool
	// renameTargetID selects what the rename input commits to: a section id,
	// or the identity headline when empty.
	renameTargetID   string
	confirmSectionID string

	agent       *companion.Agent
	chatInput   textinput.Model
	chatHistory []model.ChatMessage

	editor     *eventEditor
	goalEditor *goalEditor
}

type noteItem struct{ note model.Note }

func (i noteItem) FilterValue() string { return i.note.Content }
func (i noteItem) Title() string {
	if i.note.Done {
		return "[x] " + i.note.Content
	}
	return "[ ] " + i.note.Content
}
func (i noteItem) Description() string {
	if i.note.CreatedAt.IsZero() {
		return ""
	}
	return i.note.CreatedAt.Format("Jan 2 15:04")
}

type ideaItem struct{ idea model.Idea }

func (i ideaItem) FilterValue() string { return i.idea.Title }
func (i ideaItem) Title() string       { return i.idea.Title }
func (i ideaItem) Description() string { return string(i.idea.Category) }

func newList(items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	// We render our own chrome; keep the list minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("ctrl+c")
	return l
}

func newAppModel(s store.Store, db *store.DB) appModel {
	now := time.Now()

	session := schedule.NewSession(schedule.NewEventStore(db.Events), schedule.DefaultConfig(), func() string {
		return store.NewID("ev")
	})

	noteInput := textinput.New()
	noteInput.Placeholder = "Write it down before it flies away..."
	noteInput.CharLimit = 200

	ideaTitle := textinput.New()
	ideaTitle.Placeholder = "Idea title"
	ideaBody := textinput.New()
	ideaBody.Placeholder = "Details (markdown ok)"

	rename := textinput.New()
	rename.CharLimit = 80

	chat := textinput.New()
	chat.Placeholder = "Search 'Meeting'..."

	m := appModel{
		store:        s,
		db:           db,
		pane:         paneCalendar,
		cfg:          schedule.DefaultConfig(),
		session:      session,
		cursorDate:   now,
		cursorHour:   9,
		notesList:    newList(nil),
		noteInput:    noteInput,
		ideasList:    newList(nil),
		ideaTitleInput: ideaTitle,
		ideaBodyInput:  ideaBody,
		ideaCategory:   model.IdeaCategoryRandom,
		renameInput:    rename,
		chatInput:      chat,
		agent:          companion.NewAgent(db.CompanionName),
	}
	m.refreshNotes()
	m.refreshIdeas()
	m.chatHistory = []model.ChatMessage{{Sender: model.ChatSenderCompanion, Text: m.agent.Intro()}}
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m *appModel) refreshNotes() {
	items := make([]list.Item, 0, len(m.db.Notes))
	for _, n := range m.db.Notes {
		items = append(items, noteItem{note: n})
	}
	m.notesList.SetItems(items)
}

func (m *appModel) refreshIdeas() {
	items := make([]list.Item, 0, len(m.db.Ideas))
	for _, idea := range m.db.Ideas {
		items = append(items, ideaItem{idea: idea})
	}
	m.ideasList.SetItems(items)
}

// persist copies the session's events back into the db and saves everything.
// Save failures surface on the status line instead of crashing the TUI.
func (m *appModel) persist() {
	m.db.Events = m.session.Store.All()
	if err := m.store.Save(m.db); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
	}
}

// eventAtCursor returns the topmost event covering the focused slot. Events
// z-stack in store order, so the last match wins.
func (m *appModel) eventAtCursor() (model.CalendarEvent, bool) {
	var found model.CalendarEvent
	ok := false
	for _, ev := range m.session.Store.ByDate(schedule.NormalizeDate(m.cursorDate)) {
		if ev.StartHour <= m.cursorHour && m.cursorHour < ev.StartHour+ev.Duration {
			found = ev
			ok = true
		}
	}
	return found, ok
}

func (m *appModel) resizeLists() {
	w, h := m.sidebarSize()
	m.notesList.SetSize(w, h)
	m.ideasList.SetSize(w, h)
}

func (m *appModel) sidebarSize() (int, int) {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return w, h
}

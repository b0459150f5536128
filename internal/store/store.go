package store

import (
	"os"
	"path/filepath"
	"time"

	"cozy-cli/internal/model"
	"cozy-cli/internal/schedule"
)

const storeDirName = ".cozy"

// DB is the whole persisted organizer state. Navigation position, in-flight
// drags and editor targets are transient session state and never live here.
type DB struct {
	Version int `json:"version"`

	// IdentityName is the "I want to be ..." headline of the goal tracker.
	IdentityName string `json:"identityName,omitempty"`
	// CompanionName overrides the companion's default name once the user
	// renames it.
	CompanionName string `json:"companionName,omitempty"`

	Notes    []model.Note          `json:"notes"`
	Ideas    []model.Idea          `json:"ideas"`
	Events   []model.CalendarEvent `json:"events"`
	Sections []model.GoalSection   `json:"sections"`
}

type Store struct {
	Dir string
}

// DiscoverDir walks upward from start looking for an existing .cozy dir.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, storeDirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, storeDirName), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// SeedDB is the default state for a brand-new (or unreadable) store.
func SeedDB() *DB {
	now := time.Now()
	today := schedule.NormalizeDate(now)
	return &DB{
		Version: 1,
		Notes: []model.Note{
			{ID: "note-sample1", Content: "Design new logo", Rotation: -2, CreatedAt: now},
			{ID: "note-sample2", Content: "Buy turnips", Done: true, Rotation: 1.5, CreatedAt: now},
		},
		Ideas: []model.Idea{
			{ID: "idea-sample1", Title: "Game concept", Category: model.IdeaCategoryWork,
				Content: "A cozy game about organizing a library.", CreatedAt: now},
		},
		Events: []model.CalendarEvent{
			{ID: "ev-sample1", Title: "Deep Work", Date: today, StartHour: 9, Duration: 2,
				Color: schedule.DefaultPalette[2], Description: "Focus on new features."},
			{ID: "ev-sample2", Title: "Lunch", Date: today, StartHour: 12, Duration: 1,
				Color: schedule.DefaultPalette[3]},
		},
		Sections: []model.GoalSection{
			{ID: "sec-sample1", Title: "Core Skills", Goals: []model.Goal{
				{ID: "goal-sample1", Title: "Figma mastery", Progress: 30},
			}},
		},
	}
}

func (db *DB) FindNote(id string) (*model.Note, bool) {
	for i := range db.Notes {
		if db.Notes[i].ID == id {
			return &db.Notes[i], true
		}
	}
	return nil, false
}

func (db *DB) FindIdea(id string) (*model.Idea, bool) {
	for i := range db.Ideas {
		if db.Ideas[i].ID == id {
			return &db.Ideas[i], true
		}
	}
	return nil, false
}

func (db *DB) FindSection(id string) (*model.GoalSection, bool) {
	for i := range db.Sections {
		if db.Sections[i].ID == id {
			return &db.Sections[i], true
		}
	}
	return nil, false
}

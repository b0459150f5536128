package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "cozy.sqlite"

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids "database is
	// locked" flakiness when a CLI command runs next to the TUI.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

func migrateSQLiteState(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS state_meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			done INTEGER NOT NULL,
			json TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS ideas (
			id TEXT PRIMARY KEY,
			category TEXT NOT NULL,
			json TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			start_hour INTEGER NOT NULL,
			json TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);`,
		`CREATE TABLE IF NOT EXISTS goal_sections (
			id TEXT PRIMARY KEY,
			json TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the workspace state from SQLite. An empty or unreadable store
// degrades to the default seed rather than failing the application; only
// infrastructure errors (cannot create the dir, cannot open the db) surface.
func (s Store) Load() (*DB, error) {
	return s.LoadContext(context.Background())
}

func (s Store) LoadContext(ctx context.Context) (*DB, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := migrateSQLiteState(ctx, db); err != nil {
		return nil, err
	}

	hasState, err := sqliteStateHasAnyRows(ctx, db)
	if err != nil {
		return nil, err
	}
	if !hasState {
		return SeedDB(), nil
	}

	return loadStateFromSQLite(ctx, db)
}

// Save writes the whole state with a replace-all transaction. Simple and
// safe at this scale; incremental writes can come later if the collections
// ever grow past what a person types in by hand.
func (s Store) Save(st *DB) error {
	return s.SaveContext(context.Background(), st)
}

func (s Store) SaveContext(ctx context.Context, st *DB) error {
	if st == nil {
		return errors.New("nil db")
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrateSQLiteState(ctx, db); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	meta := map[string]string{
		"version":        fmt.Sprintf("%d", st.Version),
		"identity_name":  strings.TrimSpace(st.IdentityName),
		"companion_name": strings.TrimSpace(st.CompanionName),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO state_meta(k, v) VALUES(?, ?)`, k, v); err != nil {
			return err
		}
	}

	for _, t := range []string{"notes", "ideas", "events", "goal_sections"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+t); err != nil {
			return err
		}
	}

	nowMs := time.Now().UTC().UnixMilli()

	for _, n := range st.Notes {
		raw, _ := json.Marshal(n)
		if _, err := tx.ExecContext(ctx, `INSERT INTO notes(id, done, json, updated_at_unixms) VALUES(?, ?, ?, ?)`,
			n.ID, boolToInt(n.Done), string(raw), nowMs); err != nil {
			return err
		}
	}
	for _, i := range st.Ideas {
		raw, _ := json.Marshal(i)
		if _, err := tx.ExecContext(ctx, `INSERT INTO ideas(id, category, json, updated_at_unixms) VALUES(?, ?, ?, ?)`,
			i.ID, string(i.Category), string(raw), nowMs); err != nil {
			return err
		}
	}
	for _, ev := range st.Events {
		raw, _ := json.Marshal(ev)
		if _, err := tx.ExecContext(ctx, `INSERT INTO events(id, date, start_hour, json, updated_at_unixms) VALUES(?, ?, ?, ?, ?)`,
			ev.ID, ev.Date, ev.StartHour, string(raw), nowMs); err != nil {
			return err
		}
	}
	for _, sec := range st.Sections {
		raw, _ := json.Marshal(sec)
		if _, err := tx.ExecContext(ctx, `INSERT INTO goal_sections(id, json, updated_at_unixms) VALUES(?, ?, ?)`,
			sec.ID, string(raw), nowMs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func sqliteStateHasAnyRows(ctx context.Context, db *sql.DB) (bool, error) {
	qs := []string{
		`SELECT COUNT(1) FROM notes`,
		`SELECT COUNT(1) FROM ideas`,
		`SELECT COUNT(1) FROM events`,
		`SELECT COUNT(1) FROM goal_sections`,
	}
	for _, q := range qs {
		var n int
		if err := db.QueryRowContext(ctx, q).Scan(&n); err != nil {
			// Tables missing means empty.
			return false, nil
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}

func loadStateFromSQLite(ctx context.Context, db *sql.DB) (*DB, error) {
	out := &DB{Version: 1}
	seed := SeedDB()

	readMeta := func(k string) string {
		var v string
		_ = db.QueryRowContext(ctx, `SELECT v FROM state_meta WHERE k = ?`, k).Scan(&v)
		return strings.TrimSpace(v)
	}
	if v := readMeta("version"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			out.Version = n
		}
	}
	out.IdentityName = readMeta("identity_name")
	out.CompanionName = readMeta("companion_name")

	// Malformed rows count as absent data: the affected collection falls back
	// to its seed instead of failing the whole load.
	out.Notes = readJSONRowsOr(ctx, db, `SELECT json FROM notes`, seed.Notes)
	out.Ideas = readJSONRowsOr(ctx, db, `SELECT json FROM ideas`, seed.Ideas)
	out.Events = readJSONRowsOr(ctx, db, `SELECT json FROM events`, seed.Events)
	out.Sections = readJSONRowsOr(ctx, db, `SELECT json FROM goal_sections`, seed.Sections)

	return out, nil
}

func readJSONRowsOr[T any](ctx context.Context, db *sql.DB, query string, fallback []T) []T {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return fallback
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var js string
		if err := rows.Scan(&js); err != nil {
			return fallback
		}
		var v T
		if err := json.Unmarshal([]byte(js), &v); err != nil {
			return fallback
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return fallback
	}
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

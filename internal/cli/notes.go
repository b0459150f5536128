package cli

import (
	"math/rand"
	"strings"
	"time"

	"cozy-cli/internal/model"
	"cozy-cli/internal/store"

	"github.com/spf13/cobra"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Sticky notes on the pinboard",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notes (newest-first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": db.Notes})
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Pin a new note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			n := model.Note{
				ID:      store.NewID("note"),
				Content: strings.Join(args, " "),
				// Pinboard tilt, somewhere between -3 and 3 degrees.
				Rotation:  rand.Float64()*6 - 3,
				CreatedAt: time.Now(),
			}
			db.Notes = append([]model.Note{n}, db.Notes...)
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": n})
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <note-id>",
		Short: "Toggle a note done/undone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			n, ok := db.FindNote(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("note", args[0]))
			}
			n.Done = !n.Done
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": n})
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <note-id>",
		Short: "Remove a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			kept := db.Notes[:0]
			removed := false
			for _, n := range db.Notes {
				if n.ID == args[0] {
					removed = true
					continue
				}
				kept = append(kept, n)
			}
			if !removed {
				return writeErr(cmd, errNotFound("note", args[0]))
			}
			db.Notes = kept
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"removed": args[0]}})
		},
	}

	cmd.AddCommand(listCmd, addCmd, toggleCmd, rmCmd)
	return cmd
}

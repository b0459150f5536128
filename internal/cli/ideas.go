package cli

import (
	"fmt"
	"strings"
	"time"

	"cozy-cli/internal/model"
	"cozy-cli/internal/store"

	"github.com/spf13/cobra"
)

func parseIdeaCategory(raw string) (model.IdeaCategory, error) {
	c := model.IdeaCategory(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range model.IdeaCategories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (want one of: life, work, art, random)", raw)
}

func newIdeasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "The idea shelf",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List ideas (newest-first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": db.Ideas})
		},
	}

	var category string
	var content string
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Shelve a new idea",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := parseIdeaCategory(category)
			if err != nil {
				return writeErr(cmd, err)
			}
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			idea := model.Idea{
				ID:        store.NewID("idea"),
				Title:     strings.Join(args, " "),
				Category:  cat,
				Content:   content,
				CreatedAt: time.Now(),
			}
			db.Ideas = append([]model.Idea{idea}, db.Ideas...)
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": idea})
		},
	}
	addCmd.Flags().StringVar(&category, "category", string(model.IdeaCategoryRandom), "Category (life|work|art|random)")
	addCmd.Flags().StringVar(&content, "content", "", "Idea body (markdown)")

	recatCmd := &cobra.Command{
		Use:   "recat <idea-id> <category>",
		Short: "Move an idea to another category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := parseIdeaCategory(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			idea, ok := db.FindIdea(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("idea", args[0]))
			}
			idea.Category = cat
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": idea})
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <idea-id>",
		Short: "Remove an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			kept := db.Ideas[:0]
			removed := false
			for _, idea := range db.Ideas {
				if idea.ID == args[0] {
					removed = true
					continue
				}
				kept = append(kept, idea)
			}
			if !removed {
				return writeErr(cmd, errNotFound("idea", args[0]))
			}
			db.Ideas = kept
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"removed": args[0]}})
		},
	}

	cmd.AddCommand(listCmd, addCmd, recatCmd, rmCmd)
	return cmd
}

package cli

import (
	"strings"

	"cozy-cli/internal/goals"
	"cozy-cli/internal/store"

	"github.com/spf13/cobra"
)

func newGoalsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "The identity tracker",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List goal sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"identityName": db.IdentityName,
				"data":         db.Sections,
			})
		},
	}

	identityCmd := &cobra.Command{
		Use:   "identity <name>",
		Short: "Set the \"I want to be ...\" headline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			db.IdentityName = strings.Join(args, " ")
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"identityName": db.IdentityName})
		},
	}

	sectionCmd := &cobra.Command{
		Use:   "section",
		Short: "Manage goal sections",
	}

	sectionAddCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new section with a starter goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			tr := goals.NewTracker(&db.Sections, store.NewID)
			sec := tr.AddSection()
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": sec})
		},
	}

	sectionRenameCmd := &cobra.Command{
		Use:   "rename <section-id> <title>",
		Short: "Rename a section",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			sec, ok := db.FindSection(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("section", args[0]))
			}
			tr := goals.NewTracker(&db.Sections, store.NewID)
			tr.RenameSection(sec.ID, strings.Join(args[1:], " "))
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": sec})
		},
	}

	sectionRmCmd := &cobra.Command{
		Use:   "rm <section-id>",
		Short: "Delete a section and all its goals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := db.FindSection(args[0]); !ok {
				return writeErr(cmd, errNotFound("section", args[0]))
			}
			tr := goals.NewTracker(&db.Sections, store.NewID)
			tr.RemoveSection(args[0])
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"removed": args[0]}})
		},
	}
	sectionCmd.AddCommand(sectionAddCmd, sectionRenameCmd, sectionRmCmd)

	addCmd := &cobra.Command{
		Use:   "add <section-id>",
		Short: "Add a goal to a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			tr := goals.NewTracker(&db.Sections, store.NewID)
			g, ok := tr.AddGoal(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("section", args[0]))
			}
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": g})
		},
	}

	var (
		editTitle    string
		editDeadline string
	)
	editCmd := &cobra.Command{
		Use:   "edit <section-id> <goal-id>",
		Short: "Edit a goal's title and deadline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			sec, ok := db.FindSection(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("section", args[0]))
			}
			var found bool
			for i := range sec.Goals {
				if sec.Goals[i].ID == args[1] {
					if !cmd.Flags().Changed("title") {
						editTitle = sec.Goals[i].Title
					}
					if !cmd.Flags().Changed("deadline") {
						editDeadline = sec.Goals[i].Deadline
					}
					found = true
					break
				}
			}
			if !found {
				return writeErr(cmd, errNotFound("goal", args[1]))
			}
			tr := goals.NewTracker(&db.Sections, store.NewID)
			tr.UpdateGoal(args[0], args[1], editTitle, editDeadline)
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": sec})
		},
	}
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDeadline, "deadline", "", "Deadline (YYYY-MM-DD, empty clears)")

	bumpCmd := &cobra.Command{
		Use:   "bump <section-id> <goal-id>",
		Short: "Advance a goal's progress by 10%",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := db.FindSection(args[0]); !ok {
				return writeErr(cmd, errNotFound("section", args[0]))
			}
			tr := goals.NewTracker(&db.Sections, store.NewID)
			completed := tr.BumpProgress(args[0], args[1])
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			out := map[string]any{"data": db.Sections}
			if completed {
				out["reward"] = companionRewardLine(db)
			}
			return writeOut(cmd, app, out)
		},
	}

	cmd.AddCommand(listCmd, identityCmd, sectionCmd, addCmd, editCmd, bumpCmd)
	return cmd
}

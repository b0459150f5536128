package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"cozy-cli/internal/ics"
	"cozy-cli/internal/model"
	"cozy-cli/internal/schedule"
	"cozy-cli/internal/store"

	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Calendar events",
	}

	var date string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List events, optionally for one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			es := schedule.NewEventStore(db.Events)
			if date != "" {
				return writeOut(cmd, app, map[string]any{"data": es.ByDate(date)})
			}
			return writeOut(cmd, app, map[string]any{"data": es.All()})
		},
	}
	listCmd.Flags().StringVar(&date, "date", "", "Only events on this day (YYYY-MM-DD)")

	var (
		addDate  string
		addHour  int
		addDur   int
		addColor string
		addDesc  string
	)
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := schedule.DefaultConfig()
			if addDate == "" {
				addDate = schedule.NormalizeDate(time.Now())
			}
			if _, err := schedule.ParseDate(addDate); err != nil {
				return writeErr(cmd, fmt.Errorf("bad --date %q: %w", addDate, err))
			}
			if addHour < cfg.FirstHour || addHour > cfg.LastHour {
				return writeErr(cmd, fmt.Errorf("--hour must be within %d..%d", cfg.FirstHour, cfg.LastHour))
			}
			if addDur < 1 {
				return writeErr(cmd, fmt.Errorf("--duration must be at least 1"))
			}
			if addColor == "" {
				addColor = cfg.Palette[0]
			}

			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			es := schedule.NewEventStore(db.Events)
			ev := model.CalendarEvent{
				ID:          store.NewID("ev"),
				Title:       strings.Join(args, " "),
				Date:        addDate,
				StartHour:   addHour,
				Duration:    addDur,
				Color:       addColor,
				Description: addDesc,
			}
			es.Add(ev)
			db.Events = es.All()
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ev})
		},
	}
	addCmd.Flags().StringVar(&addDate, "date", "", "Day (YYYY-MM-DD, default today)")
	addCmd.Flags().IntVar(&addHour, "hour", 9, "Start hour")
	addCmd.Flags().IntVar(&addDur, "duration", 1, "Duration in hours")
	addCmd.Flags().StringVar(&addColor, "color", "", "Hex swatch (default: first palette color)")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "Description")

	var (
		moveDate string
		moveHour int
	)
	moveCmd := &cobra.Command{
		Use:   "move <event-id>",
		Short: "Move an event to another day/hour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			es := schedule.NewEventStore(db.Events)
			ev, ok := es.Find(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("event", args[0]))
			}
			if moveDate != "" {
				if _, err := schedule.ParseDate(moveDate); err != nil {
					return writeErr(cmd, fmt.Errorf("bad --date %q: %w", moveDate, err))
				}
				ev.Date = moveDate
			}
			if cmd.Flags().Changed("hour") {
				ev.StartHour = moveHour
			}
			es.Update(ev)
			db.Events = es.All()
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ev})
		},
	}
	moveCmd.Flags().StringVar(&moveDate, "date", "", "New day (YYYY-MM-DD)")
	moveCmd.Flags().IntVar(&moveHour, "hour", 0, "New start hour")

	rmCmd := &cobra.Command{
		Use:   "rm <event-id>",
		Short: "Remove an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			es := schedule.NewEventStore(db.Events)
			if _, ok := es.Find(args[0]); !ok {
				return writeErr(cmd, errNotFound("event", args[0]))
			}
			es.Remove(args[0])
			db.Events = es.All()
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"removed": args[0]}})
		},
	}

	var outPath string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all events as iCalendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return writeErr(cmd, err)
				}
				defer f.Close()
				w = f
			}
			if err := ics.Export(w, db.Events, time.Now()); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")

	cmd.AddCommand(listCmd, addCmd, moveCmd, rmCmd, exportCmd)
	return cmd
}

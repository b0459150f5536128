package cli

import (
	"errors"
	"strings"

	"cozy-cli/internal/companion"
	"cozy-cli/internal/store"

	"github.com/spf13/cobra"
)

func companionRewardLine(db *store.DB) string {
	return companion.NewAgent(db.CompanionName).RewardLine()
}

func newAskCmd(app *App) *cobra.Command {
	var rename string

	cmd := &cobra.Command{
		Use:   "ask [query]",
		Short: "Ask the companion to find something on the calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			agent := companion.NewAgent(db.CompanionName)

			if rename != "" {
				reaction, ok := agent.Rename(rename)
				if !ok {
					return writeErr(cmd, errors.New("companion name must not be blank"))
				}
				db.CompanionName = agent.Name
				if err := s.Save(db); err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, app, map[string]any{
					"name":  agent.Name,
					"lines": []string{reaction},
				})
			}

			if len(args) == 0 {
				return cmd.Help()
			}

			// A sulking companion answers every question the same way.
			if agent.Runaway(db.Sections) {
				return writeOut(cmd, app, map[string]any{
					"name":    agent.Name,
					"runaway": true,
					"lines":   []string{agent.RunawayLine()},
				})
			}

			lines := agent.Search(db.Events, strings.Join(args, " "))
			return writeOut(cmd, app, map[string]any{
				"name":  agent.Name,
				"lines": lines,
			})
		},
	}

	cmd.Flags().StringVar(&rename, "rename", "", "Give the companion a new name")
	return cmd
}

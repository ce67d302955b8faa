package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/gitdojo/internal/curriculum"
	"github.com/abhisek/gitdojo/internal/level"
	"github.com/abhisek/gitdojo/internal/progression"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current level and progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			p := a.engine.Profile()
			a.out.field("Curriculum", curriculumName(p.Folder))
			if p.Level == curriculum.NoLevel {
				a.out.field("Level", "none selected")
			} else {
				a.out.field("Level", fmt.Sprintf("%d (%s)", a.engine.LevelNumber(), p.Level))
				l, err := a.currentLevel()
				var notFound *level.ErrLevelNotFound
				switch {
				case errors.As(err, &notFound):
					a.out.field("Difficulty", "unknown level")
				case err != nil:
					return err
				default:
					a.out.field("Difficulty", l.Stars())
				}
				a.out.field("Attempts", strconv.Itoa(p.CurrentAttempts))
				if err := levelTotals(ctx, a, p.Level); err != nil {
					return err
				}
			}

			levels, err := a.engine.Levels()
			if err != nil {
				return err
			}
			a.out.field("Completed", fmt.Sprintf("%d/%d", len(curriculum.Real(p.CompletedLevels)), len(curriculum.Real(levels))))
			if a.engine.Finished() {
				a.out.success("Curriculum complete.")
			}
			return nil
		})
	},
}

// levelTotals prints history counts for level across every invocation.
func levelTotals(ctx context.Context, a *app, name string) error {
	if a.events == nil {
		return nil
	}
	counts, err := a.events.CountByKind(ctx, name)
	if err != nil {
		return fmt.Errorf("count history: %w", err)
	}
	a.out.field("Failed checks", strconv.Itoa(counts[string(progression.EventAttemptFailed)]))
	a.out.field("Hints shown", strconv.Itoa(counts[string(progression.EventHintShown)]))
	a.out.field("Times started", strconv.Itoa(counts[string(progression.EventLevelStarted)]))
	return nil
}

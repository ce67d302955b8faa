package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/gitdojo/internal/curriculum"
	"github.com/abhisek/gitdojo/internal/level"
)

var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Show a hint for the current level",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if a.engine.Level() == curriculum.NoLevel {
				a.out.dim("No level selected. Run `gitdojo` to start.")
				return nil
			}
			l, err := a.currentLevel()
			if err != nil {
				return err
			}
			return showHint(ctx, a, l)
		})
	},
}

// showHint prints the next hint of l. Levels without hints print nothing.
func showHint(ctx context.Context, a *app, l *level.Level) error {
	h, ok, err := a.engine.NextHint(ctx, l.Hints)
	if err != nil {
		return err
	}
	if ok {
		a.out.hint("%s", h)
	}
	return nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gitdojo/internal/curriculum"
	"github.com/abhisek/gitdojo/internal/level"
	"github.com/abhisek/gitdojo/internal/ui/prompt"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the next level or check the current one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	return withApp(cmd, play)
}

func play(ctx context.Context, a *app) error {
	if err := a.requireGit(); err != nil {
		return err
	}
	if a.engine.Level() == curriculum.NoLevel {
		a.out.title("Welcome to gitdojo")
		a.out.body("Each level prepares a practice repository. Solve it, then run gitdojo again.")
		a.out.blank()
		return advanceAndStart(ctx, a)
	}

	l, err := a.currentLevel()
	var notFound *level.ErrLevelNotFound
	if errors.As(err, &notFound) {
		a.out.failure("Level %q does not exist.", a.engine.Level())
		a.out.dim("Run `gitdojo reset LEVEL` or `gitdojo folder default` to pick another one.")
		return nil
	}
	if err != nil {
		return err
	}

	passed, err := a.runner.Check(ctx, l)
	if err != nil {
		return err
	}
	if passed {
		a.engine.RecordPassed(ctx)
		a.out.success("Congratulations, you have solved the level!")
		a.out.blank()
		return advanceAndStart(ctx, a)
	}
	return failAttempt(ctx, a, l)
}

// advanceAndStart moves to the next incomplete level and prepares it, or
// reports that the curriculum is done.
func advanceAndStart(ctx context.Context, a *app) error {
	if err := a.engine.Advance(ctx); err != nil {
		return err
	}
	if a.engine.Finished() {
		a.out.success("You have completed every level. Well done!")
		return nil
	}
	if a.engine.Level() == curriculum.NoLevel {
		a.out.failure("This curriculum has no levels.")
		return nil
	}
	return a.startLevel(ctx)
}

func failAttempt(ctx context.Context, a *app, l *level.Level) error {
	attempts, err := a.engine.RecordAttempt(ctx)
	if err != nil {
		return err
	}
	a.out.failure("Sorry, this solution is not quite right!")

	after := a.cfg.HintAfter
	if after == 0 || attempts < after || len(l.Hints) == 0 {
		return nil
	}
	if !a.interactive() {
		a.out.dim("Stuck? Run `gitdojo hint`.")
		return nil
	}
	want, err := prompt.Ask(ctx, fmt.Sprintf("You have tried %d times. Would you like a hint?", attempts), a.in, a.out.w)
	if err != nil || !want {
		return err
	}
	return showHint(ctx, a, l)
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/gitdojo/internal/curriculum"
)

var resetCmd = &cobra.Command{
	Use:   "reset [LEVEL]",
	Short: "Set up the current level again, or jump to LEVEL",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := a.requireGit(); err != nil {
				return err
			}
			if len(args) == 1 {
				name := args[0]
				if !a.runner.Exists(a.engine.Profile().Folder, name) {
					a.out.failure("Level does not exist")
					return nil
				}
				if err := a.engine.SetLevel(ctx, name); err != nil {
					return err
				}
			} else if a.engine.Level() == curriculum.NoLevel {
				a.out.dim("No level selected. Run `gitdojo` to start.")
				return nil
			}
			return a.startLevel(ctx)
		})
	},
}

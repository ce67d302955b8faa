package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/gitdojo/internal/curriculum"
)

var folderCmd = &cobra.Command{
	Use:   "folder PATH|default",
	Short: "Play levels from PATH, or return to the built-in curriculum",
	Long: "folder switches to a custom curriculum. PATH must contain a config file\n" +
		"listing one level per line and a LEVEL.yml manifest for each of them.\n" +
		"Progress in the previous curriculum is discarded.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			target := args[0]
			if target != curriculum.DefaultName {
				abs, err := filepath.Abs(target)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", target, err)
				}
				target = abs
			}
			if err := a.engine.SetCurriculum(ctx, target); err != nil {
				return err
			}
			if target == curriculum.DefaultName {
				a.out.success("Switched to the built-in curriculum.")
				a.out.blank()
				return a.startLevel(ctx)
			}
			a.out.success("Switched to the curriculum in %s.", target)
			a.out.dim("Run `gitdojo` to start the first level.")
			return nil
		})
	},
}

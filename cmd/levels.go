package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gitdojo/internal/curriculum"
	"github.com/abhisek/gitdojo/internal/ui/components"
	"github.com/abhisek/gitdojo/internal/ui/theme"
)

const progressWidth = 40

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of the active curriculum",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			levels, err := a.engine.Levels()
			if err != nil {
				return err
			}
			p := a.engine.Profile()
			names := curriculum.Real(levels)

			a.out.title("%s curriculum", curriculumName(p.Folder))
			done := 0
			for i, name := range names {
				mark := " "
				switch {
				case name == p.Level:
					mark = ">"
				case p.IsCompleted(name):
					mark = "x"
				}
				if p.IsCompleted(name) {
					done++
				}
				entry := fmt.Sprintf("[%s] %2d. %s", mark, i+1, name)
				if name == p.Level {
					entry = a.out.render(theme.Selected, entry)
				}
				a.out.raw(entry)
			}
			a.out.blank()
			if a.out.styled {
				a.out.raw(components.NewProgressBar("Progress", done, len(names), progressWidth).View())
			} else {
				a.out.field("Progress", fmt.Sprintf("%d/%d", done, len(names)))
			}
			return nil
		})
	},
}

func curriculumName(folder string) string {
	if folder == "" {
		return "Built-in"
	}
	return folder
}

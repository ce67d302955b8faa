package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/gitdojo/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile [KEY]",
	Short: "Print the saved profile, or a single setting",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			p := a.engine.Profile()
			if len(args) == 1 {
				key, err := profile.ParseSetting(args[0])
				if err != nil {
					return err
				}
				v, err := p.Format(key)
				if err != nil {
					return err
				}
				a.out.raw(v)
				return nil
			}
			for _, key := range profile.AllSettings() {
				v, err := p.Format(key)
				if err != nil {
					return err
				}
				a.out.field(string(key), v)
			}
			return nil
		})
	},
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent progress events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if a.events == nil {
				a.out.dim("History is disabled.")
				return nil
			}
			events, err := a.events.Recent(ctx, limit)
			if err != nil {
				return fmt.Errorf("query history: %w", err)
			}
			if len(events) == 0 {
				a.out.dim("No history yet.")
				return nil
			}
			for _, e := range events {
				line := fmt.Sprintf("%s  %-18s %-12s", e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Kind, orNone(e.Level))
				if e.Detail != "" {
					line += " " + e.Detail
				}
				a.out.raw(line)
			}
			return nil
		})
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of events to show (0 shows all)")
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/gitdojo/internal/config"
	"github.com/abhisek/gitdojo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gitdojo",
	Short: "Learn git one level at a time",
	Long: "gitdojo sets up a practice repository for each level and checks your work.\n" +
		"Run it with no arguments to start, and again once you think you have solved the level.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("profile", "", "Path to the profile file (overrides GITDOJO_PROFILE env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides GITDOJO_DB env var)")
	rootCmd.PersistentFlags().String("repo", "", "Practice directory (overrides GITDOJO_REPO_DIR env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(folderCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig returns the environment configuration with flag overrides
// applied.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("profile"); p != "" {
		cfg.ProfilePath = p
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("repo"); p != "" {
		cfg.RepoDir = p
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// resolveDBPath returns the history database path using --db or GITDOJO_DB
// (highest priority), then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

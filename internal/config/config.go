// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/gitdojo/internal/profile"
	"github.com/abhisek/gitdojo/internal/repo"
)

// Config holds gitdojo runtime settings. Command-line flags override the
// environment.
type Config struct {
	// ProfilePath is the profile file location.
	ProfilePath string `env:"GITDOJO_PROFILE"`

	// DBPath is the history database; empty uses the XDG data directory.
	DBPath string `env:"GITDOJO_DB"`

	// RepoDir is the practice directory levels are played in.
	RepoDir string `env:"GITDOJO_REPO_DIR"`

	// HintAfter is the number of failed attempts before a hint is offered.
	// Zero disables the offer.
	HintAfter int `env:"GITDOJO_HINT_AFTER"`

	// LogLevel is a zap level name.
	LogLevel string `env:"GITDOJO_LOG_LEVEL"`

	// NoHistory disables the event history database.
	NoHistory bool `env:"GITDOJO_NO_HISTORY"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		ProfilePath: profile.DefaultPath,
		RepoDir:     repo.DefaultDir,
		HintAfter:   3,
		LogLevel:    "warn",
	}
}

// Load returns Defaults overridden by environment variables.
func Load() (Config, error) {
	cfg := Defaults()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that the environment can get wrong.
func (c Config) Validate() error {
	if c.HintAfter < 0 {
		return fmt.Errorf("GITDOJO_HINT_AFTER must not be negative, got %d", c.HintAfter)
	}
	if c.ProfilePath == "" {
		return fmt.Errorf("profile path must not be empty")
	}
	if c.RepoDir == "" {
		return fmt.Errorf("practice directory must not be empty")
	}
	return checkPracticeDir(c.RepoDir, c.ProfilePath)
}

// checkPracticeDir rejects a practice directory whose reset would delete the
// working directory, the home directory or the profile file.
func checkPracticeDir(dir, profilePath string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve practice directory: %w", err)
	}
	var protected []string
	if wd, err := os.Getwd(); err == nil {
		protected = append(protected, wd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		protected = append(protected, home)
	}
	if p, err := filepath.Abs(profilePath); err == nil {
		protected = append(protected, p)
	}
	for _, p := range protected {
		if within(abs, p) {
			return fmt.Errorf("practice directory %s contains %s, which a level reset would delete", abs, p)
		}
	}
	return nil
}

// within reports whether path is parent or lies below it.
func within(parent, path string) bool {
	rel, err := filepath.Rel(parent, path)
	return err == nil && filepath.IsLocal(rel)
}

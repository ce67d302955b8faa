package level

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/gitdojo/internal/repo"
)

// Runner loads levels and plays them against the practice repository.
type Runner struct {
	repo    *repo.Repo
	builtin map[string]Level
	logger  *zap.Logger
}

// NewRunner creates a Runner over r with the built-in catalogue.
func NewRunner(r *repo.Repo, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	levels := builtinLevels()
	byName := make(map[string]Level, len(levels))
	for _, l := range levels {
		byName[l.Name] = l
	}
	return &Runner{repo: r, builtin: byName, logger: logger}
}

// Repo returns the practice repository.
func (r *Runner) Repo() *repo.Repo {
	return r.repo
}

// Load returns the definition of name. An empty folder selects the built-in
// catalogue; otherwise the level's manifest is read from folder.
func (r *Runner) Load(folder, name string) (*Level, error) {
	if name == "" {
		return nil, &ErrLevelNotFound{Name: name, Folder: folder}
	}
	if folder != "" {
		return loadManifest(folder, name)
	}
	l, ok := r.builtin[name]
	if !ok {
		return nil, &ErrLevelNotFound{Name: name}
	}
	return &l, nil
}

// Exists reports whether name can be loaded from folder.
func (r *Runner) Exists(folder, name string) bool {
	_, err := r.Load(folder, name)
	return err == nil
}

// Prepare empties the practice directory and runs the level's setup.
func (r *Runner) Prepare(ctx context.Context, l *Level) error {
	if err := r.repo.Reset(); err != nil {
		return fmt.Errorf("reset practice repo: %w", err)
	}
	if l.Setup != nil {
		if err := l.Setup(ctx, r.repo); err != nil {
			return fmt.Errorf("setup level %s: %w", l.Name, err)
		}
	}
	r.logger.Debug("level prepared", zap.String("level", l.Name), zap.String("dir", r.repo.Dir()))
	return nil
}

// Check runs the level's validation against the practice repository.
func (r *Runner) Check(ctx context.Context, l *Level) (bool, error) {
	if l.Solution == nil {
		return false, fmt.Errorf("level %s has no solution", l.Name)
	}
	ok, err := l.Solution(ctx, r.repo)
	if err != nil {
		return false, fmt.Errorf("check level %s: %w", l.Name, err)
	}
	r.logger.Debug("level checked", zap.String("level", l.Name), zap.Bool("passed", ok))
	return ok, nil
}

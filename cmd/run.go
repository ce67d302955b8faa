package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/gitdojo/internal/config"
	"github.com/abhisek/gitdojo/internal/curriculum"
	"github.com/abhisek/gitdojo/internal/level"
	"github.com/abhisek/gitdojo/internal/logging"
	"github.com/abhisek/gitdojo/internal/profile"
	"github.com/abhisek/gitdojo/internal/progression"
	"github.com/abhisek/gitdojo/internal/repo"
	"github.com/abhisek/gitdojo/internal/store"
)

// app bundles the dependencies of a single invocation.
type app struct {
	cfg          config.Config
	logger       *zap.Logger
	invocationID string

	store   *store.Store
	events  store.EventRepo
	engine  *progression.Engine
	source  *curriculum.Source
	runner  *level.Runner
	repoErr error

	in  io.Reader
	out *printer
}

// newApp resolves configuration and builds the engine for cmd. The history
// database and the git executable are optional: their absence only disables
// the features that need them.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	a := &app{
		cfg:          cfg,
		logger:       logger,
		invocationID: uuid.NewString(),
		source:       curriculum.NewSource(level.BuiltinNames()),
		in:           cmd.InOrStdin(),
		out:          newPrinter(cmd.OutOrStdout()),
	}

	if !cfg.NoHistory {
		if err := a.openHistory(); err != nil {
			logger.Warn("history disabled", zap.Error(err))
		}
	}

	r, err := repo.New(cfg.RepoDir)
	if err != nil {
		a.repoErr = err
	}
	a.runner = level.NewRunner(r, logger)

	opts := []progression.Option{progression.WithLogger(logger)}
	if a.events != nil {
		opts = append(opts, progression.WithRecorder(progression.RecorderFunc(a.recordEvent)))
	}
	a.engine, err = progression.New(profile.NewFileStore(cfg.ProfilePath), a.source, opts...)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) openHistory() error {
	dbPath, err := resolveDBPath(a.cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.store = st
	a.events = st.EventRepo()
	return nil
}

func (a *app) recordEvent(ctx context.Context, ev progression.Event) error {
	_, err := a.events.Append(ctx, store.Event{
		InvocationID: a.invocationID,
		Kind:         string(ev.Kind),
		Level:        ev.Level,
		Detail:       ev.Detail,
	})
	return err
}

// Close releases the history database and flushes the logger.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("close store", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

// requireGit returns the reason levels cannot be played, if any.
func (a *app) requireGit() error {
	if a.repoErr == nil {
		return nil
	}
	if errors.Is(a.repoErr, repo.ErrGitNotFound) {
		return errors.New("git is not installed or not on PATH")
	}
	return a.repoErr
}

// currentLevel loads the definition of the active level.
func (a *app) currentLevel() (*level.Level, error) {
	return a.runner.Load(a.engine.Profile().Folder, a.engine.Level())
}

// startLevel prepares the practice repository for the active level and
// describes it.
func (a *app) startLevel(ctx context.Context) error {
	if err := a.requireGit(); err != nil {
		return err
	}
	l, err := a.currentLevel()
	if err != nil {
		return err
	}
	if err := a.runner.Prepare(ctx, l); err != nil {
		return err
	}
	a.describe(l)
	return nil
}

func (a *app) describe(l *level.Level) {
	a.out.title("Level %d: %s", a.engine.LevelNumber(), l.Name)
	a.out.field("Difficulty", l.Stars())
	a.out.field("Directory", a.runner.Repo().Dir())
	a.out.blank()
	a.out.card(l.Description)
}

// interactive reports whether the user can answer prompts.
func (a *app) interactive() bool {
	f, ok := a.in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// withApp runs fn with a fully wired app and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(cmd.Context(), a)
}

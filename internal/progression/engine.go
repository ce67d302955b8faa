// Package progression owns level transitions, completion bookkeeping and the
// attempt and hint counters of a profile.
package progression

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/abhisek/gitdojo/internal/curriculum"
	"github.com/abhisek/gitdojo/internal/profile"
)

// Source resolves curricula for the engine.
type Source interface {
	// Resolve returns the curriculum for folder, sentinel first.
	Resolve(folder string) ([]string, error)

	// Builtin returns the built-in curriculum, sentinel first.
	Builtin() []string

	// FirstLevel returns the first real built-in level.
	FirstLevel() string
}

// Engine is the progression state machine. It holds the loaded profile and
// saves it after every mutating operation.
type Engine struct {
	store    profile.Store
	source   Source
	recorder Recorder
	logger   *zap.Logger
	p        *profile.Profile
}

// Option configures an Engine.
type Option func(*Engine)

// WithRecorder records progression events to r.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithLogger sets the engine logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New loads the profile from store and returns an engine over it.
func New(store profile.Store, source Source, opts ...Option) (*Engine, error) {
	p, err := store.Load()
	if err != nil {
		return nil, err
	}
	e := &Engine{
		store:  store,
		source: source,
		logger: zap.NewNop(),
		p:      p,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Profile returns a copy of the current profile.
func (e *Engine) Profile() *profile.Profile {
	return e.p.Clone()
}

// Level returns the active level identifier, or curriculum.NoLevel.
func (e *Engine) Level() string {
	return e.p.Level
}

// Levels returns the active curriculum. A profile that never captured a
// snapshot falls back to resolving its folder without saving.
func (e *Engine) Levels() ([]string, error) {
	if len(e.p.CurrentLevels) > 0 {
		return slices.Clone(e.p.CurrentLevels), nil
	}
	return e.source.Resolve(e.p.Folder)
}

// LevelNumber returns the position of the active level in the curriculum.
// The sentinel is level 0; -1 means the level is not part of it.
func (e *Engine) LevelNumber() int {
	levels, err := e.Levels()
	if err != nil {
		return -1
	}
	return slices.Index(levels, e.p.Level)
}

// Finished reports whether every real level of the curriculum is completed.
func (e *Engine) Finished() bool {
	levels, err := e.Levels()
	if err != nil {
		return false
	}
	names := curriculum.Real(levels)
	if len(names) == 0 {
		return false
	}
	for _, l := range names {
		if !e.p.IsCompleted(l) {
			return false
		}
	}
	return true
}

// SetLevel selects name as the active level and resets its counters. Callers
// taking names from user input must check the level exists first.
func (e *Engine) SetLevel(ctx context.Context, name string) error {
	e.p.Level = name
	e.p.CurrentAttempts = 0
	e.p.CurrentHintIndex = 0
	if err := e.save(); err != nil {
		return err
	}
	if name != curriculum.NoLevel {
		e.record(ctx, EventLevelStarted, name, "")
	}
	e.logger.Debug("level selected", zap.String("level", name))
	return nil
}

// Advance marks the active level completed and selects the first incomplete
// level of the refreshed curriculum. When every level is completed the last
// level stays selected.
func (e *Engine) Advance(ctx context.Context) error {
	levels, err := e.source.Resolve(e.p.Folder)
	if err != nil {
		return fmt.Errorf("refresh curriculum: %w", err)
	}

	done := e.p.Level
	if done != curriculum.NoLevel && !e.p.IsCompleted(done) {
		e.p.CompletedLevels = append(e.p.CompletedLevels, done)
	}
	e.p.CompletedLevels = slices.DeleteFunc(e.p.CompletedLevels, func(l string) bool {
		return l == curriculum.NoLevel || !slices.Contains(levels, l)
	})
	e.p.CurrentLevels = levels

	if done != curriculum.NoLevel {
		e.record(ctx, EventLevelCompleted, done, "")
	}
	return e.SetLevel(ctx, nextLevel(levels, e.p.CompletedLevels))
}

// nextLevel returns the first real entry of levels not in completed, or the
// last entry when all are completed. The sentinel is never selected while a
// real level is pending.
func nextLevel(levels, completed []string) string {
	for _, l := range levels {
		if l != curriculum.NoLevel && !slices.Contains(completed, l) {
			return l
		}
	}
	if len(levels) == 0 {
		return curriculum.NoLevel
	}
	return levels[len(levels)-1]
}

// SetCurriculum switches to the curriculum in folder, or back to the built-in
// one for curriculum.DefaultName. Progress is cleared either way. The
// built-in curriculum selects its first level; a custom folder leaves no
// level selected.
func (e *Engine) SetCurriculum(ctx context.Context, folder string) error {
	if folder == curriculum.DefaultName || folder == "" {
		e.p.Folder = ""
		e.p.CurrentLevels = e.source.Builtin()
		e.p.CompletedLevels = []string{}
		e.record(ctx, EventCurriculumChanged, curriculum.NoLevel, curriculum.DefaultName)
		return e.SetLevel(ctx, e.source.FirstLevel())
	}

	levels, err := e.source.Resolve(folder)
	if err != nil {
		return err
	}
	e.p.Folder = folder
	e.p.CurrentLevels = levels
	e.p.CompletedLevels = []string{}
	e.record(ctx, EventCurriculumChanged, curriculum.NoLevel, folder)
	return e.SetLevel(ctx, curriculum.NoLevel)
}

// NextHint returns the hint at the current index and moves the index on,
// wrapping at the end. A single hint is returned without touching the
// index. With no hints it returns ok=false and does nothing.
func (e *Engine) NextHint(ctx context.Context, hints []string) (hint string, ok bool, err error) {
	switch len(hints) {
	case 0:
		return "", false, nil
	case 1:
		hint = hints[0]
	default:
		idx := e.p.CurrentHintIndex % len(hints)
		hint = hints[idx]
		e.p.CurrentHintIndex = (idx + 1) % len(hints)
		if err := e.save(); err != nil {
			return "", false, err
		}
	}
	e.record(ctx, EventHintShown, e.p.Level, hint)
	return hint, true, nil
}

// RecordAttempt counts a failed validation of the active level and returns
// the new attempt count.
func (e *Engine) RecordAttempt(ctx context.Context) (int, error) {
	e.p.CurrentAttempts++
	if err := e.save(); err != nil {
		e.p.CurrentAttempts--
		return 0, err
	}
	e.record(ctx, EventAttemptFailed, e.p.Level, fmt.Sprintf("attempt %d", e.p.CurrentAttempts))
	return e.p.CurrentAttempts, nil
}

func (e *Engine) save() error {
	if err := e.store.Save(e.p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Package level defines exercises and runs their setup and validation
// against the practice repository.
package level

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/gitdojo/internal/repo"
)

// MaxDifficulty is the highest difficulty rating.
const MaxDifficulty = 5

// SetupFunc prepares the practice repository for a level.
type SetupFunc func(ctx context.Context, r *repo.Repo) error

// SolutionFunc reports whether the practice repository satisfies a level.
type SolutionFunc func(ctx context.Context, r *repo.Repo) (bool, error)

// Level is one exercise.
type Level struct {
	Name        string
	Description string
	Difficulty  int
	Hints       []string

	// Setup runs after the practice directory is emptied. Nil means the
	// level starts from an empty directory.
	Setup SetupFunc

	// Solution validates the user's work.
	Solution SolutionFunc
}

// Stars renders the difficulty as asterisks.
func (l *Level) Stars() string {
	d := min(max(l.Difficulty, 1), MaxDifficulty)
	return strings.Repeat("*", d)
}

// ErrLevelNotFound indicates no definition exists for a level name.
type ErrLevelNotFound struct {
	Name   string
	Folder string
}

func (e *ErrLevelNotFound) Error() string {
	if e.Folder != "" {
		return fmt.Sprintf("level %q does not exist in %s", e.Name, e.Folder)
	}
	return fmt.Sprintf("level %q does not exist", e.Name)
}

// Builder assembles a Level.
type Builder struct {
	l Level
}

// New starts a Level named name with difficulty 1.
func New(name string) *Builder {
	return &Builder{l: Level{Name: name, Difficulty: 1}}
}

func (b *Builder) Description(d string) *Builder {
	b.l.Description = d
	return b
}

func (b *Builder) Difficulty(d int) *Builder {
	b.l.Difficulty = d
	return b
}

// Hint appends hints in the order they are shown.
func (b *Builder) Hint(hints ...string) *Builder {
	b.l.Hints = append(b.l.Hints, hints...)
	return b
}

func (b *Builder) Setup(f SetupFunc) *Builder {
	b.l.Setup = f
	return b
}

func (b *Builder) Solution(f SolutionFunc) *Builder {
	b.l.Solution = f
	return b
}

// Build returns the assembled Level.
func (b *Builder) Build() Level {
	l := b.l
	l.Hints = append([]string(nil), b.l.Hints...)
	return l
}

// Package curriculum resolves the ordered list of level identifiers a user
// progresses through.
//
// Every curriculum begins with the sentinel identifier NoLevel at index 0,
// meaning "not started". Real levels follow in play order.
package curriculum

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// NoLevel is the sentinel "no level selected" entry at index 0 of every
// curriculum.
const NoLevel = ""

// DefaultName is the folder value that resets to the built-in curriculum.
const DefaultName = "default"

// ConfigFile is the file inside a curriculum folder listing its levels.
const ConfigFile = "config"

// Source resolves curricula from either the built-in list or a folder.
type Source struct {
	builtin []string
}

// NewSource creates a Source whose built-in curriculum is the given level
// names in play order. The sentinel is prepended when missing.
func NewSource(builtin []string) *Source {
	levels := make([]string, 0, len(builtin)+1)
	if len(builtin) == 0 || builtin[0] != NoLevel {
		levels = append(levels, NoLevel)
	}
	levels = append(levels, builtin...)
	return &Source{builtin: levels}
}

// Resolve returns the curriculum for folder. An empty folder selects the
// built-in curriculum.
func (s *Source) Resolve(folder string) ([]string, error) {
	if folder == "" {
		return s.Builtin(), nil
	}
	names, err := ReadConfig(folder)
	if err != nil {
		return nil, err
	}
	return append([]string{NoLevel}, names...), nil
}

// Builtin returns a copy of the built-in curriculum, sentinel included.
func (s *Source) Builtin() []string {
	return slices.Clone(s.builtin)
}

// List returns the built-in level names without the sentinel.
func (s *Source) List() []string {
	return Real(s.builtin)
}

// FirstLevel returns the first real level of the built-in curriculum, or
// NoLevel when it is empty.
func (s *Source) FirstLevel() string {
	if len(s.builtin) < 2 {
		return NoLevel
	}
	return s.builtin[1]
}

// Real returns levels with every sentinel entry removed.
func Real(levels []string) []string {
	out := make([]string, 0, len(levels))
	for _, l := range levels {
		if l != NoLevel {
			out = append(out, l)
		}
	}
	return out
}

// ReadConfig reads the level names listed in <folder>/config, one per line.
// Trailing whitespace is trimmed and blank lines are skipped.
func ReadConfig(folder string) ([]string, error) {
	path := filepath.Join(folder, ConfigFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, &ErrCurriculumNotFound{Path: path, Err: err}
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		name := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, &ErrCurriculumNotFound{Path: path, Err: fmt.Errorf("read config: %w", err)}
	}
	return names, nil
}

// Package profile persists the user's progression state between invocations.
package profile

import "slices"

// DefaultPath is the profile file location, relative to the working directory.
const DefaultPath = ".profile.yml"

// Profile is the persisted progress record for one workspace.
type Profile struct {
	// Folder is the custom curriculum folder; empty selects the built-in curriculum.
	Folder string `yaml:"folder"`

	// Level is the active level identifier; empty means no level selected.
	Level string `yaml:"level"`

	// CurrentAttempts counts validation attempts since Level was selected.
	CurrentAttempts int `yaml:"current_attempts"`

	// CurrentHintIndex is the position of the next hint to show.
	CurrentHintIndex int `yaml:"current_hint_index"`

	// CurrentLevels is the curriculum snapshot captured when it was selected.
	CurrentLevels []string `yaml:"current_levels"`

	// CompletedLevels lists finished levels in completion order.
	CompletedLevels []string `yaml:"completed_levels"`
}

// Defaults returns a Profile with no curriculum progress.
func Defaults() *Profile {
	return &Profile{
		CurrentLevels:   []string{},
		CompletedLevels: []string{},
	}
}

// Clone returns a deep copy of p.
func (p *Profile) Clone() *Profile {
	c := *p
	c.CurrentLevels = slices.Clone(p.CurrentLevels)
	c.CompletedLevels = slices.Clone(p.CompletedLevels)
	c.normalize()
	return &c
}

// IsCompleted reports whether name is among the completed levels.
func (p *Profile) IsCompleted(name string) bool {
	return slices.Contains(p.CompletedLevels, name)
}

// normalize replaces nil slices and negative counters left by partial or
// hand-edited files.
func (p *Profile) normalize() {
	if p.CurrentLevels == nil {
		p.CurrentLevels = []string{}
	}
	if p.CompletedLevels == nil {
		p.CompletedLevels = []string{}
	}
	if p.CurrentAttempts < 0 {
		p.CurrentAttempts = 0
	}
	if p.CurrentHintIndex < 0 {
		p.CurrentHintIndex = 0
	}
}

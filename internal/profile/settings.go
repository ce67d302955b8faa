package profile

import (
	"slices"
	"strconv"
	"strings"
)

// Setting names one field of the profile.
type Setting string

const (
	SettingFolder           Setting = "folder"
	SettingLevel            Setting = "level"
	SettingCurrentAttempts  Setting = "current_attempts"
	SettingCurrentHintIndex Setting = "current_hint_index"
	SettingCurrentLevels    Setting = "current_levels"
	SettingCompletedLevels  Setting = "completed_levels"
)

// AllSettings returns every setting in file order.
func AllSettings() []Setting {
	return []Setting{
		SettingFolder,
		SettingLevel,
		SettingCurrentAttempts,
		SettingCurrentHintIndex,
		SettingCurrentLevels,
		SettingCompletedLevels,
	}
}

// ParseSetting maps a key name to its Setting.
func ParseSetting(name string) (Setting, error) {
	s := Setting(name)
	if !slices.Contains(AllSettings(), s) {
		return "", &ErrNoSuchSetting{Key: name}
	}
	return s, nil
}

// Get returns the value of key: a string, an int, or a []string copy.
func (p *Profile) Get(key Setting) (any, error) {
	switch key {
	case SettingFolder:
		return p.Folder, nil
	case SettingLevel:
		return p.Level, nil
	case SettingCurrentAttempts:
		return p.CurrentAttempts, nil
	case SettingCurrentHintIndex:
		return p.CurrentHintIndex, nil
	case SettingCurrentLevels:
		return slices.Clone(p.CurrentLevels), nil
	case SettingCompletedLevels:
		return slices.Clone(p.CompletedLevels), nil
	default:
		return nil, &ErrNoSuchSetting{Key: string(key)}
	}
}

// Set assigns value to key. The value must have the type Get returns for it.
func (p *Profile) Set(key Setting, value any) error {
	switch key {
	case SettingFolder, SettingLevel:
		v, ok := value.(string)
		if !ok {
			return &ErrSettingType{Key: key, Want: "string", Got: value}
		}
		if key == SettingFolder {
			p.Folder = v
		} else {
			p.Level = v
		}
	case SettingCurrentAttempts, SettingCurrentHintIndex:
		v, ok := value.(int)
		if !ok || v < 0 {
			return &ErrSettingType{Key: key, Want: "non-negative int", Got: value}
		}
		if key == SettingCurrentAttempts {
			p.CurrentAttempts = v
		} else {
			p.CurrentHintIndex = v
		}
	case SettingCurrentLevels, SettingCompletedLevels:
		v, ok := value.([]string)
		if !ok {
			return &ErrSettingType{Key: key, Want: "[]string", Got: value}
		}
		if key == SettingCurrentLevels {
			p.CurrentLevels = slices.Clone(v)
		} else {
			p.CompletedLevels = slices.Clone(v)
		}
	default:
		return &ErrNoSuchSetting{Key: string(key)}
	}
	return nil
}

// Format renders the value of key for display. Empty identifiers print as "-".
func (p *Profile) Format(key Setting) (string, error) {
	v, err := p.Get(key)
	if err != nil {
		return "", err
	}
	switch v := v.(type) {
	case string:
		return orDash(v), nil
	case int:
		return strconv.Itoa(v), nil
	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			out[i] = orDash(s)
		}
		return "[" + strings.Join(out, ", ") + "]", nil
	}
	return "", nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

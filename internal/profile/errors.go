package profile

import "fmt"

// ErrStorage indicates the profile file could not be read or written.
type ErrStorage struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *ErrStorage) Error() string {
	return fmt.Sprintf("profile %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ErrStorage) Unwrap() error { return e.Err }

// ErrNoSuchSetting indicates access to a profile key that does not exist.
type ErrNoSuchSetting struct {
	Key string
}

func (e *ErrNoSuchSetting) Error() string {
	return fmt.Sprintf("no such setting %q", e.Key)
}

// ErrSettingType indicates a value of the wrong type was assigned to a setting.
type ErrSettingType struct {
	Key  Setting
	Want string
	Got  any
}

func (e *ErrSettingType) Error() string {
	return fmt.Sprintf("setting %q expects %s, got %T", string(e.Key), e.Want, e.Got)
}

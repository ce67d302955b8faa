package curriculum

import "fmt"

// ErrCurriculumNotFound indicates a custom curriculum folder has no readable
// config file.
type ErrCurriculumNotFound struct {
	Path string
	Err  error
}

func (e *ErrCurriculumNotFound) Error() string {
	return fmt.Sprintf("curriculum not found at %s: %v", e.Path, e.Err)
}

func (e *ErrCurriculumNotFound) Unwrap() error { return e.Err }

package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store loads and saves the profile.
type Store interface {
	// Load returns the persisted profile, or defaults when none exists.
	Load() (*Profile, error)

	// Save fully overwrites the persisted profile.
	Save(p *Profile) error
}

// FileStore keeps the profile as a YAML document on disk.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore at path. An empty path uses DefaultPath.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

// Path returns the profile file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the profile file. Keys missing from the file keep their
// default values.
func (s *FileStore) Load() (*Profile, error) {
	p := Defaults()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return nil, &ErrStorage{Op: "load", Path: s.path, Err: err}
	}

	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, &ErrStorage{Op: "load", Path: s.path, Err: fmt.Errorf("parse yaml: %w", err)}
	}
	p.normalize()
	return p, nil
}

// Save writes every field of p, replacing the previous file.
func (s *FileStore) Save(p *Profile) error {
	data, err := yaml.Marshal(p.Clone())
	if err != nil {
		return &ErrStorage{Op: "save", Path: s.path, Err: fmt.Errorf("encode yaml: %w", err)}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &ErrStorage{Op: "save", Path: s.path, Err: err}
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &ErrStorage{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

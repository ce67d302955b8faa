package level

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/gitdojo/internal/repo"
)

// ManifestExt is the file extension of level manifests in a curriculum folder.
const ManifestExt = ".yml"

// Manifest is the on-disk definition of a level in a custom curriculum.
type Manifest struct {
	Description string      `yaml:"description"`
	Difficulty  int         `yaml:"difficulty"`
	Hint        string      `yaml:"hint"`
	Hints       []string    `yaml:"hints"`
	Setup       SetupSpec   `yaml:"setup"`
	Checks      []CheckSpec `yaml:"checks"`
}

// SetupSpec prepares the practice repository. Steps run in field order.
type SetupSpec struct {
	Init   bool              `yaml:"init"`
	Files  map[string]string `yaml:"files"`
	Git    [][]string        `yaml:"git"`
	Commit string            `yaml:"commit"`
}

// CheckSpec is one validation step: a git command that must succeed, with
// optional expectations on its output.
type CheckSpec struct {
	Git      []string `yaml:"git"`
	Contains string   `yaml:"contains"`
	Excludes string   `yaml:"excludes"`
}

// ErrInvalidManifest indicates a manifest that cannot be parsed or does not
// match the manifest schema.
type ErrInvalidManifest struct {
	Path string
	Err  error
}

func (e *ErrInvalidManifest) Error() string {
	return fmt.Sprintf("invalid level manifest %s: %v", e.Path, e.Err)
}

func (e *ErrInvalidManifest) Unwrap() error { return e.Err }

const manifestSchema = `{
  "type": "object",
  "required": ["description", "checks"],
  "additionalProperties": false,
  "properties": {
    "description": {"type": "string", "minLength": 1},
    "difficulty": {"type": "integer", "minimum": 1, "maximum": 5},
    "hint": {"type": "string"},
    "hints": {"type": "array", "items": {"type": "string"}},
    "setup": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "init": {"type": "boolean"},
        "files": {"type": "object", "additionalProperties": {"type": "string"}},
        "git": {"type": "array", "items": {"type": "array", "minItems": 1, "items": {"type": "string"}}},
        "commit": {"type": "string"}
      }
    },
    "checks": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["git"],
        "additionalProperties": false,
        "properties": {
          "git": {"type": "array", "minItems": 1, "items": {"type": "string"}},
          "contains": {"type": "string"},
          "excludes": {"type": "string"}
        }
      }
    }
  },
  "not": {"required": ["hint", "hints"]}
}`

const manifestSchemaURL = "schema://level-manifest.json"

var compiledManifestSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal([]byte(manifestSchema), &doc); err != nil {
		return nil, fmt.Errorf("parse manifest schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(manifestSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(manifestSchemaURL)
})

// ManifestPath returns where the manifest for name lives in folder.
func ManifestPath(folder, name string) string {
	return filepath.Join(folder, name+ManifestExt)
}

// ParseManifest decodes and validates a manifest document.
func ParseManifest(data []byte) (*Manifest, error) {
	// Validate the generic form first so schema errors name the offending key.
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("convert to json: %w", err)
	}
	var doc any
	if err := json.Unmarshal(asJSON, &doc); err != nil {
		return nil, fmt.Errorf("convert to json: %w", err)
	}

	schema, err := compiledManifestSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// loadManifest reads the manifest for name from folder.
func loadManifest(folder, name string) (*Level, error) {
	path := ManifestPath(folder, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrLevelNotFound{Name: name, Folder: folder}
		}
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, &ErrInvalidManifest{Path: path, Err: err}
	}
	l := m.Level(name)
	return &l, nil
}

// Level builds the Level described by m.
func (m *Manifest) Level(name string) Level {
	b := New(name).Description(m.Description)
	if m.Difficulty > 0 {
		b.Difficulty(m.Difficulty)
	}
	if m.Hint != "" {
		b.Hint(m.Hint)
	}
	b.Hint(m.Hints...)

	setup := m.Setup
	b.Setup(func(ctx context.Context, r *repo.Repo) error {
		return setup.run(ctx, r)
	})
	checks := slices.Clone(m.Checks)
	b.Solution(func(ctx context.Context, r *repo.Repo) (bool, error) {
		for _, c := range checks {
			if !c.passes(ctx, r) {
				return false, nil
			}
		}
		return true, nil
	})
	return b.Build()
}

func (s SetupSpec) run(ctx context.Context, r *repo.Repo) error {
	if s.Init {
		if err := r.Init(ctx); err != nil {
			return err
		}
	}
	names := make([]string, 0, len(s.Files))
	for name := range s.Files {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := r.WriteFile(name, s.Files[name]); err != nil {
			return err
		}
	}
	for _, args := range s.Git {
		if _, err := r.Git(ctx, args...); err != nil {
			return err
		}
	}
	if s.Commit != "" {
		return r.Commit(ctx, s.Commit)
	}
	return nil
}

func (c CheckSpec) passes(ctx context.Context, r *repo.Repo) bool {
	out, err := r.Git(ctx, c.Git...)
	if err != nil {
		return false
	}
	if c.Contains != "" && !strings.Contains(out, c.Contains) {
		return false
	}
	if c.Excludes != "" && strings.Contains(out, c.Excludes) {
		return false
	}
	return true
}

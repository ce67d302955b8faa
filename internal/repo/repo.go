// Package repo drives the git executable inside the practice directory that
// levels are played in.
package repo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultDir is the practice directory, relative to the working directory.
const DefaultDir = "git_dojo"

// ErrGitNotFound indicates the git executable is not on PATH.
var ErrGitNotFound = errors.New("git executable not found on PATH")

// ErrOutsideRepo indicates a file name that is absolute or escapes the
// practice directory.
var ErrOutsideRepo = errors.New("path is outside the practice directory")

// Identity used for commits made by level setups.
const (
	setupUserName  = "gitdojo"
	setupUserEmail = "gitdojo@example.com"
)

// ErrGit describes a failed git invocation.
type ErrGit struct {
	Args   []string
	Output string
	Err    error
}

func (e *ErrGit) Error() string {
	return fmt.Sprintf("git %s: %v: %s", strings.Join(e.Args, " "), e.Err, strings.TrimSpace(e.Output))
}

func (e *ErrGit) Unwrap() error { return e.Err }

// Repo is the practice directory.
type Repo struct {
	dir string
	git string
}

// New returns a Repo rooted at dir. It fails when git is not installed.
func New(dir string) (*Repo, error) {
	if dir == "" {
		dir = DefaultDir
	}
	git, err := exec.LookPath("git")
	if err != nil {
		return nil, ErrGitNotFound
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve repo dir: %w", err)
	}
	return &Repo{dir: abs, git: git}, nil
}

// Dir returns the absolute practice directory.
func (r *Repo) Dir() string {
	return r.dir
}

// Reset deletes the practice directory and recreates it empty.
func (r *Repo) Reset() error {
	if err := os.RemoveAll(r.dir); err != nil {
		return fmt.Errorf("remove %s: %w", r.dir, err)
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", r.dir, err)
	}
	return nil
}

// Git runs git with args in the practice directory and returns its combined
// output.
func (r *Repo) Git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.git, args...)
	cmd.Dir = r.dir
	// Checks only see the practice repository's own config. Later entries
	// win over the inherited environment.
	cmd.Env = append(os.Environ(),
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_CONFIG_GLOBAL="+os.DevNull,
		"GIT_TERMINAL_PROMPT=0")

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return out.String(), &ErrGit{Args: args, Output: out.String(), Err: err}
	}
	return out.String(), nil
}

// Init creates an empty repository in the practice directory.
func (r *Repo) Init(ctx context.Context) error {
	_, err := r.Git(ctx, "init", "--quiet")
	return err
}

// Commit commits the index with the setup identity.
func (r *Repo) Commit(ctx context.Context, message string) error {
	_, err := r.Git(ctx,
		"-c", "user.name="+setupUserName,
		"-c", "user.email="+setupUserEmail,
		"commit", "--quiet", "-m", message)
	return err
}

// path resolves name inside the practice directory.
func (r *Repo) path(name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%s: %w", name, ErrOutsideRepo)
	}
	return filepath.Join(r.dir, name), nil
}

// WriteFile writes content to name, relative to the practice directory.
func (r *Repo) WriteFile(name, content string) error {
	path, err := r.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// ReadFile returns the content of name, relative to the practice directory.
func (r *Repo) ReadFile(name string) (string, error) {
	path, err := r.path(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Exists reports whether name exists in the practice directory.
func (r *Repo) Exists(name string) bool {
	path, err := r.path(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// IsRepo reports whether the practice directory itself is a repository root.
func (r *Repo) IsRepo(ctx context.Context) bool {
	out, err := r.Git(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return false
	}
	top, err := filepath.EvalSymlinks(strings.TrimSpace(out))
	if err != nil {
		return false
	}
	dir, err := filepath.EvalSymlinks(r.dir)
	if err != nil {
		return false
	}
	return top == dir
}

// ConfigValue returns the repository-local value of key, or "" when unset.
func (r *Repo) ConfigValue(ctx context.Context, key string) string {
	out, err := r.Git(ctx, "config", "--local", "--get", key)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// StagedFiles lists paths with staged changes.
func (r *Repo) StagedFiles(ctx context.Context) ([]string, error) {
	out, err := r.Git(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, err
	}
	return lines(out), nil
}

// TrackedFiles lists paths in the index.
func (r *Repo) TrackedFiles(ctx context.Context) ([]string, error) {
	out, err := r.Git(ctx, "ls-files")
	if err != nil {
		return nil, err
	}
	return lines(out), nil
}

// CommitCount returns the number of commits reachable from HEAD, 0 when
// there are none.
func (r *Repo) CommitCount(ctx context.Context) int {
	out, err := r.Git(ctx, "rev-list", "--count", "HEAD")
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0
	}
	return n
}

// Branches lists local branch names.
func (r *Repo) Branches(ctx context.Context) ([]string, error) {
	out, err := r.Git(ctx, "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return lines(out), nil
}

// CurrentBranch returns the checked-out branch name.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.Git(ctx, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

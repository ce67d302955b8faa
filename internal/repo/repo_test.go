package repo

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	r, err := New(filepath.Join(t.TempDir(), DefaultDir))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return r
}

func TestInitAndIsRepo(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if r.IsRepo(ctx) {
		t.Fatal("fresh directory reported as repository")
	}
	if err := r.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !r.IsRepo(ctx) {
		t.Fatal("expected repository after Init")
	}
}

func TestStageAndCommit(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := r.WriteFile("README", "hello\n"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := r.Git(ctx, "add", "README"); err != nil {
		t.Fatalf("add: %v", err)
	}

	staged, err := r.StagedFiles(ctx)
	if err != nil {
		t.Fatalf("StagedFiles: %v", err)
	}
	if !slices.Equal(staged, []string{"README"}) {
		t.Errorf("StagedFiles = %q, want [README]", staged)
	}
	if n := r.CommitCount(ctx); n != 0 {
		t.Errorf("CommitCount before commit = %d, want 0", n)
	}

	if err := r.Commit(ctx, "first"); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if n := r.CommitCount(ctx); n != 1 {
		t.Errorf("CommitCount = %d, want 1", n)
	}
	tracked, err := r.TrackedFiles(ctx)
	if err != nil {
		t.Fatalf("TrackedFiles: %v", err)
	}
	if !slices.Contains(tracked, "README") {
		t.Errorf("TrackedFiles = %q, want README", tracked)
	}
}

func TestBranches(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := r.WriteFile("a.txt", "a"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := r.Git(ctx, "add", "."); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := r.Commit(ctx, "init"); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if _, err := r.Git(ctx, "checkout", "--quiet", "-b", "feature"); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	cur, err := r.CurrentBranch(ctx)
	if err != nil {
		t.Fatalf("CurrentBranch: %v", err)
	}
	if cur != "feature" {
		t.Errorf("CurrentBranch = %q, want feature", cur)
	}
	branches, err := r.Branches(ctx)
	if err != nil {
		t.Fatalf("Branches: %v", err)
	}
	if !slices.Contains(branches, "feature") || len(branches) != 2 {
		t.Errorf("Branches = %q", branches)
	}
}

func TestConfigValue(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if v := r.ConfigValue(ctx, "user.name"); v != "" {
		t.Errorf("ConfigValue before set = %q", v)
	}
	if _, err := r.Git(ctx, "config", "user.name", "Ada"); err != nil {
		t.Fatalf("config: %v", err)
	}
	if v := r.ConfigValue(ctx, "user.name"); v != "Ada" {
		t.Errorf("ConfigValue = %q, want Ada", v)
	}
}

func TestGitError(t *testing.T) {
	r := newTestRepo(t)
	_, err := r.Git(context.Background(), "not-a-command")

	var gitErr *ErrGit
	if !errors.As(err, &gitErr) {
		t.Fatalf("error = %v, want *ErrGit", err)
	}
	if gitErr.Args[0] != "not-a-command" {
		t.Errorf("Args = %q", gitErr.Args)
	}
}

func TestResetClearsDirectory(t *testing.T) {
	r := newTestRepo(t)
	if err := r.WriteFile("junk.txt", "x"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := r.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if r.Exists("junk.txt") {
		t.Error("Reset left files behind")
	}
}

func TestWriteFile_RejectsEscapingPaths(t *testing.T) {
	root := t.TempDir()
	r := &Repo{dir: filepath.Join(root, DefaultDir)}

	tests := []string{
		"../escaped.txt",
		"nested/../../escaped.txt",
		filepath.Join(root, "escaped.txt"),
		"",
	}
	for _, name := range tests {
		if err := r.WriteFile(name, "x"); !errors.Is(err, ErrOutsideRepo) {
			t.Errorf("WriteFile(%q) error = %v, want ErrOutsideRepo", name, err)
		}
		if _, err := r.ReadFile(name); !errors.Is(err, ErrOutsideRepo) {
			t.Errorf("ReadFile(%q) error = %v, want ErrOutsideRepo", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "escaped.txt")); !os.IsNotExist(err) {
		t.Errorf("file written outside the practice directory: %v", err)
	}
	if r.Exists("..") {
		t.Error("Exists followed a path outside the practice directory")
	}
}

func TestWriteFile_NestedPath(t *testing.T) {
	r := &Repo{dir: t.TempDir()}
	if err := r.WriteFile("src/lib/a.txt", "a"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got, err := r.ReadFile("src/lib/a.txt"); err != nil || got != "a" {
		t.Errorf("ReadFile = %q, %v", got, err)
	}
}

func TestGit_IgnoresGlobalConfig(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, ".gitconfig"), []byte("[user]\n\tname = Global User\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	if err := r.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if out, err := r.Git(ctx, "config", "--get", "user.name"); err == nil {
		t.Errorf("global user.name visible to checks: %q", out)
	}
}

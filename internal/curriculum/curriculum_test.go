package curriculum

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestNewSource_PrependsSentinel(t *testing.T) {
	s := NewSource([]string{"init", "add"})
	got := s.Builtin()
	want := []string{NoLevel, "init", "add"}
	if len(got) != len(want) {
		t.Fatalf("Builtin() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Builtin()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewSource_KeepsExistingSentinel(t *testing.T) {
	s := NewSource([]string{NoLevel, "init"})
	if got := len(s.Builtin()); got != 2 {
		t.Errorf("len(Builtin()) = %d, want 2", got)
	}
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	s := NewSource([]string{"init", "add"})
	b := s.Builtin()
	b[1] = "mutated"
	if s.Builtin()[1] != "init" {
		t.Error("Builtin() exposed internal slice")
	}
}

func TestList_DropsSentinel(t *testing.T) {
	s := NewSource([]string{"init", "add", "commit"})
	got := s.List()
	if len(got) != 3 || got[0] != "init" || got[2] != "commit" {
		t.Errorf("List() = %q", got)
	}
}

func TestFirstLevel(t *testing.T) {
	if got := NewSource([]string{"init", "add"}).FirstLevel(); got != "init" {
		t.Errorf("FirstLevel() = %q, want %q", got, "init")
	}
	if got := NewSource(nil).FirstLevel(); got != NoLevel {
		t.Errorf("FirstLevel() on empty = %q, want sentinel", got)
	}
}

func TestResolve_Builtin(t *testing.T) {
	s := NewSource([]string{"init"})
	got, err := s.Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 2 || got[0] != NoLevel || got[1] != "init" {
		t.Errorf("Resolve(\"\") = %q", got)
	}
}

func TestResolve_Folder(t *testing.T) {
	dir := writeConfig(t, "level1\nlevel2  \nlevel3\t\r\n")
	s := NewSource([]string{"init"})

	got, err := s.Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{NoLevel, "level1", "level2", "level3"}
	if len(got) != len(want) {
		t.Fatalf("Resolve = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Resolve[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadConfig_SkipsBlankLines(t *testing.T) {
	dir := writeConfig(t, "a\n\n   \nb\n")
	got, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("ReadConfig = %q, want [a b]", got)
	}
}

func TestResolve_MissingConfig(t *testing.T) {
	s := NewSource(nil)
	_, err := s.Resolve(t.TempDir())

	var notFound *ErrCurriculumNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *ErrCurriculumNotFound", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestReal(t *testing.T) {
	got := Real([]string{NoLevel, "a", NoLevel, "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Real = %q", got)
	}
}

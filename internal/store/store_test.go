package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	var got string
	if err := s.DB().QueryRow("PRAGMA synchronous").Scan(&got); err != nil {
		t.Fatalf("PRAGMA synchronous: %v", err)
	}
	// NORMAL = 1
	if got != "1" {
		t.Errorf("PRAGMA synchronous = %q, want %q", got, "1")
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if _, err := s1.EventRepo().Append(context.Background(), Event{Kind: "level_started", Level: "init"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	var versions int
	if err := s2.DB().QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&versions); err != nil {
		t.Fatalf("count versions: %v", err)
	}
	if versions != 2 {
		t.Errorf("schema_version rows = %d, want 2", versions)
	}

	events, err := s2.EventRepo().Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("events after reopen = %d, want 1", len(events))
	}

	next, err := s2.EventRepo().Append(context.Background(), Event{Kind: "hint_shown", Level: "init"})
	if err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	if next.Sequence != 2 {
		t.Errorf("sequence after reopen = %d, want 2", next.Sequence)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx, s.db)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Errorf("sequence %d not greater than %d", seq, prev)
		}
		prev = seq
	}
}

func TestAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Now().Truncate(time.Millisecond)
	inputs := []Event{
		{InvocationID: "a", Kind: "level_started", Level: "init", CreatedAt: base},
		{InvocationID: "a", Kind: "attempt_failed", Level: "init", Detail: "attempt 1", CreatedAt: base.Add(time.Second)},
		{InvocationID: "b", Kind: "level_completed", Level: "init", CreatedAt: base.Add(2 * time.Second)},
	}
	for _, e := range inputs {
		got, err := repo.Append(ctx, e)
		if err != nil {
			t.Fatalf("append: %v", err)
		}
		if got.Sequence == 0 {
			t.Error("expected assigned sequence")
		}
	}

	events, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Kind != "level_completed" || events[1].Kind != "attempt_failed" {
		t.Errorf("order = %s, %s; want newest first", events[0].Kind, events[1].Kind)
	}
	if events[1].Detail != "attempt 1" {
		t.Errorf("detail = %q", events[1].Detail)
	}
	if !events[0].CreatedAt.Equal(base.Add(2 * time.Second)) {
		t.Errorf("created_at = %v, want %v", events[0].CreatedAt, base.Add(2*time.Second))
	}
}

func TestAppendDefaultsTimestamp(t *testing.T) {
	s := openTestStore(t)
	got, err := s.EventRepo().Append(context.Background(), Event{Kind: "hint_shown"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestCountByKind(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []Event{
		{Kind: "attempt_failed", Level: "add"},
		{Kind: "attempt_failed", Level: "add"},
		{Kind: "hint_shown", Level: "add"},
		{Kind: "attempt_failed", Level: "commit"},
		{Kind: "curriculum_changed", Detail: "default"},
	} {
		if _, err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	add, err := repo.CountByKind(ctx, "add")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if add["attempt_failed"] != 2 || add["hint_shown"] != 1 {
		t.Errorf("counts(add) = %v", add)
	}

	if add["curriculum_changed"] != 0 {
		t.Errorf("counts(add) includes events of no level: %v", add)
	}

	none, err := repo.CountByKind(ctx, "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if none["curriculum_changed"] != 1 || none["attempt_failed"] != 0 {
		t.Errorf(`counts("") = %v`, none)
	}
}

func TestParseMigrationVersion(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{"001_events.sql", 1, false},
		{"012_more.sql", 12, false},
		{"events.sql", 0, true},
		{"abc_events.sql", 0, true},
	}
	for _, tt := range tests {
		got, err := parseMigrationVersion(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseMigrationVersion(%q) error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("parseMigrationVersion(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	want := filepath.Join(dir, "gitdojo", "history.db")
	if got != want {
		t.Errorf("DefaultDBPath = %q, want %q", got, want)
	}
}

// Package store keeps the append-only history of progression events in
// SQLite.
package store

import (
	"context"
	"time"
)

// Event is one recorded progression fact.
type Event struct {
	Sequence     int64
	InvocationID string
	Kind         string
	Level        string
	Detail       string
	CreatedAt    time.Time
}

// EventRepo provides append and query access to events.
type EventRepo interface {
	// Append records an event. Sequence is assigned by the repo; a zero
	// CreatedAt is set to the current time.
	Append(ctx context.Context, e Event) (Event, error)

	// Recent returns up to limit events, newest first. limit <= 0 returns all.
	Recent(ctx context.Context, limit int) ([]Event, error)

	// CountByKind returns per-kind event counts for level. Events that
	// belong to no level, such as curriculum changes, are counted under "".
	CountByKind(ctx context.Context, level string) (map[string]int, error)
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// eventRepo implements EventRepo with raw SQL.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) Append(ctx context.Context, e Event) (Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Event{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	seqNum, err := r.seq.Next(ctx, tx)
	if err != nil {
		return Event{}, err
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.Sequence = seqNum

	_, err = tx.ExecContext(ctx,
		`INSERT INTO events (sequence, invocation_id, kind, level, detail, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.Sequence, e.InvocationID, e.Kind, e.Level, e.Detail, e.CreatedAt.UnixMilli())
	if err != nil {
		return Event{}, fmt.Errorf("save %s event: %w", e.Kind, err)
	}
	if err := tx.Commit(); err != nil {
		return Event{}, fmt.Errorf("commit %s event: %w", e.Kind, err)
	}
	return e, nil
}

func (r *eventRepo) Recent(ctx context.Context, limit int) ([]Event, error) {
	query := `SELECT sequence, invocation_id, kind, level, detail, created_at FROM events ORDER BY sequence DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var createdMs int64
		if err := rows.Scan(&e.Sequence, &e.InvocationID, &e.Kind, &e.Level, &e.Detail, &createdMs); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.CreatedAt = time.UnixMilli(createdMs)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) CountByKind(ctx context.Context, level string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, COUNT(*) FROM events WHERE level = ? GROUP BY kind`, level)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

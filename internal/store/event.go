package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// queryRower is satisfied by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sequenceCounter hands out the monotonic sequence that orders events across
// invocations. A counter row is used instead of the rowid so that numbers are
// never reused after events are pruned.
type sequenceCounter struct {
	mu sync.Mutex
}

// Next claims the next sequence number through q. Passing the transaction
// that inserts the event rolls the claim back with it.
func (sc *sequenceCounter) Next(ctx context.Context, q queryRower) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := q.QueryRowContext(ctx,
		`UPDATE event_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

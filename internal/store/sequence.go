package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequence numbers every event across all event tables, so a merged feed
// can be ordered even though each table has its own row IDs. The single
// row of event_sequence holds the last number handed out.
type sequence struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequence(ctx context.Context, db *sql.DB) (*sequence, error) {
	if _, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO event_sequence (id, last) VALUES (1, 0)`); err != nil {
		return nil, fmt.Errorf("seed event sequence: %w", err)
	}
	return &sequence{db: db}, nil
}

// Next returns the next number, starting at 1.
func (s *sequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	row := s.db.QueryRowContext(ctx, `UPDATE event_sequence SET last = last + 1 WHERE id = 1 RETURNING last`)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}

// Package sqlite persists the unlock event log on a local SQLite file for
// single-binary and development deployments, where a Postgres instance is
// more ceremony than the log deserves.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"guildhall/internal/app/ports"
)

type Store struct {
	db *sql.DB
}

// New opens (or creates) the database and initializes the schema. WAL mode
// keeps concurrent readers cheap while the tick loop writes.
func New(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS unlock_events (
		event_id    TEXT PRIMARY KEY,
		gate_id     TEXT NOT NULL,
		gate_type   TEXT NOT NULL,
		gate_name   TEXT NOT NULL,
		occurred_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_unlock_events_occurred ON unlock_events(occurred_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Append(ctx context.Context, events []ports.GateUnlockedEvent) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO unlock_events (event_id, gate_id, gate_type, gate_name, occurred_at) VALUES (?, ?, ?, ?, ?)`,
			e.EventID, e.GateID, e.GateType, e.GateName, e.OccurredAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("insert unlock event %s: %w", e.EventID, err)
		}
	}
	return tx.Commit()
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]ports.GateUnlockedEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT event_id, gate_id, gate_type, gate_name, occurred_at
		 FROM unlock_events ORDER BY occurred_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ports.GateUnlockedEvent{}
	for rows.Next() {
		var e ports.GateUnlockedEvent
		var occurredAt string
		if err := rows.Scan(&e.EventID, &e.GateID, &e.GateType, &e.GateName, &occurredAt); err != nil {
			return nil, err
		}
		e.EventType = ports.EventTypeGateUnlocked
		e.OccurredAt, _ = time.Parse(time.RFC3339Nano, occurredAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Publish(ctx context.Context, event ports.GateUnlockedEvent) error {
	return s.Append(ctx, []ports.GateUnlockedEvent{event})
}

var (
	_ ports.UnlockEventRepository = (*Store)(nil)
	_ ports.EventPublisher        = (*Store)(nil)
)

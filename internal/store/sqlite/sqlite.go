// Package sqlite provides SQLite storage for the feeder state and history.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/inovacc/feedr/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNoRecord is returned by LoadRecord before the first save.
var ErrNoRecord = errors.New("no state record")

const queryTimeout = 30 * time.Second

// Store keeps the state record and the feed history in a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
func New(dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't handle multiple writers well
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	migrator := NewMigrator(db)
	if err := migrator.MigrateUp(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks if the database is accessible.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// LoadRecord returns the saved state record.
func (s *Store) LoadRecord() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var record string

	err := s.db.QueryRowContext(ctx, `SELECT record FROM state WHERE id = 1`).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoRecord
	}

	if err != nil {
		return "", fmt.Errorf("reading state: %w", err)
	}

	return record, nil
}

// SaveRecord replaces the saved state record.
func (s *Store) SaveRecord(record string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO state (id, record, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at
	`, record)
	if err != nil {
		return fmt.Errorf("writing state: %w", err)
	}

	return nil
}

// AppendEvent adds a feed to the history.
func (s *Store) AppendEvent(ev model.FeedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feed_events (uid, source, rotations, fed_at, auto_feeds_done)
		VALUES (?, ?, ?, ?, ?)
	`, ev.ID, string(ev.Source), ev.Rotations, ev.FedAt.UTC().Format(time.RFC3339), ev.AutoFeedsDone)
	if err != nil {
		return fmt.Errorf("inserting feed event: %w", err)
	}

	return nil
}

// ListEvents returns up to limit feeds, newest first. A limit of 0 or less
// returns every feed.
func (s *Store) ListEvents(limit int) ([]model.FeedEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT uid, source, rotations, fed_at, auto_feeds_done
		FROM feed_events
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying feed events: %w", err)
	}
	defer rows.Close()

	var events []model.FeedEvent

	for rows.Next() {
		var row eventRow
		if err := rows.Scan(&row.UID, &row.Source, &row.Rotations, &row.FedAt, &row.AutoFeedsDone); err != nil {
			return nil, fmt.Errorf("scanning feed event: %w", err)
		}

		ev, err := row.toModel()
		if err != nil {
			return nil, err
		}

		events = append(events, ev)
	}

	return events, rows.Err()
}

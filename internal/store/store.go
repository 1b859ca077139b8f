package store

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/inovacc/feedr/internal/model"
)

// ErrNoState is returned by LoadState before anything was saved.
var ErrNoState = errors.New("no saved state")

// State is everything persisted across restarts.
type State struct {
	// WarmStart is the clock reading (unix seconds) to resume from, 0 for none
	WarmStart int64

	Schedule model.Schedule
}

// DefaultState is used when nothing valid was persisted.
func DefaultState() State {
	return State{Schedule: model.NewSchedule()}
}

// Store defines the persistence operations used by the app.
type Store interface {
	Ping() error
	LoadState() (State, error)
	SaveState(st State) error
	AppendEvent(ev model.FeedEvent) error
	ListEvents(limit int) ([]model.FeedEvent, error)
	Close() error
}

const (
	stateFileName   = "state.txt"
	historyFileName = "history.jsonl"
	boltFileName    = "feedr.bolt"
	sqliteFileName  = "feedr.db"
)

// Open opens the backend kind inside dir.
func Open(kind model.StoreKind, dir string) (Store, error) {
	switch kind {
	case model.StoreFile, "":
		return NewFileStore(dir)
	case model.StoreBolt:
		return NewBoltStore(filepath.Join(dir, boltFileName))
	case model.StoreSQLite:
		return NewSQLiteStore(filepath.Join(dir, sqliteFileName))
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}

// Load reads the persisted state, falling back to DefaultState on any error.
func Load(s Store, logger *slog.Logger) State {
	st, err := s.LoadState()

	switch {
	case err == nil:
		logger.Info("state loaded",
			"mode", st.Schedule.Mode.String(),
			"feeds", st.Schedule.Count(),
			"auto_feeds_done", st.Schedule.AutoFeedsDone)
		return st
	case errors.Is(err, ErrNoState):
		logger.Info("no saved state, starting with defaults")
	default:
		logger.Warn("saved state unusable, starting with defaults", "error", err)
	}

	return DefaultState()
}

// Save writes st. Failures are logged and returned.
func Save(s Store, st State, logger *slog.Logger) error {
	if err := s.SaveState(st); err != nil {
		logger.Error("failed to save state", "error", err)
		return fmt.Errorf("save state: %w", err)
	}

	logger.Debug("state saved", "record", EncodeRecord(st))

	return nil
}

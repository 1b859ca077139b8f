package store

import (
	"errors"

	"github.com/inovacc/feedr/internal/model"
	"github.com/inovacc/feedr/internal/store/sqlite"
)

// SQLiteStore wraps the sqlite.Store to implement the Store interface.
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore opens or creates the SQLite database at path and migrates it.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	s, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}

	return &SQLiteStore{store: s}, nil
}

func (w *SQLiteStore) Ping() error {
	return w.store.Ping()
}

func (w *SQLiteStore) LoadState() (State, error) {
	record, err := w.store.LoadRecord()
	if errors.Is(err, sqlite.ErrNoRecord) {
		return State{}, ErrNoState
	}

	if err != nil {
		return State{}, err
	}

	return DecodeRecord(record)
}

func (w *SQLiteStore) SaveState(st State) error {
	return w.store.SaveRecord(EncodeRecord(st))
}

func (w *SQLiteStore) AppendEvent(ev model.FeedEvent) error {
	return w.store.AppendEvent(ev)
}

func (w *SQLiteStore) ListEvents(limit int) ([]model.FeedEvent, error) {
	return w.store.ListEvents(limit)
}

func (w *SQLiteStore) Close() error {
	return w.store.Close()
}

package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/inovacc/feedr/internal/model"
)

// FileStore keeps the state record in a text file and the history as JSON
// lines next to it.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore stores files in dir, creating it when missing.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	return &FileStore{dir: dir}, nil
}

func (f *FileStore) statePath() string {
	return filepath.Join(f.dir, stateFileName)
}

func (f *FileStore) historyPath() string {
	return filepath.Join(f.dir, historyFileName)
}

func (f *FileStore) Ping() error {
	_, err := os.Stat(f.dir)
	return err
}

func (f *FileStore) LoadState() (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.statePath())
	if errors.Is(err, os.ErrNotExist) {
		return State{}, ErrNoState
	}

	if err != nil {
		return State{}, fmt.Errorf("reading state file: %w", err)
	}

	return DecodeRecord(string(data))
}

// SaveState replaces the state file atomically.
func (f *FileStore) SaveState(st State) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, stateFileName+".*")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}

	if _, err := tmp.WriteString(EncodeRecord(st) + "\n"); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing state file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("closing state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.statePath()); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replacing state file: %w", err)
	}

	return nil
}

func (f *FileStore) AppendEvent(ev model.FeedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(f.historyPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}

	if _, err := file.Write(append(data, '\n')); err != nil {
		_ = file.Close()
		return fmt.Errorf("appending history: %w", err)
	}

	return file.Close()
}

// ListEvents returns up to limit feeds, newest first. Unreadable lines are
// skipped.
func (f *FileStore) ListEvents(limit int) ([]model.FeedEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.historyPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer file.Close()

	var events []model.FeedEvent

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var ev model.FeedEvent
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			continue
		}
		events = append(events, ev)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	slices.Reverse(events)

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}

	return events, nil
}

func (f *FileStore) Close() error {
	return nil
}

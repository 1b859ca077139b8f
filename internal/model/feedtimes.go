package model

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrCapacity is returned when an insert would exceed MaxFeeds entries.
	ErrCapacity = errors.New("feed schedule is full")

	// ErrIndex is returned for an index outside the active entries.
	ErrIndex = errors.New("feed index out of range")
)

// FeedTimes is a fixed-capacity sequence of feed times. Only the first Len
// entries are active.
type FeedTimes struct {
	items [MaxFeeds]FeedTime
	n     int
}

// NewFeedTimes builds a sequence from the given entries.
func NewFeedTimes(feeds ...FeedTime) (FeedTimes, error) {
	var ft FeedTimes

	for _, f := range feeds {
		if err := ft.Append(f); err != nil {
			return FeedTimes{}, err
		}
	}

	return ft, nil
}

// Len returns the number of active entries.
func (ft *FeedTimes) Len() int {
	return ft.n
}

// At returns the entry at index i. It panics when i is not an active index,
// the same way slice indexing does.
func (ft *FeedTimes) At(i int) FeedTime {
	if i < 0 || i >= ft.n {
		panic(fmt.Sprintf("model: feed index %d out of range [0,%d)", i, ft.n))
	}

	return ft.items[i]
}

// Set replaces the entry at index i.
func (ft *FeedTimes) Set(i int, f FeedTime) error {
	if i < 0 || i >= ft.n {
		return fmt.Errorf("%w: %d (len %d)", ErrIndex, i, ft.n)
	}

	ft.items[i] = f

	return nil
}

// Append adds f after the last active entry.
func (ft *FeedTimes) Append(f FeedTime) error {
	if ft.n == MaxFeeds {
		return ErrCapacity
	}

	ft.items[ft.n] = f
	ft.n++

	return nil
}

// Insert places f at index i, shifting later entries up.
func (ft *FeedTimes) Insert(i int, f FeedTime) error {
	if i < 0 || i > ft.n {
		return fmt.Errorf("%w: %d (len %d)", ErrIndex, i, ft.n)
	}

	if ft.n == MaxFeeds {
		return ErrCapacity
	}

	copy(ft.items[i+1:ft.n+1], ft.items[i:ft.n])
	ft.items[i] = f
	ft.n++

	return nil
}

// RemoveAt deletes the entry at index i, shifting later entries down.
func (ft *FeedTimes) RemoveAt(i int) error {
	if i < 0 || i >= ft.n {
		return fmt.Errorf("%w: %d (len %d)", ErrIndex, i, ft.n)
	}

	copy(ft.items[i:ft.n-1], ft.items[i+1:ft.n])
	ft.n--
	ft.items[ft.n] = FeedTime{}

	return nil
}

// Reset drops every entry.
func (ft *FeedTimes) Reset() {
	ft.items = [MaxFeeds]FeedTime{}
	ft.n = 0
}

// Slice returns a copy of the active entries.
func (ft *FeedTimes) Slice() []FeedTime {
	return slices.Clone(ft.items[:ft.n])
}

// SortStableFunc sorts the active entries with cmp, keeping equal entries in
// their current order.
func (ft *FeedTimes) SortStableFunc(cmp func(a, b FeedTime) int) {
	slices.SortStableFunc(ft.items[:ft.n], cmp)
}

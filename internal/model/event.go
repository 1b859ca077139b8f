package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedSource tells why the feeder turned.
type FeedSource string

const (
	SourceAuto   FeedSource = "auto"
	SourceManual FeedSource = "manual"
)

// FeedEvent is one entry of the feed history.
type FeedEvent struct {
	// ID is the unique identifier for the event
	ID string `json:"id"`

	// Source is auto for scheduled feeds and manual for "Feed Now"
	Source FeedSource `json:"source"`

	// Rotations is the number of full rotations performed
	Rotations int `json:"rotations"`

	// FedAt is the device clock time when the feed started
	FedAt time.Time `json:"fed_at"`

	// AutoFeedsDone is the counter value after the feed
	AutoFeedsDone int `json:"auto_feeds_done"`
}

// NewFeedEvent creates an event with a fresh ID.
func NewFeedEvent(source FeedSource, rotations int, at time.Time, autoFeedsDone int) FeedEvent {
	return FeedEvent{
		ID:            uuid.New().String(),
		Source:        source,
		Rotations:     rotations,
		FedAt:         at,
		AutoFeedsDone: autoFeedsDone,
	}
}

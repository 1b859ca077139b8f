package sqlite

import (
	"fmt"
	"time"

	"github.com/inovacc/feedr/internal/model"
)

// eventRow is a feed_events row as scanned from the database.
type eventRow struct {
	UID           string
	Source        string
	Rotations     int
	FedAt         string
	AutoFeedsDone int
}

// toModel converts a feed_events row to a model.FeedEvent.
func (r eventRow) toModel() (model.FeedEvent, error) {
	fedAt, err := time.Parse(time.RFC3339, r.FedAt)
	if err != nil {
		return model.FeedEvent{}, fmt.Errorf("parsing fed_at of %s: %w", r.UID, err)
	}

	return model.FeedEvent{
		ID:            r.UID,
		Source:        model.FeedSource(r.Source),
		Rotations:     r.Rotations,
		FedAt:         fedAt,
		AutoFeedsDone: r.AutoFeedsDone,
	}, nil
}

package core

import (
	"fmt"

	"github.com/inovacc/feedr/internal/model"
)

// ScheduleError describes why a schedule failed validation
type ScheduleError struct {
	Reason ScheduleFault
	Index  int
	Feed   model.FeedTime
}

func (e *ScheduleError) Error() string {
	switch e.Reason {
	case FaultNextFeed:
		return fmt.Sprintf("invalid schedule: %s (%d)", e.Reason, e.Index)
	case FaultCapacity:
		return fmt.Sprintf("invalid schedule: %s", e.Reason)
	default:
		return fmt.Sprintf("invalid schedule: entry %d (%s x%d): %s",
			e.Index, e.Feed, e.Feed.Rotations, e.Reason)
	}
}

// ScheduleFault categorizes a schedule validation failure
type ScheduleFault int

const (
	FaultNone ScheduleFault = iota
	FaultRange
	FaultOrder
	FaultConflict
	FaultNextFeed
	FaultCapacity
)

func (f ScheduleFault) String() string {
	switch f {
	case FaultNone:
		return ""
	case FaultRange:
		return "value out of range"
	case FaultOrder:
		return "entries not sorted"
	case FaultConflict:
		return "within 5 minutes of another entry"
	case FaultNextFeed:
		return "next feed index out of range"
	case FaultCapacity:
		return "too many entries"
	}
	return ""
}

// FeedError wraps a failure to record a completed feed
type FeedError struct {
	Source model.FeedSource
	Err    error
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("record %s feed: %v", e.Source, e.Err)
}

func (e *FeedError) Unwrap() error {
	return e.Err
}

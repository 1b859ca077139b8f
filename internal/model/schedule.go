package model

// Schedule is the daily feed schedule and the run state attached to it.
type Schedule struct {
	Mode Mode

	// Feeds holds the scheduled feeds sorted by time of day.
	Feeds FeedTimes

	// NextFeed indexes Feeds, or is NoFeed when the schedule is empty.
	NextFeed int

	// AutoFeedsDone counts automatic feeds, wrapping from 999 back to 1.
	AutoFeedsDone int
}

// NewSchedule returns the default model used when nothing was persisted.
func NewSchedule() Schedule {
	return Schedule{
		Mode:     ModePaused,
		NextFeed: NoFeed,
	}
}

// Count returns the number of active feed entries.
func (s *Schedule) Count() int {
	return s.Feeds.Len()
}

// Next returns the feed at NextFeed. ok is false when there is none.
func (s *Schedule) Next() (feed FeedTime, ok bool) {
	if s.NextFeed < 0 || s.NextFeed >= s.Feeds.Len() {
		return FeedTime{}, false
	}

	return s.Feeds.At(s.NextFeed), true
}

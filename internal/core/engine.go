package core

import (
	"github.com/inovacc/feedr/internal/model"
)

// ConflictWindow is the minimum cyclic distance, in minutes, that two feeds
// must keep apart. Distances up to and including it conflict.
const ConflictWindow = 5

// MaxAutoFeeds is the largest value the auto feed counter shows.
const MaxAutoFeeds = 999

// CompareFeedTimes orders feeds by (hour, minute).
func CompareFeedTimes(a, b model.FeedTime) int {
	return a.Compare(b)
}

// FindNextFeed returns the index of the first feed strictly after hour:minute,
// wrapping to 0 when every feed is at or before it. It returns model.NoFeed
// for an empty schedule.
func FindNextFeed(s *model.Schedule, hour, minute int) int {
	n := s.Count()
	if n == 0 {
		return model.NoFeed
	}

	now := hour*60 + minute
	for i := 0; i < n; i++ {
		if s.Feeds.At(i).Minutes() > now {
			return i
		}
	}

	return 0
}

// SortSchedule stable-sorts the feeds and recomputes NextFeed for hour:minute.
func SortSchedule(s *model.Schedule, hour, minute int) {
	s.Feeds.SortStableFunc(CompareFeedTimes)
	s.NextFeed = FindNextFeed(s, hour, minute)
}

// CyclicDistance returns the distance in minutes between two minutes of the
// day, measured around midnight when that is shorter.
func CyclicDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}

	if wrapped := model.MinutesPerDay - d; wrapped < d {
		return wrapped
	}

	return d
}

// HasConflict reports whether candidate (minutes of the day) is within
// ConflictWindow of any feed in s.
func HasConflict(s *model.Schedule, candidate int) bool {
	return HasConflictExcept(s, candidate, -1)
}

// HasConflictExcept is HasConflict ignoring the feed at index skip, which is
// the one being replaced.
func HasConflictExcept(s *model.Schedule, candidate, skip int) bool {
	for i := 0; i < s.Count(); i++ {
		if i == skip {
			continue
		}

		if CyclicDistance(s.Feeds.At(i).Minutes(), candidate) <= ConflictWindow {
			return true
		}
	}

	return false
}

// CheckAndTriggerFeed decides whether the feed at NextFeed is due. It only
// fires when the minute differs from lastCheckedMinute and the schedule is in
// auto mode. A due feed advances NextFeed cyclically; the caller performs the
// feed with the returned rotations.
func CheckAndTriggerFeed(s *model.Schedule, hour, minute, lastCheckedMinute int) (due bool, rotations int) {
	if minute == lastCheckedMinute || s.Mode != model.ModeAuto {
		return false, 0
	}

	next, ok := s.Next()
	if !ok || next.Hour != hour || next.Minute != minute {
		return false, 0
	}

	s.NextFeed = (s.NextFeed + 1) % s.Count()

	return true, next.Rotations
}

// SkipNextFeed advances NextFeed cyclically without feeding.
func SkipNextFeed(s *model.Schedule) {
	n := s.Count()
	if n == 0 {
		s.NextFeed = model.NoFeed
		return
	}

	s.NextFeed = (s.NextFeed + 1) % n
}

// IncrementAutoFeeds returns n+1, wrapping from MaxAutoFeeds back to 1.
func IncrementAutoFeeds(n int) int {
	if n >= MaxAutoFeeds || n < 0 {
		return 1
	}

	return n + 1
}

// ValidateSchedule checks ranges, ordering, conflicts and the NextFeed bound.
func ValidateSchedule(s *model.Schedule) error {
	n := s.Count()
	if n > model.MaxFeeds {
		return &ScheduleError{Reason: FaultCapacity}
	}

	for i := 0; i < n; i++ {
		f := s.Feeds.At(i)
		if !f.Valid() {
			return &ScheduleError{Reason: FaultRange, Index: i, Feed: f}
		}

		if i > 0 && CompareFeedTimes(s.Feeds.At(i-1), f) > 0 {
			return &ScheduleError{Reason: FaultOrder, Index: i, Feed: f}
		}

		for j := 0; j < i; j++ {
			if CyclicDistance(s.Feeds.At(j).Minutes(), f.Minutes()) <= ConflictWindow {
				return &ScheduleError{Reason: FaultConflict, Index: i, Feed: f}
			}
		}
	}

	switch {
	case n == 0 && s.NextFeed != model.NoFeed:
		return &ScheduleError{Reason: FaultNextFeed, Index: s.NextFeed}
	case n > 0 && (s.NextFeed < 0 || s.NextFeed >= n):
		return &ScheduleError{Reason: FaultNextFeed, Index: s.NextFeed}
	}

	return nil
}

package core

import (
	"testing"

	"github.com/inovacc/feedr/internal/model"
)

func schedule(t *testing.T, mode model.Mode, feeds ...model.FeedTime) *model.Schedule {
	t.Helper()

	ft, err := model.NewFeedTimes(feeds...)
	if err != nil {
		t.Fatalf("NewFeedTimes: %v", err)
	}

	s := model.NewSchedule()
	s.Mode = mode
	s.Feeds = ft

	return &s
}

func at(hour, minute int) model.FeedTime {
	return model.FeedTime{Hour: hour, Minute: minute, Rotations: 1}
}

func TestFindNextFeed(t *testing.T) {
	s := schedule(t, model.ModeAuto, at(10, 0), at(13, 0), at(16, 0))

	tests := []struct {
		name         string
		hour, minute int
		want         int
	}{
		{"before first", 6, 30, 0},
		{"exactly on a feed resolves to the following one", 13, 0, 2},
		{"between feeds", 13, 1, 2},
		{"after last wraps", 17, 0, 0},
		{"exactly on last wraps", 16, 0, 0},
		{"midnight", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindNextFeed(s, tt.hour, tt.minute); got != tt.want {
				t.Errorf("FindNextFeed(%02d:%02d) = %d, want %d", tt.hour, tt.minute, got, tt.want)
			}
		})
	}
}

func TestFindNextFeed_Empty(t *testing.T) {
	s := schedule(t, model.ModeAuto)

	if got := FindNextFeed(s, 12, 0); got != model.NoFeed {
		t.Errorf("FindNextFeed on empty schedule = %d, want %d", got, model.NoFeed)
	}
}

func TestSortSchedule(t *testing.T) {
	s := schedule(t, model.ModePaused, at(23, 50), at(0, 5), at(12, 0), at(6, 45), at(12, 30))
	SortSchedule(s, 12, 10)

	feeds := s.Feeds.Slice()
	for i := 1; i < len(feeds); i++ {
		if feeds[i-1].Compare(feeds[i]) > 0 {
			t.Errorf("entries %d and %d out of order: %s > %s", i-1, i, feeds[i-1], feeds[i])
		}
	}

	if feeds[0] != at(0, 5) || feeds[len(feeds)-1] != at(23, 50) {
		t.Errorf("unexpected order: %v", feeds)
	}

	if s.NextFeed != 3 {
		t.Errorf("NextFeed = %d, want 3 (12:30)", s.NextFeed)
	}
}

func TestSortSchedule_Stable(t *testing.T) {
	a := model.FeedTime{Hour: 8, Minute: 0, Rotations: 1}
	b := model.FeedTime{Hour: 8, Minute: 0, Rotations: 2}
	s := schedule(t, model.ModePaused, b, at(7, 0), a)

	SortSchedule(s, 0, 0)

	if got := s.Feeds.At(1); got != b {
		t.Errorf("equal entries reordered: got %+v at index 1, want %+v", got, b)
	}
}

func TestHasConflict(t *testing.T) {
	s := schedule(t, model.ModeAuto, at(23, 58))

	tests := []struct {
		name      string
		candidate model.FeedTime
		want      bool
	}{
		{"wraps midnight", at(0, 2), true},
		{"distance five", at(0, 3), true},
		{"distance six", at(0, 4), false},
		{"same time", at(23, 58), true},
		{"before by five", at(23, 53), true},
		{"before by six", at(23, 52), false},
		{"far away", at(12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(s, tt.candidate.Minutes()); got != tt.want {
				t.Errorf("HasConflict(%s) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestHasConflictExcept(t *testing.T) {
	s := schedule(t, model.ModeAuto, at(8, 0), at(12, 0))

	if HasConflictExcept(s, at(8, 3).Minutes(), 0) {
		t.Error("entry being replaced should not conflict with its new time")
	}

	if !HasConflictExcept(s, at(11, 58).Minutes(), 0) {
		t.Error("other entries must still be checked")
	}
}

func TestCyclicDistance(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 0, 0},
		{0, 1439, 1},
		{1439, 0, 1},
		{600, 1320, 720},
		{100, 200, 100},
	}

	for _, tt := range tests {
		if got := CyclicDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("CyclicDistance(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCheckAndTriggerFeed(t *testing.T) {
	feeds := []model.FeedTime{
		{Hour: 10, Minute: 0, Rotations: 2},
		{Hour: 13, Minute: 0, Rotations: 3},
	}

	t.Run("fires and advances", func(t *testing.T) {
		s := schedule(t, model.ModeAuto, feeds...)
		s.NextFeed = 1

		due, rotations := CheckAndTriggerFeed(s, 13, 0, 59)
		if !due || rotations != 3 {
			t.Fatalf("CheckAndTriggerFeed = (%v, %d), want (true, 3)", due, rotations)
		}

		if s.NextFeed != 0 {
			t.Errorf("NextFeed = %d, want 0 after wrap", s.NextFeed)
		}
	})

	t.Run("same minute does not fire twice", func(t *testing.T) {
		s := schedule(t, model.ModeAuto, feeds...)
		s.NextFeed = 0

		if due, _ := CheckAndTriggerFeed(s, 10, 0, 0); due {
			t.Error("feed fired although the minute was already checked")
		}

		if s.NextFeed != 0 {
			t.Errorf("NextFeed changed to %d", s.NextFeed)
		}
	})

	t.Run("paused never fires", func(t *testing.T) {
		s := schedule(t, model.ModePaused, feeds...)
		s.NextFeed = 0

		if due, _ := CheckAndTriggerFeed(s, 10, 0, -1); due {
			t.Error("feed fired in paused mode")
		}
	})

	t.Run("only the next feed fires", func(t *testing.T) {
		s := schedule(t, model.ModeAuto, feeds...)
		s.NextFeed = 1

		if due, _ := CheckAndTriggerFeed(s, 10, 0, -1); due {
			t.Error("feed other than NextFeed fired")
		}
	})

	t.Run("empty schedule", func(t *testing.T) {
		s := schedule(t, model.ModeAuto)

		if due, _ := CheckAndTriggerFeed(s, 10, 0, -1); due {
			t.Error("empty schedule fired")
		}
	})
}

func TestSkipNextFeed(t *testing.T) {
	s := schedule(t, model.ModeAuto, at(1, 0), at(2, 0), at(3, 0))
	s.NextFeed = 2

	SkipNextFeed(s)
	if s.NextFeed != 0 {
		t.Errorf("NextFeed = %d, want 0", s.NextFeed)
	}

	empty := schedule(t, model.ModeAuto)
	SkipNextFeed(empty)
	if empty.NextFeed != model.NoFeed {
		t.Errorf("empty NextFeed = %d, want %d", empty.NextFeed, model.NoFeed)
	}
}

func TestIncrementAutoFeeds(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{1, 2},
		{998, 999},
		{999, 1},
	}

	for _, tt := range tests {
		if got := IncrementAutoFeeds(tt.in); got != tt.want {
			t.Errorf("IncrementAutoFeeds(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name   string
		build  func() *model.Schedule
		reason ScheduleFault
	}{
		{
			name:  "valid",
			build: func() *model.Schedule { s := schedule(t, model.ModeAuto, at(8, 0), at(20, 0)); s.NextFeed = 1; return s },
		},
		{
			name:  "empty",
			build: func() *model.Schedule { return schedule(t, model.ModePaused) },
		},
		{
			name: "rotations out of range",
			build: func() *model.Schedule {
				s := schedule(t, model.ModeAuto, model.FeedTime{Hour: 8, Rotations: 0})
				s.NextFeed = 0
				return s
			},
			reason: FaultRange,
		},
		{
			name:   "unsorted",
			build:  func() *model.Schedule { s := schedule(t, model.ModeAuto, at(20, 0), at(8, 0)); s.NextFeed = 0; return s },
			reason: FaultOrder,
		},
		{
			name:   "conflict across midnight",
			build:  func() *model.Schedule { s := schedule(t, model.ModeAuto, at(0, 1), at(23, 57)); s.NextFeed = 0; return s },
			reason: FaultConflict,
		},
		{
			name:   "next feed out of range",
			build:  func() *model.Schedule { s := schedule(t, model.ModeAuto, at(8, 0)); s.NextFeed = 1; return s },
			reason: FaultNextFeed,
		},
		{
			name:   "next feed set on empty schedule",
			build:  func() *model.Schedule { s := schedule(t, model.ModeAuto); s.NextFeed = 0; return s },
			reason: FaultNextFeed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchedule(tt.build())

			if tt.reason == FaultNone {
				if err != nil {
					t.Errorf("ValidateSchedule() = %v, want nil", err)
				}
				return
			}

			serr, ok := err.(*ScheduleError)
			if !ok {
				t.Fatalf("ValidateSchedule() = %v, want *ScheduleError", err)
			}

			if serr.Reason != tt.reason {
				t.Errorf("Reason = %v, want %v", serr.Reason, tt.reason)
			}
		})
	}
}

package model

import (
	"fmt"
	"strings"
)

// Mode is the operating mode of the feeder.
type Mode int

const (
	// ModeAuto fires scheduled feeds automatically. Persisted as 0.
	ModeAuto Mode = iota
	// ModePaused freezes automatic feeding. Persisted as 1.
	ModePaused
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "Auto"
	case ModePaused:
		return "Paused"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "auto" or "paused" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ModeAuto, nil
	case "paused", "pause":
		return ModePaused, nil
	default:
		return ModePaused, fmt.Errorf("unknown mode %q (want auto or paused)", s)
	}
}

const (
	// MaxFeeds is the capacity of a daily schedule.
	MaxFeeds = 9

	MinRotations = 1
	MaxRotations = 9

	// MinutesPerDay is the length of the cyclic day used for conflict checks.
	MinutesPerDay = 24 * 60

	// NoFeed marks the absence of a next feed.
	NoFeed = -1
)

// FeedTime is one scheduled feed and the number of full rotations the feeder
// performs when it fires.
type FeedTime struct {
	Hour      int
	Minute    int
	Rotations int
}

// Minutes returns the minute of the day the feed fires at.
func (f FeedTime) Minutes() int {
	return f.Hour*60 + f.Minute
}

// Compare orders feed times by (hour, minute).
func (f FeedTime) Compare(other FeedTime) int {
	return f.Minutes() - other.Minutes()
}

// Valid reports whether every field is within its range.
func (f FeedTime) Valid() bool {
	return f.Hour >= 0 && f.Hour <= 23 &&
		f.Minute >= 0 && f.Minute <= 59 &&
		f.Rotations >= MinRotations && f.Rotations <= MaxRotations
}

func (f FeedTime) String() string {
	return fmt.Sprintf("%02d:%02d", f.Hour, f.Minute)
}

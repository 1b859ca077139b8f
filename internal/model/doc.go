// Package model defines the data structures used throughout feedr.
//
// # Schedule
//
// The [Schedule] struct is the daily feed schedule together with its run
// state:
//
//	type Schedule struct {
//	    Mode          Mode      // Auto or Paused
//	    Feeds         FeedTimes // up to MaxFeeds entries sorted by time of day
//	    NextFeed      int       // index of the next due feed, NoFeed when empty
//	    AutoFeedsDone int       // automatic feeds, wraps 999 -> 1
//	}
//
// [FeedTimes] is a fixed-capacity sequence. Inserts beyond [MaxFeeds] return
// [ErrCapacity] instead of overflowing.
//
// # Config
//
// The [Config] struct holds application configuration loaded from YAML:
//
//	type Config struct {
//	    Store            StoreKind     // file, bolt or sqlite
//	    Tick             time.Duration // menu loop poll interval
//	    IdleTimeout      time.Duration // inactivity before the screen blanks
//	    RotationDuration time.Duration // real time of one feeder rotation
//	    RefillAmount     int           // hopper refill after each feed
//	}
package model

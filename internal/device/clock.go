package device

import (
	"sync"
	"time"
)

// DefaultStart is where the clock starts when no warm start value exists:
// 14:00:00 on 01/01/1970.
var DefaultStart = time.Date(1970, time.January, 1, 14, 0, 0, 0, time.UTC)

// SimClock is a software real time clock. It keeps an offset against the host
// clock so that Set and warm starts do not touch the host time.
type SimClock struct {
	mu      sync.Mutex
	base    time.Time
	started time.Time
	now     func() time.Time
}

// NewSimClock starts the clock at the warm start epoch (unix seconds), or at
// DefaultStart when warmStart is 0.
func NewSimClock(warmStart int64) *SimClock {
	base := DefaultStart
	if warmStart != 0 {
		base = time.Unix(warmStart, 0).UTC()
	}

	return &SimClock{
		base:    base,
		started: time.Now(),
		now:     time.Now,
	}
}

// WithNow replaces the host time source and restarts the offset from it.
func (c *SimClock) WithNow(now func() time.Time) *SimClock {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
	c.started = now()

	return c
}

func (c *SimClock) current() time.Time {
	return c.base.Add(c.now().Sub(c.started))
}

// Now returns the simulated time.
func (c *SimClock) Now() DateTime {
	c.mu.Lock()
	defer c.mu.Unlock()

	return FromTime(c.current())
}

// Set moves the simulated time to d.
func (c *SimClock) Set(d DateTime) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.base = d.Time()
	c.started = c.now()
}

// WarmStart returns the value to persist so the next start resumes here.
func (c *SimClock) WarmStart() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current().Unix()
}

// ManualClock only moves when told to. Used by tests and replays.
type ManualClock struct {
	t time.Time
}

// NewManualClock returns a clock frozen at d.
func NewManualClock(d DateTime) *ManualClock {
	return &ManualClock{t: d.Time()}
}

func (c *ManualClock) Now() DateTime {
	return FromTime(c.t)
}

func (c *ManualClock) Set(d DateTime) {
	c.t = d.Time()
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func (c *ManualClock) WarmStart() int64 {
	return c.t.Unix()
}

package core

import (
	"log/slog"
	"time"

	"github.com/inovacc/feedr/internal/device"
	"github.com/inovacc/feedr/internal/metrics"
	"github.com/inovacc/feedr/internal/model"
)

// DefaultRefillAmount is how much the hopper is topped up after each feed.
const DefaultRefillAmount = 50

// History receives every completed feed.
type History interface {
	AppendEvent(ev model.FeedEvent) error
}

// Feeder performs feeds on the actuator and keeps the counters and history.
type Feeder struct {
	actuator device.Actuator
	clock    device.Clock
	history  History
	recorder metrics.Recorder
	logger   *slog.Logger
	refill   int
}

// NewFeeder creates a feeder driving actuator. Feed events are stamped with
// the device clock.
func NewFeeder(actuator device.Actuator, clock device.Clock) *Feeder {
	return &Feeder{
		actuator: actuator,
		clock:    clock,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		refill:   DefaultRefillAmount,
	}
}

// WithHistory sets the sink completed feeds are recorded to
func (f *Feeder) WithHistory(h History) *Feeder {
	f.history = h
	return f
}

// WithRecorder sets the metrics recorder
func (f *Feeder) WithRecorder(r metrics.Recorder) *Feeder {
	if r != nil {
		f.recorder = r
	}
	return f
}

// WithLogger sets the logger for the feeder
func (f *Feeder) WithLogger(logger *slog.Logger) *Feeder {
	f.logger = logger
	return f
}

// WithRefillAmount overrides DefaultRefillAmount.
func (f *Feeder) WithRefillAmount(amount int) *Feeder {
	if amount > 0 {
		f.refill = amount
	}
	return f
}

// Prime fills the hopper. It is called once at startup.
func (f *Feeder) Prime() {
	f.actuator.Refill(f.refill)
}

// Feed rotates the feeder and refills the hopper. Automatic feeds bump
// s.AutoFeedsDone; manual feeds leave it alone. A history failure is logged
// and otherwise ignored.
func (f *Feeder) Feed(s *model.Schedule, rotations int, source model.FeedSource) {
	at := f.clock.Now().Time()
	start := time.Now()

	f.actuator.Rotate(rotations)
	f.actuator.Refill(f.refill)

	if source == model.SourceAuto {
		s.AutoFeedsDone = IncrementAutoFeeds(s.AutoFeedsDone)
	}

	f.recorder.FeedDispatched(string(source), rotations, time.Since(start))
	f.logger.Info("feed done",
		"source", source,
		"rotations", rotations,
		"auto_feeds_done", s.AutoFeedsDone)

	if f.history == nil {
		return
	}

	ev := model.NewFeedEvent(source, rotations, at, s.AutoFeedsDone)
	if err := f.history.AppendEvent(ev); err != nil {
		f.recorder.PersistFailed("append_event")
		f.logger.Warn("failed to record feed", "error", &FeedError{Source: source, Err: err})
	}
}

package menu

import (
	"context"
	"log/slog"
	"time"

	"github.com/inovacc/feedr/internal/core"
	"github.com/inovacc/feedr/internal/device"
	"github.com/inovacc/feedr/internal/metrics"
	"github.com/inovacc/feedr/internal/model"
)

const (
	DefaultTick        = 500 * time.Millisecond
	DefaultIdleTimeout = 60 * time.Second
)

// Navigator owns the schedule while the interface runs. It is not safe for
// concurrent use; a single goroutine calls Step or Run.
type Navigator struct {
	schedule *model.Schedule
	clock    device.Clock
	input    device.Input
	display  device.Display
	feeder   *core.Feeder
	recorder metrics.Recorder
	logger   *slog.Logger
	onChange func(*model.Schedule)

	tick        time.Duration
	idleTimeout time.Duration

	stack   []*frame
	fedAt   time.Time
	started bool
	exited  bool
}

// New creates a navigator on the main screen. Nothing is rendered until the
// first Step.
func New(s *model.Schedule, clock device.Clock, input device.Input, display device.Display, feeder *core.Feeder) *Navigator {
	return &Navigator{
		schedule:    s,
		clock:       clock,
		input:       input,
		display:     display,
		feeder:      feeder,
		recorder:    metrics.NoopRecorder{},
		logger:      slog.Default(),
		tick:        DefaultTick,
		idleTimeout: DefaultIdleTimeout,
		stack:       []*frame{newFrame(MainScreen)},
	}
}

// WithLogger sets the logger for the navigator
func (n *Navigator) WithLogger(logger *slog.Logger) *Navigator {
	n.logger = logger
	return n
}

// WithRecorder sets the metrics recorder
func (n *Navigator) WithRecorder(r metrics.Recorder) *Navigator {
	if r != nil {
		n.recorder = r
	}
	return n
}

// WithTick sets the interval between two steps.
func (n *Navigator) WithTick(d time.Duration) *Navigator {
	if d > 0 {
		n.tick = d
	}
	return n
}

// WithIdleTimeout sets how long without input the screen stays on.
func (n *Navigator) WithIdleTimeout(d time.Duration) *Navigator {
	if d > 0 {
		n.idleTimeout = d
	}
	return n
}

// WithOnChange registers fn to be called after the schedule or its run state
// changes.
func (n *Navigator) WithOnChange(fn func(*model.Schedule)) *Navigator {
	n.onChange = fn
	return n
}

// Schedule returns the schedule being driven.
func (n *Navigator) Schedule() *model.Schedule {
	return n.schedule
}

// State returns the active state.
func (n *Navigator) State() State {
	return n.top().state
}

// Selection returns the highlighted option of the active state.
func (n *Navigator) Selection() int {
	return n.top().selection
}

// Idle returns the time accumulated without input in the active state.
func (n *Navigator) Idle() time.Duration {
	return n.top().idle
}

// Exited reports whether the operator left the main screen.
func (n *Navigator) Exited() bool {
	return n.exited
}

// Tick returns the interval between two steps.
func (n *Navigator) Tick() time.Duration {
	return n.tick
}

// Run steps the navigator every tick until the operator exits or ctx is done.
func (n *Navigator) Run(ctx context.Context) error {
	ticker := time.NewTicker(n.tick)
	defer ticker.Stop()

	for {
		if !n.Step() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Step runs one tick: the auto feed check, the idle check, at most one input
// event, then the idle counter. It returns false once the operator exited.
func (n *Navigator) Step() bool {
	if n.exited {
		return false
	}

	if !n.started {
		n.started = true
		n.render(n.top())
	}

	f := n.top()
	now := n.clock.Now()

	n.checkFeed(f, now)

	if f.state == BlankScreen {
		if ev := n.input.Poll(); ev != device.EventNone {
			n.wake()
		}
		return true
	}

	if f.idle >= n.idleTimeout {
		n.blank()
		return true
	}

	if ev := n.input.Poll(); ev != device.EventNone {
		f.idle = 0
		n.handle(f, ev)
	} else {
		f.idle += n.tick
	}

	if n.exited {
		return false
	}

	if top := n.top(); top.state == MainScreen {
		n.refreshMain(top, n.clock.Now())
	}

	return true
}

func (n *Navigator) checkFeed(f *frame, now device.DateTime) {
	last := f.lastMinute
	f.lastMinute = now.Minute

	// A frame entered mid-minute starts with no minute history; never fire
	// the same wall clock minute twice.
	minute := now.Time().Truncate(time.Minute)
	if minute.Equal(n.fedAt) {
		return
	}

	due, rotations := core.CheckAndTriggerFeed(n.schedule, now.Hour, now.Minute, last)
	if !due {
		return
	}

	n.fedAt = minute
	n.logger.Info("scheduled feed due", "at", now.String(), "rotations", rotations)
	n.feeder.Feed(n.schedule, rotations, model.SourceAuto)
	n.changed()
}

func (n *Navigator) top() *frame {
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) push(state State) *frame {
	f := newFrame(state)
	n.stack = append(n.stack, f)

	n.logger.Debug("menu state", "to", state.String(), "depth", len(n.stack))

	return f
}

// enter pushes a child state and shows it.
func (n *Navigator) enter(state State) {
	f := n.push(state)
	n.setup(f)
	n.render(f)
}

// leave returns to the parent state, which starts over on its first option.
func (n *Navigator) leave() {
	left := n.top().state
	n.stack = n.stack[:len(n.stack)-1]

	parent := n.top()
	parent.selection = 0
	n.reset(parent)

	n.logger.Debug("menu state", "from", left.String(), "to", parent.state.String())
}

// reset redisplays f and restarts its idle and minute tracking.
func (n *Navigator) reset(f *frame) {
	f.idle = 0
	f.lastMinute = -1
	n.render(f)
}

func (n *Navigator) blank() {
	from := n.top().state
	n.push(BlankScreen)
	n.display.Clear()
	n.recorder.ScreenBlanked()
	n.logger.Debug("screen blanked", "state", from.String())
}

func (n *Navigator) wake() {
	n.stack = n.stack[:len(n.stack)-1]
	f := n.top()
	n.reset(f)
	n.logger.Debug("screen woken", "state", f.state.String())
}

func (n *Navigator) changed() {
	if n.onChange != nil {
		n.onChange(n.schedule)
	}
}

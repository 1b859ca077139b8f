package menu

import (
	"time"

	"github.com/inovacc/feedr/internal/core"
	"github.com/inovacc/feedr/internal/device"
	"github.com/inovacc/feedr/internal/digits"
	"github.com/inovacc/feedr/internal/model"
)

// setup prepares a freshly pushed frame.
func (n *Navigator) setup(f *frame) {
	switch f.state {
	case SetDate:
		f.entry = digits.NewEntry(digits.DateLayout())
	case SetTime:
		f.entry = digits.NewEntry(digits.ClockTimeLayout())
	case CreateSchedule:
		f.phase = phaseCount
		f.entry = digits.NewEntry(digits.CountLayout())
	case EditSchedule:
		f.phase = phaseSelect
	}
}

func (n *Navigator) handle(f *frame, ev device.Event) {
	switch f.state {
	case MainScreen:
		if ev == device.EventConfirm {
			n.exited = true
			n.logger.Info("operator left the main screen")
			return
		}
		n.enter(ConfigMenu)
	case SetDate, SetTime, CreateSchedule:
		n.handleEntry(f, ev)
	case EditSchedule:
		if f.phase == phaseSelect {
			n.handleList(f, ev)
		} else {
			n.handleEntry(f, ev)
		}
	default:
		n.handleList(f, ev)
	}
}

func (n *Navigator) handleList(f *frame, ev device.Event) {
	if ev == device.EventCycle {
		f.selection = (f.selection + 1) % len(n.options(f))
		n.render(f)
		return
	}

	n.choose(f)
}

func (n *Navigator) handleEntry(f *frame, ev device.Event) {
	if ev == device.EventCycle {
		f.entry.Cycle()
		n.render(f)
		return
	}

	done := f.entry.Confirm()
	if verr := f.entry.LastError(); verr != nil {
		n.recorder.ValidationFailed(verr.Field)
		n.logger.Debug("entry rejected", "state", f.state.String(), "field", verr.Field, "message", verr.Message)
	}

	if !done {
		n.render(f)
		return
	}

	n.completeEntry(f)
}

func (n *Navigator) choose(f *frame) {
	switch f.state {
	case ConfigMenu:
		switch f.selection {
		case 0:
			n.enter(SetClockMenu)
		case 1:
			n.enter(FeedScheduleMenu)
		case 2:
			n.enter(OperatingModeMenu)
		default:
			n.leave()
		}
	case SetClockMenu:
		switch f.selection {
		case 0:
			n.enter(SetDate)
		case 1:
			n.enter(SetTime)
		default:
			n.leave()
		}
	case FeedScheduleMenu:
		switch f.selection {
		case 0:
			n.enter(CreateSchedule)
		case 1:
			if n.schedule.Count() > 0 {
				n.enter(EditSchedule)
				return
			}
			f.selection = 0
			n.render(f)
		default:
			n.leave()
		}
	case OperatingModeMenu:
		n.chooseMode(f)
	case EditSchedule:
		if f.selection >= n.schedule.Count() {
			n.sort()
			n.leave()
			return
		}

		f.index = f.selection
		n.askFeedTime(f, func(minutes int) bool {
			return core.HasConflictExcept(n.schedule, minutes, f.index)
		})
	}
}

func (n *Navigator) chooseMode(f *frame) {
	switch f.selection {
	case 0:
		n.schedule.Mode = model.ModePaused
		n.logger.Info("operating mode changed", "mode", n.schedule.Mode.String())
	case 1:
		n.schedule.Mode = model.ModeAuto
		now := n.clock.Now()
		n.schedule.NextFeed = core.FindNextFeed(n.schedule, now.Hour, now.Minute)
		n.logger.Info("operating mode changed", "mode", n.schedule.Mode.String())
	case 2:
		n.feeder.Feed(n.schedule, 1, model.SourceManual)
	case 3:
		core.SkipNextFeed(n.schedule)
		n.logger.Info("next feed skipped", "next_feed", n.schedule.NextFeed)
	default:
		n.leave()
		return
	}

	n.changed()
	f.selection = 0
	n.render(f)
}

// askFeedTime switches a schedule flow to the time prompt.
func (n *Navigator) askFeedTime(f *frame, conflicts func(minutes int) bool) {
	f.phase = phaseTime
	f.entry = digits.NewEntry(digits.ScheduleTimeLayout(conflicts))
	n.render(f)
}

func (n *Navigator) askRotations(f *frame) {
	nums := f.entry.Numbers()
	f.pending = model.FeedTime{Hour: nums[0], Minute: nums[1]}
	f.phase = phaseRotations
	f.entry = digits.NewEntry(digits.RotationsLayout())
	n.render(f)
}

func (n *Navigator) completeEntry(f *frame) {
	switch f.state {
	case SetDate:
		nums := f.entry.Numbers()
		now := n.clock.Now()
		now.Day, now.Month, now.Year = nums[0], nums[1], nums[2]
		n.setClock(now)
		n.logger.Info("clock date set", "clock", now.String())
		n.changed()
		n.leave()
	case SetTime:
		nums := f.entry.Numbers()
		now := n.clock.Now()
		now.Hour, now.Minute, now.Second = nums[0], nums[1], nums[2]
		n.setClock(now)
		n.schedule.NextFeed = core.FindNextFeed(n.schedule, now.Hour, now.Minute)
		n.logger.Info("clock time set", "clock", now.String())
		n.changed()
		n.leave()
	case CreateSchedule:
		n.completeCreate(f)
	case EditSchedule:
		n.completeEdit(f)
	}
}

// setClock moves the device clock. The minute of the last auto feed refers to
// the old clock and is forgotten, so a feed can fire again at that minute.
func (n *Navigator) setClock(now device.DateTime) {
	n.clock.Set(now)
	n.fedAt = time.Time{}
}

func (n *Navigator) completeCreate(f *frame) {
	switch f.phase {
	case phaseCount:
		f.total = f.entry.Number(0)
		f.index = 0
		f.staging.Feeds.Reset()
		n.askFeedTime(f, func(minutes int) bool {
			return core.HasConflict(&f.staging, minutes)
		})
	case phaseTime:
		n.askRotations(f)
	case phaseRotations:
		f.pending.Rotations = f.entry.Number(0)
		if err := f.staging.Feeds.Append(f.pending); err != nil {
			n.logger.Error("failed to add feed", "feed", f.pending.String(), "error", err)
		}

		f.index++
		if f.index < f.total {
			n.askFeedTime(f, func(minutes int) bool {
				return core.HasConflict(&f.staging, minutes)
			})
			return
		}

		n.schedule.Feeds = f.staging.Feeds
		n.sort()
		n.recorder.ScheduleChanged(n.schedule.Count())
		n.logger.Info("feed schedule created", "feeds", n.schedule.Count(), "next_feed", n.schedule.NextFeed)
		n.changed()
		n.leave()
	}
}

func (n *Navigator) completeEdit(f *frame) {
	switch f.phase {
	case phaseTime:
		n.askRotations(f)
	case phaseRotations:
		f.pending.Rotations = f.entry.Number(0)
		if err := n.schedule.Feeds.Set(f.index, f.pending); err != nil {
			n.logger.Error("failed to edit feed", "index", f.index, "error", err)
		}

		n.sort()
		n.recorder.ScheduleChanged(n.schedule.Count())
		n.logger.Info("feed edited", "feed", f.pending.String(), "rotations", f.pending.Rotations)
		n.changed()
		n.leave()
	}
}

func (n *Navigator) sort() {
	now := n.clock.Now()
	core.SortSchedule(n.schedule, now.Hour, now.Minute)
}

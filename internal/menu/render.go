package menu

import (
	"github.com/inovacc/feedr/internal/device"
	"github.com/inovacc/feedr/internal/model"
)

// MainTitle is shown at the top of the main screen.
const MainTitle = "Fish Feeder"

var (
	configOptions   = []string{"Set The Clock", "Config Feed Schedule", "Select Operating Mode", "Exit"}
	clockOptions    = []string{"Set the date", "Set the time", "Exit"}
	scheduleOptions = []string{"New Schedule", "Edit Schedule", "Exit"}
	modeOptions     = []string{"Paused", "Auto", "Feed Now", "Skip Next feed", "Exit"}
)

func title(s State) string {
	switch s {
	case ConfigMenu:
		return "Config menu:"
	case SetClockMenu:
		return "Set the clock:"
	case FeedScheduleMenu:
		return "Config Feed Schedule:"
	case OperatingModeMenu:
		return "Operating Mode:"
	case EditSchedule:
		return "Choose time to edit:"
	}
	return ""
}

func (n *Navigator) options(f *frame) []string {
	switch f.state {
	case ConfigMenu:
		return configOptions
	case SetClockMenu:
		return clockOptions
	case FeedScheduleMenu:
		return scheduleOptions
	case OperatingModeMenu:
		return modeOptions
	case EditSchedule:
		opts := make([]string, 0, n.schedule.Count()+1)
		for _, ft := range n.schedule.Feeds.Slice() {
			opts = append(opts, ft.String())
		}
		return append(opts, "Exit")
	}
	return nil
}

func (n *Navigator) render(f *frame) {
	switch f.state {
	case MainScreen:
		n.renderMain(f, n.clock.Now())
	case BlankScreen:
		n.display.Clear()
	case SetDate, SetTime, CreateSchedule:
		n.display.RenderDigits(f.entry.Title(), f.entry.Cells(), f.entry.Cursor(), f.entry.Message())
	case EditSchedule:
		if f.phase != phaseSelect {
			n.display.RenderDigits(f.entry.Title(), f.entry.Cells(), f.entry.Cursor(), f.entry.Message())
			return
		}
		n.display.RenderList(title(f.state), n.options(f), f.selection)
	case ConfigMenu, SetClockMenu, FeedScheduleMenu, OperatingModeMenu:
		n.display.RenderList(title(f.state), n.options(f), f.selection)
	}
}

// MainViewOf builds the main screen content for s at clock.
func MainViewOf(s *model.Schedule, clock device.DateTime) device.MainView {
	next := "N/A"
	if s.Mode == model.ModeAuto {
		if ft, ok := s.Next(); ok {
			next = ft.String()
		}
	}

	return device.MainView{
		Title:         MainTitle,
		Mode:          s.Mode.String(),
		AutoFeedsDone: s.AutoFeedsDone,
		NextFeed:      next,
		Clock:         clock,
	}
}

func (n *Navigator) renderMain(f *frame, now device.DateTime) {
	n.display.RenderMain(MainViewOf(n.schedule, now))
	f.shownNext = n.schedule.NextFeed
	f.shownSecond = now.Second
}

// refreshMain redraws the main screen when the next feed or the clock second
// moved since it was last drawn.
func (n *Navigator) refreshMain(f *frame, now device.DateTime) {
	if n.schedule.NextFeed != f.shownNext || now.Second != f.shownSecond {
		n.renderMain(f, now)
	}
}

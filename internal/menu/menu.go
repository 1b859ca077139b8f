// Package menu implements the operator interface of the feeder: a stack of
// menu states driven by two input events and a fixed tick.
package menu

import (
	"fmt"
	"time"

	"github.com/inovacc/feedr/internal/digits"
	"github.com/inovacc/feedr/internal/model"
)

// State is one screen of the operator interface.
type State int

const (
	MainScreen State = iota
	ConfigMenu
	SetClockMenu
	SetDate
	SetTime
	FeedScheduleMenu
	CreateSchedule
	EditSchedule
	OperatingModeMenu
	BlankScreen
)

func (s State) String() string {
	switch s {
	case MainScreen:
		return "main"
	case ConfigMenu:
		return "config"
	case SetClockMenu:
		return "set-clock"
	case SetDate:
		return "set-date"
	case SetTime:
		return "set-time"
	case FeedScheduleMenu:
		return "feed-schedule"
	case CreateSchedule:
		return "create-schedule"
	case EditSchedule:
		return "edit-schedule"
	case OperatingModeMenu:
		return "operating-mode"
	case BlankScreen:
		return "blank"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// phase is the step of a multi-screen flow (create and edit schedule).
type phase int

const (
	phaseSelect phase = iota
	phaseCount
	phaseTime
	phaseRotations
)

// frame is the context owned by one active state.
type frame struct {
	state      State
	selection  int
	entry      *digits.Entry
	idle       time.Duration
	lastMinute int

	// schedule flows
	phase   phase
	staging model.Schedule
	total   int
	index   int
	pending model.FeedTime

	// main screen refresh tracking
	shownNext   int
	shownSecond int
}

func newFrame(state State) *frame {
	return &frame{
		state:       state,
		lastMinute:  -1,
		staging:     model.NewSchedule(),
		shownNext:   model.NoFeed,
		shownSecond: -1,
	}
}

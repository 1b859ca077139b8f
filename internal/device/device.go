// Package device defines the hardware collaborators the controller talks to
// and the host-side simulations used when no feeder hardware is attached.
package device

import (
	"fmt"
	"time"
)

// Event is an abstract operator input.
type Event int

const (
	EventNone Event = iota
	// EventCycle is a short press.
	EventCycle
	// EventConfirm is a long press.
	EventConfirm
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventCycle:
		return "cycle"
	case EventConfirm:
		return "confirm"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// DateTime is a wall clock reading. There is no timezone.
type DateTime struct {
	Hour   int
	Minute int
	Second int
	Day    int
	Month  int
	Year   int
}

// Time converts the reading to a UTC time.Time.
func (d DateTime) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, time.UTC)
}

// FromTime converts t to a DateTime using its UTC fields.
func FromTime(t time.Time) DateTime {
	t = t.UTC()

	return DateTime{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Day:    t.Day(),
		Month:  int(t.Month()),
		Year:   t.Year(),
	}
}

func (d DateTime) String() string {
	return fmt.Sprintf("%02d/%02d/%04d  %02d:%02d:%02d", d.Day, d.Month, d.Year, d.Hour, d.Minute, d.Second)
}

// Input reports the next operator event. Poll must return promptly, with
// EventNone when nothing happened.
type Input interface {
	Poll() Event
}

// Clock is the device real time clock.
type Clock interface {
	Now() DateTime
	Set(DateTime)
}

// Actuator drives the feeder motor and the hopper.
type Actuator interface {
	// Rotate performs full rotations and blocks until they are done.
	Rotate(times int)
	// Refill tops up the hopper.
	Refill(amount int)
}

// Cell is one position of a digit entry field as shown on screen.
type Cell struct {
	Text      string
	Separator bool
}

// MainView is everything the main screen shows.
type MainView struct {
	Title         string
	Mode          string
	AutoFeedsDone int
	NextFeed      string
	Clock         DateTime
}

// Display renders screens. Implementations must not retain the slices they
// are given.
type Display interface {
	RenderList(title string, options []string, highlighted int)
	RenderDigits(title string, cells []Cell, highlighted int, bottom string)
	RenderMain(view MainView)
	Clear()
}

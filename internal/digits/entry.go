package digits

import (
	"errors"
	"strconv"

	"github.com/inovacc/feedr/internal/device"
)

// Slot is one position of a field. A non-zero Sep makes it a fixed separator
// the cursor never stops on.
type Slot struct {
	Min int
	Max int
	Sep rune
}

// Group is a run of slots read as one decimal number. Validate, when set, runs
// as the cursor leaves the group's last slot.
type Group struct {
	Start    int
	End      int
	Validate func(n int) error
}

// Layout describes a field.
type Layout struct {
	Title   string
	Slots   []Slot
	Groups  []Group
	Initial []int
	// Final runs after the last group passes, with one number per group.
	Final func(numbers []int) error
}

// Entry is a field being edited.
type Entry struct {
	layout  Layout
	values  []int
	cursor  int
	message string
	lastErr *ValidationError
	done    bool
}

// NewEntry starts editing layout with the cursor on the first editable slot.
func NewEntry(layout Layout) *Entry {
	e := &Entry{
		layout: layout,
		values: make([]int, len(layout.Slots)),
	}

	for i, s := range layout.Slots {
		e.values[i] = s.Min
		if i < len(layout.Initial) {
			e.values[i] = layout.Initial[i]
		}
	}

	e.cursor = e.nextEditable(0)

	return e
}

// Title is the text shown above the field.
func (e *Entry) Title() string {
	return e.layout.Title
}

// Cursor is the index of the highlighted slot.
func (e *Entry) Cursor() int {
	return e.cursor
}

// Message is the current error text, empty when there is none.
func (e *Entry) Message() string {
	return e.message
}

// Done reports whether the field was confirmed and validated.
func (e *Entry) Done() bool {
	return e.done
}

// LastError returns the validation failure of the most recent Confirm, if any.
func (e *Entry) LastError() *ValidationError {
	return e.lastErr
}

// Cycle increments the highlighted slot, wrapping past Max back to Min.
func (e *Entry) Cycle() {
	if e.done || e.cursor >= len(e.values) {
		return
	}

	s := e.layout.Slots[e.cursor]
	v := e.values[e.cursor] + 1
	if v > s.Max {
		v = s.Min
	}

	e.values[e.cursor] = v
}

// Confirm accepts the highlighted slot. It returns true once the whole field
// has been accepted.
func (e *Entry) Confirm() bool {
	if e.done {
		return true
	}

	e.lastErr = nil

	if g, ok := e.groupEndingAt(e.cursor); ok {
		if g.Validate != nil {
			if err := g.Validate(e.number(g)); err != nil {
				e.fail(err, g.Start)
				return false
			}
		}

		e.message = ""
	}

	if next := e.nextEditable(e.cursor + 1); next < len(e.values) {
		e.cursor = next
		return false
	}

	if e.layout.Final != nil {
		if err := e.layout.Final(e.Numbers()); err != nil {
			e.fail(err, e.nextEditable(0))
			return false
		}
	}

	e.message = ""
	e.done = true

	return true
}

func (e *Entry) fail(err error, rewind int) {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		verr = invalid("", err.Error())
	}

	e.lastErr = verr
	e.message = verr.Message
	e.cursor = rewind
}

// Number returns the value of group i.
func (e *Entry) Number(i int) int {
	return e.number(e.layout.Groups[i])
}

// Numbers returns the value of every group in order.
func (e *Entry) Numbers() []int {
	out := make([]int, len(e.layout.Groups))
	for i, g := range e.layout.Groups {
		out[i] = e.number(g)
	}

	return out
}

// Cells returns the field as it is displayed.
func (e *Entry) Cells() []device.Cell {
	cells := make([]device.Cell, len(e.values))
	for i, s := range e.layout.Slots {
		if s.Sep != 0 {
			cells[i] = device.Cell{Text: string(s.Sep), Separator: true}
			continue
		}

		cells[i] = device.Cell{Text: strconv.Itoa(e.values[i])}
	}

	return cells
}

func (e *Entry) number(g Group) int {
	n := 0
	for i := g.Start; i <= g.End; i++ {
		if e.layout.Slots[i].Sep != 0 {
			continue
		}

		n = n*10 + e.values[i]
	}

	return n
}

func (e *Entry) groupEndingAt(slot int) (Group, bool) {
	for _, g := range e.layout.Groups {
		if g.End == slot {
			return g, true
		}
	}

	return Group{}, false
}

func (e *Entry) nextEditable(from int) int {
	for i := from; i < len(e.layout.Slots); i++ {
		if e.layout.Slots[i].Sep == 0 {
			return i
		}
	}

	return len(e.layout.Slots)
}

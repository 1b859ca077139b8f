package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/inovacc/feedr/internal/core"
	"github.com/inovacc/feedr/internal/model"
)

// ErrMalformedRecord is returned for a record that cannot be decoded into a
// valid state.
var ErrMalformedRecord = errors.New("malformed state record")

const headerFields = 5

// EncodeRecord renders st as a single line:
//
//	<warmStart> <mode> <count> <autoFeedsDone> <nextFeed> [<rotations> <hour> <minute>]...
func EncodeRecord(st State) string {
	s := &st.Schedule

	var b strings.Builder
	fmt.Fprintf(&b, "%d %d %d %d %d", st.WarmStart, int(s.Mode), s.Count(), s.AutoFeedsDone, s.NextFeed)

	for _, f := range s.Feeds.Slice() {
		fmt.Fprintf(&b, " %d %d %d", f.Rotations, f.Hour, f.Minute)
	}

	return b.String()
}

// DecodeRecord parses a record written by EncodeRecord.
func DecodeRecord(record string) (State, error) {
	fields := strings.Fields(record)
	if len(fields) < headerFields {
		return State{}, fmt.Errorf("%w: %d fields", ErrMalformedRecord, len(fields))
	}

	warm, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return State{}, fmt.Errorf("%w: warm start %q", ErrMalformedRecord, fields[0])
	}

	ints := make([]int, len(fields)-1)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return State{}, fmt.Errorf("%w: field %d %q", ErrMalformedRecord, i+1, f)
		}
		ints[i] = n
	}

	mode, count, autoFeeds, next := ints[0], ints[1], ints[2], ints[3]

	if mode != int(model.ModeAuto) && mode != int(model.ModePaused) {
		return State{}, fmt.Errorf("%w: mode %d", ErrMalformedRecord, mode)
	}

	if count < 0 || count > model.MaxFeeds {
		return State{}, fmt.Errorf("%w: count %d", ErrMalformedRecord, count)
	}

	if autoFeeds < 0 || autoFeeds > core.MaxAutoFeeds {
		return State{}, fmt.Errorf("%w: auto feeds done %d", ErrMalformedRecord, autoFeeds)
	}

	if want := headerFields + 3*count; len(fields) != want {
		return State{}, fmt.Errorf("%w: %d fields, want %d", ErrMalformedRecord, len(fields), want)
	}

	st := State{WarmStart: warm, Schedule: model.NewSchedule()}
	s := &st.Schedule
	s.Mode = model.Mode(mode)
	s.AutoFeedsDone = autoFeeds
	s.NextFeed = next

	if count == 0 {
		s.NextFeed = model.NoFeed
	}

	for i := 0; i < count; i++ {
		f := ints[headerFields-1+3*i:]
		if err := s.Feeds.Append(model.FeedTime{Rotations: f[0], Hour: f[1], Minute: f[2]}); err != nil {
			return State{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
	}

	if err := core.ValidateSchedule(s); err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	return st, nil
}

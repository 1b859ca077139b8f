package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"text/tabwriter"

	"github.com/inovacc/feedr/internal/device"
	"github.com/inovacc/feedr/internal/menu"
	"github.com/inovacc/feedr/internal/model"
	"github.com/inovacc/feedr/internal/params"
	"github.com/inovacc/feedr/internal/store"
)

// newLogger builds the slog logger for level and format ("text" or "json").
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

var feedSpecRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:[xX](\d))?$`)

// parseFeedSpec parses "HH:MM" or "HH:MMxR" into a feed time. Rotations
// default to 1.
func parseFeedSpec(spec string) (model.FeedTime, error) {
	m := feedSpecRe.FindStringSubmatch(spec)
	if m == nil {
		return model.FeedTime{}, fmt.Errorf("invalid feed %q: want HH:MM or HH:MMxR", spec)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	rotations := 1
	if m[3] != "" {
		rotations, _ = strconv.Atoi(m[3])
	}

	ft := model.FeedTime{Hour: hour, Minute: minute, Rotations: rotations}
	if !ft.Valid() {
		return model.FeedTime{}, fmt.Errorf("invalid feed %q: hour 0-23, minute 0-59, rotations %d-%d",
			spec, model.MinRotations, model.MaxRotations)
	}

	return ft, nil
}

// withStore opens the configured store, runs fn and closes it.
func withStore(fn func(st store.Store) error) error {
	dir, err := params.DataDir(cfg.DataDir)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Store, dir)
	if err != nil {
		return fmt.Errorf("opening %s store in %s: %w", cfg.Store, dir, err)
	}

	defer func() {
		if err := st.Close(); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}()

	return fn(st)
}

// printSchedule writes the main screen fields and the feed table.
func printSchedule(w io.Writer, st store.State) {
	clock := device.NewSimClock(st.WarmStart).Now()
	view := menu.MainViewOf(&st.Schedule, clock)

	_, _ = fmt.Fprintf(w, "Mode:            %s\n", view.Mode)
	_, _ = fmt.Fprintf(w, "Auto feeds done: %d\n", view.AutoFeedsDone)
	_, _ = fmt.Fprintf(w, "Next feed:       %s\n", view.NextFeed)
	_, _ = fmt.Fprintf(w, "Clock:           %s\n", view.Clock)

	if st.Schedule.Count() == 0 {
		_, _ = fmt.Fprintln(w, "\nNo feeds scheduled.")
		_, _ = fmt.Fprintln(w, "Create a schedule with: feedr schedule set HH:MM[xR] ...")

		return
	}

	_, _ = fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "#\tTIME\tROTATIONS\tNEXT")
	_, _ = fmt.Fprintln(tw, "-\t----\t---------\t----")

	for i, ft := range st.Schedule.Feeds.Slice() {
		marker := ""
		if i == st.Schedule.NextFeed {
			marker = "*"
		}

		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", i+1, ft, ft.Rotations, marker)
	}

	_ = tw.Flush()
}

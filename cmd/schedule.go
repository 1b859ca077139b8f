package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/inovacc/feedr/internal/core"
	"github.com/inovacc/feedr/internal/device"
	"github.com/inovacc/feedr/internal/model"
	"github.com/inovacc/feedr/internal/store"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show or change the feed schedule",
	Long: `Commands for managing the feed schedule without the device panel.

Available Commands:
  show      Show the schedule and the main screen fields
  set       Replace the schedule
  mode      Switch between auto and paused

Stop a running controller first: it keeps its own copy of the schedule.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var scheduleShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Show the feed schedule",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withStore(func(st store.Store) error {
			printSchedule(os.Stdout, store.Load(st, slog.Default()))
			return nil
		})
	},
}

var scheduleSetCmd = &cobra.Command{
	Use:   "set [HH:MM[xR]...]",
	Short: "Replace the feed schedule",
	Long: `Replace the feed schedule with up to nine daily feeds.

Each feed is HH:MM with an optional rotation count xR (1-9, default 1).
Feeds are sorted by time and must be more than five minutes apart,
including across midnight. No arguments clears the schedule.

Examples:
  feedr schedule set 08:00x2 12:30 19:45x3
  feedr schedule set`,
	Args: cobra.MaximumNArgs(model.MaxFeeds),
	RunE: runScheduleSet,
}

var scheduleModeCmd = &cobra.Command{
	Use:       "mode auto|paused",
	Short:     "Set the operating mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"auto", "paused"},
	RunE:      runScheduleMode,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleShowCmd)
	scheduleCmd.AddCommand(scheduleSetCmd)
	scheduleCmd.AddCommand(scheduleModeCmd)
}

// buildSchedule replaces the feeds of s with specs, sorted and checked
// against the clock reading now.
func buildSchedule(s *model.Schedule, specs []string, now device.DateTime) error {
	s.Feeds.Reset()

	for _, spec := range specs {
		ft, err := parseFeedSpec(spec)
		if err != nil {
			return err
		}

		if err := s.Feeds.Append(ft); err != nil {
			return err
		}
	}

	core.SortSchedule(s, now.Hour, now.Minute)

	return core.ValidateSchedule(s)
}

func runScheduleSet(_ *cobra.Command, args []string) error {
	return withStore(func(st store.Store) error {
		state := store.Load(st, slog.Default())
		now := device.NewSimClock(state.WarmStart).Now()

		if err := buildSchedule(&state.Schedule, args, now); err != nil {
			return err
		}

		if err := store.Save(st, state, slog.Default()); err != nil {
			return err
		}

		printSchedule(os.Stdout, state)

		return nil
	})
}

func runScheduleMode(_ *cobra.Command, args []string) error {
	mode, err := model.ParseMode(args[0])
	if err != nil {
		return err
	}

	return withStore(func(st store.Store) error {
		state := store.Load(st, slog.Default())
		state.Schedule.Mode = mode

		if mode == model.ModeAuto {
			now := device.NewSimClock(state.WarmStart).Now()
			state.Schedule.NextFeed = core.FindNextFeed(&state.Schedule, now.Hour, now.Minute)
		}

		if err := store.Save(st, state, slog.Default()); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Operating mode: %s\n", mode)

		return nil
	})
}

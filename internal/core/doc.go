// Package core provides the schedule engine of the feeder.
//
// The functions in this package are pure operations over a [model.Schedule]:
// sorting, conflict detection, next-feed resolution and the per-minute
// auto-feed trigger. They never talk to hardware or storage. Driving the
// motor and recording what happened is the job of [Feeder].
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - The schedule is owned by a single caller and never locked
//   - UI-specific logic belongs in the menu and cli packages, not here
//
// # Next Feed
//
// The next feed is the first entry strictly after the current time of day,
// wrapping to the first entry of the day when nothing later exists:
//
//  1. [SortSchedule] orders the entries and recomputes NextFeed
//  2. [CheckAndTriggerFeed] fires it once per minute in auto mode
//  3. [SkipNextFeed] moves past it without feeding
package core

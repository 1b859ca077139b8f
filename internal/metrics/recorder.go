package metrics

import "time"

// Recorder defines observability hooks for the feeder. Implementations must be
// safe to call on the zero value.
type Recorder interface {
	FeedDispatched(source string, rotations int, d time.Duration)
	ScheduleChanged(entries int)
	ScreenBlanked()
	ValidationFailed(field string)
	PersistFailed(op string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) FeedDispatched(string, int, time.Duration) {}
func (NoopRecorder) ScheduleChanged(int)                       {}
func (NoopRecorder) ScreenBlanked()                            {}
func (NoopRecorder) ValidationFailed(string)                   {}
func (NoopRecorder) PersistFailed(string)                      {}

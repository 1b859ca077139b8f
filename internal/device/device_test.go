package device

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimClock_DefaultStart(t *testing.T) {
	host := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := NewSimClock(0).WithNow(func() time.Time { return host })

	assert.Equal(t, DateTime{Hour: 14, Day: 1, Month: 1, Year: 1970}, c.Now())

	host = host.Add(90 * time.Second)
	assert.Equal(t, DateTime{Hour: 14, Minute: 1, Second: 30, Day: 1, Month: 1, Year: 1970}, c.Now())
}

func TestSimClock_WarmStartResumes(t *testing.T) {
	saved := time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)
	host := time.Now()

	c := NewSimClock(saved.Unix()).WithNow(func() time.Time { return host })
	assert.Equal(t, saved.Unix(), c.WarmStart())

	host = host.Add(2 * time.Minute)
	assert.Equal(t, DateTime{Hour: 0, Minute: 1, Day: 1, Month: 3, Year: 2024}, c.Now())
}

func TestSimClock_Set(t *testing.T) {
	host := time.Now()
	c := NewSimClock(0).WithNow(func() time.Time { return host })

	want := DateTime{Hour: 7, Minute: 30, Second: 15, Day: 12, Month: 6, Year: 2025}
	c.Set(want)
	assert.Equal(t, want, c.Now())

	host = host.Add(time.Second)
	assert.Equal(t, 16, c.Now().Second)
}

func TestManualClock_Advance(t *testing.T) {
	c := NewManualClock(DateTime{Hour: 23, Minute: 59, Second: 59, Day: 31, Month: 12, Year: 2025})
	c.Advance(time.Second)

	assert.Equal(t, DateTime{Day: 1, Month: 1, Year: 2026}, c.Now())
}

func TestQueueInput(t *testing.T) {
	q := NewQueueInput(2)

	assert.Equal(t, EventNone, q.Poll())
	assert.True(t, q.Push(EventCycle))
	assert.True(t, q.Push(EventConfirm))
	assert.False(t, q.Push(EventCycle), "queue should be full")

	assert.Equal(t, EventCycle, q.Poll())
	assert.Equal(t, EventConfirm, q.Poll())
	assert.Equal(t, EventNone, q.Poll())
}

func TestSimActuator(t *testing.T) {
	var slept time.Duration

	a := NewSimActuator(100 * time.Millisecond).WithSleep(func(d time.Duration) { slept += d })
	a.Refill(50)
	a.Rotate(3)

	assert.Equal(t, 300*time.Millisecond, slept)
	assert.Equal(t, ActuatorStats{Rotations: 3, Refills: 1, Level: 47}, a.Stats())
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "cycle", EventCycle.String())
	assert.Equal(t, "confirm", EventConfirm.String())
	assert.Equal(t, "none", EventNone.String())
	assert.Equal(t, "Event(9)", Event(9).String())
}

func TestListWindow(t *testing.T) {
	tests := []struct {
		n, highlighted int
		start, end     int
	}{
		{3, 0, 0, 3},
		{5, 3, 0, 4},
		{5, 4, 1, 5},
		{10, 9, 6, 10},
	}

	for _, tt := range tests {
		start, end := ListWindow(tt.n, tt.highlighted)
		assert.Equal(t, tt.start, start, "start for n=%d highlighted=%d", tt.n, tt.highlighted)
		assert.Equal(t, tt.end, end, "end for n=%d highlighted=%d", tt.n, tt.highlighted)
	}
}

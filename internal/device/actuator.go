package device

import (
	"log/slog"
	"sync"
	"time"
)

// SimActuator stands in for the stepper motor and hopper. Each rotation takes
// rotationDuration of real time.
type SimActuator struct {
	rotationDuration time.Duration
	sleep            func(time.Duration)
	logger           *slog.Logger

	mu        sync.Mutex
	rotations int
	refills   int
	level     int
}

// NewSimActuator creates an actuator whose rotations take rotationDuration.
func NewSimActuator(rotationDuration time.Duration) *SimActuator {
	return &SimActuator{
		rotationDuration: rotationDuration,
		sleep:            time.Sleep,
		logger:           slog.Default(),
	}
}

// WithLogger sets the logger for the actuator
func (a *SimActuator) WithLogger(logger *slog.Logger) *SimActuator {
	a.logger = logger
	return a
}

// WithSleep replaces the blocking wait used per rotation.
func (a *SimActuator) WithSleep(sleep func(time.Duration)) *SimActuator {
	a.sleep = sleep
	return a
}

func (a *SimActuator) Rotate(times int) {
	a.logger.Info("feeder rotating", "rotations", times)

	for i := 0; i < times; i++ {
		if a.rotationDuration > 0 {
			a.sleep(a.rotationDuration)
		}

		a.mu.Lock()
		a.rotations++
		if a.level > 0 {
			a.level--
		}
		a.mu.Unlock()
	}
}

func (a *SimActuator) Refill(amount int) {
	a.mu.Lock()
	a.refills++
	a.level = amount
	a.mu.Unlock()

	a.logger.Debug("hopper refilled", "amount", amount)
}

// ActuatorStats is a snapshot of what the simulated hardware has done.
type ActuatorStats struct {
	Rotations int
	Refills   int
	Level     int
}

// Stats returns the rotations and refills performed so far.
func (a *SimActuator) Stats() ActuatorStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	return ActuatorStats{Rotations: a.rotations, Refills: a.refills, Level: a.level}
}

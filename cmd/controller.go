package cmd

import (
	"fmt"
	"log/slog"

	"github.com/inovacc/feedr/internal/core"
	"github.com/inovacc/feedr/internal/device"
	"github.com/inovacc/feedr/internal/menu"
	"github.com/inovacc/feedr/internal/metrics"
	"github.com/inovacc/feedr/internal/model"
	"github.com/inovacc/feedr/internal/params"
	"github.com/inovacc/feedr/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

// controller wires the persisted state to the simulated hardware.
type controller struct {
	cfg      model.Config
	dir      string
	store    store.Store
	state    store.State
	clock    *device.SimClock
	feeder   *core.Feeder
	registry *prometheus.Registry
	recorder *metrics.PrometheusRecorder
	logger   *slog.Logger
}

func openController(cfg model.Config, logger *slog.Logger) (*controller, error) {
	dir, err := params.DataDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.Store, dir)
	if err != nil {
		return nil, fmt.Errorf("opening %s store in %s: %w", cfg.Store, dir, err)
	}

	if err := st.Ping(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("store not reachable: %w", err)
	}

	state := store.Load(st, logger)

	registry := prometheus.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)
	recorder.ScheduleChanged(state.Schedule.Count())

	clock := device.NewSimClock(state.WarmStart)
	actuator := device.NewSimActuator(cfg.RotationDuration).WithLogger(logger)
	feeder := core.NewFeeder(actuator, clock).
		WithHistory(st).
		WithRecorder(recorder).
		WithLogger(logger).
		WithRefillAmount(cfg.RefillAmount)
	feeder.Prime()

	logger.Info("controller ready",
		"store", cfg.Store,
		"dir", dir,
		"clock", clock.Now().String(),
		"mode", state.Schedule.Mode.String(),
		"feeds", state.Schedule.Count())

	return &controller{
		cfg:      cfg,
		dir:      dir,
		store:    st,
		state:    state,
		clock:    clock,
		feeder:   feeder,
		registry: registry,
		recorder: recorder,
		logger:   logger,
	}, nil
}

// navigator builds the menu navigator over the controller's schedule. Every
// schedule change is persisted.
func (c *controller) navigator(input device.Input, display device.Display) *menu.Navigator {
	return menu.New(&c.state.Schedule, c.clock, input, display, c.feeder).
		WithLogger(c.logger).
		WithRecorder(c.recorder).
		WithTick(c.cfg.Tick).
		WithIdleTimeout(c.cfg.IdleTimeout).
		WithOnChange(func(*model.Schedule) { c.save() })
}

func (c *controller) save() {
	c.state.WarmStart = c.clock.WarmStart()

	if err := store.Save(c.store, c.state, c.logger); err != nil {
		c.recorder.PersistFailed("save_state")
	}
}

// close saves the clock reading for the next warm start and closes the store.
func (c *controller) close() {
	c.save()

	if err := c.store.Close(); err != nil {
		c.logger.Warn("failed to close store", "error", err)
	}
}

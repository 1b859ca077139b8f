package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	feeds            *prom.CounterVec
	rotations        *prom.CounterVec
	feedDuration     prom.Histogram
	scheduleEntries  prom.Gauge
	scheduleChanges  prom.Counter
	screenBlanks     prom.Counter
	validationErrors *prom.CounterVec
	persistErrors    *prom.CounterVec
}

// NewPrometheusRecorder constructs the feeder metrics and registers them with
// reg, or with a fresh registry when reg is nil.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		feeds: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "feedr",
			Name:      "feeds_total",
			Help:      "Feeds performed by source",
		}, []string{"source"}),
		rotations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "feedr",
			Name:      "rotations_total",
			Help:      "Feeder rotations performed by source",
		}, []string{"source"}),
		feedDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "feedr",
			Name:      "feed_duration_seconds",
			Help:      "Time the actuator spent on a single feed",
			Buckets:   prom.DefBuckets,
		}),
		scheduleEntries: prom.NewGauge(prom.GaugeOpts{
			Namespace: "feedr",
			Name:      "schedule_entries",
			Help:      "Number of feeds in the daily schedule",
		}),
		scheduleChanges: prom.NewCounter(prom.CounterOpts{
			Namespace: "feedr",
			Name:      "schedule_changes_total",
			Help:      "Schedule replacements and edits",
		}),
		screenBlanks: prom.NewCounter(prom.CounterOpts{
			Namespace: "feedr",
			Name:      "screen_blanks_total",
			Help:      "Times the display went to power save",
		}),
		validationErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "feedr",
			Name:      "validation_errors_total",
			Help:      "Rejected operator entries by field",
		}, []string{"field"}),
		persistErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "feedr",
			Name:      "persist_errors_total",
			Help:      "Failed state store operations",
		}, []string{"op"}),
	}

	reg.MustRegister(pr.feeds, pr.rotations, pr.feedDuration, pr.scheduleEntries,
		pr.scheduleChanges, pr.screenBlanks, pr.validationErrors, pr.persistErrors)

	return pr
}

func (p *PrometheusRecorder) FeedDispatched(source string, rotations int, d time.Duration) {
	if p == nil || p.feeds == nil {
		return
	}
	p.feeds.WithLabelValues(source).Inc()
	p.rotations.WithLabelValues(source).Add(float64(rotations))
	p.feedDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) ScheduleChanged(entries int) {
	if p == nil || p.scheduleEntries == nil {
		return
	}
	p.scheduleEntries.Set(float64(entries))
	p.scheduleChanges.Inc()
}

func (p *PrometheusRecorder) ScreenBlanked() {
	if p == nil || p.screenBlanks == nil {
		return
	}
	p.screenBlanks.Inc()
}

func (p *PrometheusRecorder) ValidationFailed(field string) {
	if p == nil || p.validationErrors == nil {
		return
	}
	p.validationErrors.WithLabelValues(field).Inc()
}

func (p *PrometheusRecorder) PersistFailed(op string) {
	if p == nil || p.persistErrors == nil {
		return
	}
	p.persistErrors.WithLabelValues(op).Inc()
}


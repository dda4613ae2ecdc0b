package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"

	"github.com/RenaudDev/PaperPause/internal/domain"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
//
// Both binaries are short-lived batch runs, so instead of exposing a scrape
// endpoint the counters are pushed to a Pushgateway at the end of the run
// (see Push).
type Metrics struct {
	ItemsPlanned     *prometheus.CounterVec
	ItemsDropped     prometheus.Counter
	ItemsDispatched  prometheus.Counter
	DispatchFailures prometheus.Counter
	QueueDepth       prometheus.Gauge

	registry *prometheus.Registry
}

// New registers all instruments with a fresh registry and returns the
// populated Metrics struct. A private registry keeps tests isolated and
// avoids global state.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		ItemsPlanned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "distribution_items_planned_total",
			Help: "Queue items written by the scheduler, by cadence mode.",
		}, []string{"mode"}),

		ItemsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "distribution_items_dropped_total",
			Help: "Selected collections dropped because the publishing window overflowed.",
		}),

		ItemsDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "distribution_items_dispatched_total",
			Help: "Queue items successfully handed to the distribution endpoint.",
		}),

		DispatchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "distribution_dispatch_failures_total",
			Help: "Per-item webhook failures; failed items stay queued for the next run.",
		}),

		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "distribution_queue_depth",
			Help: "Items in the persisted queue after the last run.",
		}),

		registry: reg,
	}

	reg.MustRegister(
		m.ItemsPlanned,
		m.ItemsDropped,
		m.ItemsDispatched,
		m.DispatchFailures,
		m.QueueDepth,
	)
	return m
}

// PlannerHooks returns the metric callbacks expected by planner.MetricHooks.
// Centralises the prometheus calls so the planner stays import-free.
func (m *Metrics) PlannerHooks() (onPlanned func(domain.Mode), onDropped func(int)) {
	onPlanned = func(mode domain.Mode) {
		m.ItemsPlanned.WithLabelValues(string(mode)).Inc()
	}
	onDropped = func(count int) {
		m.ItemsDropped.Add(float64(count))
	}
	return
}

// ConductorHooks returns the metric callbacks expected by dispatch.MetricHooks.
func (m *Metrics) ConductorHooks() (onDispatched, onFailed func(), onQueueDepth func(int)) {
	onDispatched = func() { m.ItemsDispatched.Inc() }
	onFailed = func() { m.DispatchFailures.Inc() }
	onQueueDepth = func(depth int) { m.QueueDepth.Set(float64(depth)) }
	return
}

// Push sends the run's metrics to the Pushgateway under the given job name.
// An empty gateway URL disables pushing; a push failure is logged, never
// escalated, because observability must not fail a run that did real work.
func (m *Metrics) Push(gatewayURL, job string, logger *zap.Logger) {
	if gatewayURL == "" {
		return
	}
	if err := push.New(gatewayURL, job).Gatherer(m.registry).Push(); err != nil {
		logger.Warn("failed to push metrics", zap.String("job", job), zap.Error(err))
	}
}

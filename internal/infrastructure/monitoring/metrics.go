// Package monitoring holds the Prometheus metrics of a simulation run.
// Nothing serves them over HTTP; the simulator exposes no network surface.
// Tests and embedding programs read values straight from the registry.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/queuesim/postoffice/internal/shared/types"
)

// Metrics holds all Prometheus metrics for one run.
type Metrics struct {
	// Queue metrics
	QueueLength *prometheus.GaugeVec

	// Client metrics
	ClientsServed     prometheus.Counter
	ClientsTurnedAway prometheus.Counter

	// Worker metrics
	BreaksTaken     prometheus.Counter
	ServiceDuration prometheus.Histogram
}

// NewMetrics creates a metrics collector registered with reg. Passing nil
// registers into a fresh private registry, which keeps runs (and tests)
// isolated from each other.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		QueueLength: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "postoffice_queue_length",
				Help: "Number of clients waiting per service type",
			},
			[]string{"service"},
		),
		ClientsServed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "postoffice_clients_served_total",
				Help: "Total number of clients served",
			},
		),
		ClientsTurnedAway: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "postoffice_clients_turned_away_total",
				Help: "Total number of clients who arrived after closing",
			},
		),
		BreaksTaken: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "postoffice_breaks_taken_total",
				Help: "Total number of worker breaks",
			},
		),
		ServiceDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "postoffice_service_duration_seconds",
				Help:    "Duration of a single service in seconds",
				Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1},
			},
		),
	}
}

// ClientQueued records a client joining the queue for svc.
func (m *Metrics) ClientQueued(svc types.Service) {
	m.QueueLength.WithLabelValues(svc.String()).Inc()
}

// ClientClaimed records a worker taking a client out of the queue for svc.
func (m *Metrics) ClientClaimed(svc types.Service) {
	m.QueueLength.WithLabelValues(svc.String()).Dec()
}

// RecordServed records a completed service.
func (m *Metrics) RecordServed() {
	m.ClientsServed.Inc()
}

// RecordTurnedAway records a client who found the office closed.
func (m *Metrics) RecordTurnedAway() {
	m.ClientsTurnedAway.Inc()
}

// RecordBreak records a worker break.
func (m *Metrics) RecordBreak() {
	m.BreaksTaken.Inc()
}

// RecordServiceDuration records how long a single service took.
func (m *Metrics) RecordServiceDuration(d time.Duration) {
	m.ServiceDuration.Observe(d.Seconds())
}

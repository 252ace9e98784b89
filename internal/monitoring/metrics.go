package monitoring

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/GriffinCanCode/zstat/internal/numerics"
)

// Record outcomes used as label values on RecordsTotal.
const (
	OutcomeRead     = "read"
	OutcomeRetained = "retained"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Numerics metrics
	Evaluations  *prometheus.CounterVec
	NonConverged *prometheus.CounterVec
	DomainErrors *prometheus.CounterVec

	// Resampling metrics
	RecordsTotal *prometheus.CounterVec

	// Command metrics
	CommandRuns     *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
}

var _ numerics.Observer = (*Metrics)(nil)

// NewMetrics creates a metrics collector on its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// Numerics metrics
		Evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zstat_evaluations_total",
				Help: "Total number of incomplete gamma evaluations",
			},
			[]string{"routine", "method"},
		),
		NonConverged: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zstat_evaluations_nonconverged_total",
				Help: "Total number of evaluations that hit the iteration limit",
			},
			[]string{"routine", "method"},
		),
		DomainErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zstat_domain_errors_total",
				Help: "Total number of rejected argument pairs",
			},
			[]string{"routine"},
		),

		// Resampling metrics
		RecordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zstat_records_total",
				Help: "Total number of records by filter outcome",
			},
			[]string{"outcome"},
		),

		// Command metrics
		CommandRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zstat_command_runs_total",
				Help: "Total number of command runs by exit status",
			},
			[]string{"command", "status"},
		),
		CommandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "zstat_command_duration_seconds",
				Help:    "Command duration in seconds",
				Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 30, 60},
			},
			[]string{"command"},
		),
	}
}

// Registry returns the registry the metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveEvaluation records a completed evaluation
func (m *Metrics) ObserveEvaluation(routine string, res numerics.Result) {
	method := res.Method.String()
	m.Evaluations.WithLabelValues(routine, method).Inc()
	if !res.Converged {
		m.NonConverged.WithLabelValues(routine, method).Inc()
	}
}

// ObserveDomainError records a rejected argument pair
func (m *Metrics) ObserveDomainError(routine string) {
	m.DomainErrors.WithLabelValues(routine).Inc()
}

// RecordRecords records the outcome counts of one filter pass
func (m *Metrics) RecordRecords(read, retained, rejected, failed int) {
	m.RecordsTotal.WithLabelValues(OutcomeRead).Add(float64(read))
	m.RecordsTotal.WithLabelValues(OutcomeRetained).Add(float64(retained))
	m.RecordsTotal.WithLabelValues(OutcomeRejected).Add(float64(rejected))
	m.RecordsTotal.WithLabelValues(OutcomeFailed).Add(float64(failed))
}

// RecordCommand records a finished command run
func (m *Metrics) RecordCommand(command, status string, duration time.Duration) {
	m.CommandRuns.WithLabelValues(command, status).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// WriteTextfile writes all metrics in the node exporter textfile format
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// Timer measures command duration
type Timer struct {
	start   time.Time
	metrics *Metrics
	command string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, command string) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: metrics,
		command: command,
	}
}

// Stop stops the timer and records the run
func (t *Timer) Stop(status string) {
	t.metrics.RecordCommand(t.command, status, time.Since(t.start))
}

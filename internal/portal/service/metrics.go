package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

// Metrics holds the portal's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	stages    *prometheus.CounterVec
	results   *prometheus.CounterVec
	durations *prometheus.HistogramVec
	roles     *prometheus.CounterVec
	pruned    prometheus.Counter
	stored    prometheus.Gauge
}

// NewMetrics registers the portal collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		stages: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carebridge",
			Subsystem: "dispatch",
			Name:      "stage_transitions_total",
			Help:      "Dispatch state machine transitions by action and stage entered.",
		}, []string{"action", "stage"}),
		results: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carebridge",
			Subsystem: "dispatch",
			Name:      "results_total",
			Help:      "Dispatch outcomes by action, status and failure kind.",
		}, []string{"action", "status", "failure"}),
		durations: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "carebridge",
			Subsystem: "dispatch",
			Name:      "duration_seconds",
			Help:      "Wall time of non-busy dispatches.",
			Buckets:   []float64{0.05, 0.25, 1, 5, 15, 30, 60, 120, 300},
		}, []string{"action"}),
		roles: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carebridge",
			Subsystem: "roles",
			Name:      "resolutions_total",
			Help:      "Role resolutions by resulting role and whether a registry read failed.",
		}, []string{"role", "outcome"}),
		pruned: f.NewCounter(prometheus.CounterOpts{
			Namespace: "carebridge",
			Subsystem: "activity",
			Name:      "pruned_total",
			Help:      "Activity records removed by housekeeping.",
		}),
		stored: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "carebridge",
			Subsystem: "activity",
			Name:      "records",
			Help:      "Activity records kept after the last housekeeping run.",
		}),
	}
}

func (m *Metrics) stage(kind domain.ActionKind, s domain.Stage) {
	if m == nil {
		return
	}
	m.stages.WithLabelValues(string(kind), string(s)).Inc()
}

func (m *Metrics) result(res domain.Result, took time.Duration) {
	if m == nil {
		return
	}
	failure := ""
	if res.Failure != nil {
		failure = string(res.Failure.Kind)
	}
	m.results.WithLabelValues(string(res.Kind), string(res.Status), failure).Inc()
	if !res.Busy() {
		m.durations.WithLabelValues(string(res.Kind)).Observe(took.Seconds())
	}
}

func (m *Metrics) role(r domain.Role, failed bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if failed {
		outcome = "fail_open"
	}
	m.roles.WithLabelValues(r.String(), outcome).Inc()
}

func (m *Metrics) prunedActivity(deleted, remaining int64) {
	if m == nil {
		return
	}
	if deleted > 0 {
		m.pruned.Add(float64(deleted))
	}
	m.stored.Set(float64(remaining))
}

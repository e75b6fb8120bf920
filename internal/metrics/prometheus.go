package metrics

import (
	"sync"

	"github.com/STAT540-UBC/crossmark/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors register lazily on first use so that constructing the collector
// never panics on duplicate registration.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	planAttempts  *prometheus.CounterVec
	planDuration  prometheus.Histogram
	studentsGauge prometheus.Gauge
	reviewerLoad  *prometheus.GaugeVec
	capOverflow   prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "crossmark" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "crossmark"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.planAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "attempts_total",
			Help:      "Total planning attempts by outcome (success,insufficient_candidates,error).",
		}, []string{"outcome"})

		p.planDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plan_duration_seconds",
			Help:      "End-to-end duration of a planning run in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms .. ~1s
		})

		p.studentsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "students_planned",
			Help:      "Students covered by the most recent plan.",
		})

		p.reviewerLoad = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "reviewer_load",
			Help:      "Reviewers assigned to each team in the most recent plan.",
		}, []string{"team"})

		p.capOverflow = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "cap_overflow_teams",
			Help:      "Teams whose reviewer count exceeds the soft cap in the most recent plan.",
		})

		p.reg.MustRegister(p.planAttempts)
		p.reg.MustRegister(p.planDuration)
		p.reg.MustRegister(p.studentsGauge)
		p.reg.MustRegister(p.reviewerLoad)
		p.reg.MustRegister(p.capOverflow)
	})
}

// PlannerMetrics implementation

// RecordPlanAttempt increments the attempt counter for the given outcome.
func (p *PrometheusCollector) RecordPlanAttempt(outcome string) {
	p.ensureRegistered()
	p.planAttempts.WithLabelValues(outcome).Inc()
}

// RecordPlanDuration observes the duration of a planning run.
func (p *PrometheusCollector) RecordPlanDuration(seconds float64) {
	p.ensureRegistered()
	p.planDuration.Observe(seconds)
}

// AssignmentMetrics implementation

// RecordStudentsPlanned sets the planned student count gauge.
func (p *PrometheusCollector) RecordStudentsPlanned(count int) {
	p.ensureRegistered()
	p.studentsGauge.Set(float64(count))
}

// RecordReviewerLoad sets the reviewer load gauge for a team.
func (p *PrometheusCollector) RecordReviewerLoad(team string, reviewers int) {
	p.ensureRegistered()
	p.reviewerLoad.WithLabelValues(team).Set(float64(reviewers))
}

// RecordCapOverflow sets the cap overflow gauge.
func (p *PrometheusCollector) RecordCapOverflow(teams int) {
	p.ensureRegistered()
	p.capOverflow.Set(float64(teams))
}

package metrics

import "github.com/STAT540-UBC/crossmark/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	metrics := metrics.NewNop()
//	planner, err := crossmark.NewPlanner(&cfg, src, crossmark.WithMetrics(metrics))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// PlannerMetrics implementation

// RecordPlanAttempt discards the plan attempt metric.
func (n *NopMetrics) RecordPlanAttempt(_ /* outcome */ string) {
	// No-op
}

// RecordPlanDuration discards the plan duration metric.
func (n *NopMetrics) RecordPlanDuration(_ /* seconds */ float64) {
	// No-op
}

// AssignmentMetrics implementation

// RecordStudentsPlanned discards the planned student count metric.
func (n *NopMetrics) RecordStudentsPlanned(_ /* count */ int) {
	// No-op
}

// RecordReviewerLoad discards the per-team reviewer load metric.
func (n *NopMetrics) RecordReviewerLoad(_ /* team */ string, _ /* reviewers */ int) {
	// No-op
}

// RecordCapOverflow discards the cap overflow metric.
func (n *NopMetrics) RecordCapOverflow(_ /* teams */ int) {
	// No-op
}

package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_RecordPlanAttempt(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordPlanAttempt("success")
		metrics.RecordPlanAttempt("insufficient_candidates")
		metrics.RecordPlanAttempt("")
	})
}

func TestNopMetrics_RecordPlanDuration(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordPlanDuration(0.005)
		metrics.RecordPlanDuration(0)
		metrics.RecordPlanDuration(-1.0)
	})
}

func TestNopMetrics_RecordReviewerLoad(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordReviewerLoad("team1", 10)
		metrics.RecordReviewerLoad("", 0)
		metrics.RecordReviewerLoad("team-with-long-name", -1)
	})
}

func TestNopMetrics_RecordCapOverflow(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordCapOverflow(0)
		metrics.RecordCapOverflow(2)
		metrics.RecordCapOverflow(-1)
	})
}

func BenchmarkNopMetrics_RecordPlanAttempt(b *testing.B) {
	metrics := NewNop()
	for b.Loop() {
		metrics.RecordPlanAttempt("success")
	}
}

func BenchmarkNopMetrics_RecordReviewerLoad(b *testing.B) {
	metrics := NewNop()
	for b.Loop() {
		metrics.RecordReviewerLoad("team1", 10)
	}
}

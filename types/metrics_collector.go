package types

// MetricsCollector defines methods for recording planner metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The Planner calls collectors synchronously from the single planning
// goroutine, so implementations need not be thread-safe for crossmark's own
// use, though shared collectors (e.g. Prometheus) typically are anyway.
//
// This interface composes smaller, domain-focused interfaces.
type MetricsCollector interface {
	PlannerMetrics
	AssignmentMetrics
}

// PlannerMetrics defines metrics for planning-run outcomes.
type PlannerMetrics interface {
	// RecordPlanAttempt records one assignment attempt.
	//
	// Parameters:
	//   - outcome: "success", "insufficient_candidates" or "error"
	RecordPlanAttempt(outcome string)

	// RecordPlanDuration records the wall time of a whole Plan call,
	// including retries.
	//
	// Parameters:
	//   - seconds: Time taken in seconds
	RecordPlanDuration(seconds float64)
}

// AssignmentMetrics defines metrics describing a completed plan.
type AssignmentMetrics interface {
	// RecordStudentsPlanned sets the number of students in the last
	// completed plan (gauge metric).
	RecordStudentsPlanned(count int)

	// RecordReviewerLoad sets the reviewer count for a team in the last
	// completed plan (gauge metric).
	RecordReviewerLoad(team string, reviewers int)

	// RecordCapOverflow sets how many teams exceeded the soft reviewer cap
	// in the last completed plan (gauge metric). Non-zero values are the
	// expected tail effect of greedy removal, not a fault.
	RecordCapOverflow(teams int)
}

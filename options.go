package crossmark

// Option configures a Planner with optional dependencies.
type Option func(*plannerOptions)

// plannerOptions holds optional Planner configuration.
type plannerOptions struct {
	strategy AssignmentStrategy
	metrics  MetricsCollector
	logger   Logger
}

// WithStrategy sets a custom assignment strategy.
//
// Parameters:
//   - strategy: AssignmentStrategy implementation
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	planner, err := crossmark.NewPlanner(&cfg, src,
//	    crossmark.WithStrategy(strategy.NewRoundRobin()),
//	)
func WithStrategy(strategy AssignmentStrategy) Option {
	return func(o *plannerOptions) {
		o.strategy = strategy
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	metrics := myPrometheusCollector
//	planner, err := crossmark.NewPlanner(&cfg, src, crossmark.WithMetrics(metrics))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *plannerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with slog-style key-value pairs)
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	logger := myStructuredLogger
//	planner, err := crossmark.NewPlanner(&cfg, src, crossmark.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *plannerOptions) {
		o.logger = logger
	}
}

package crossmark

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/STAT540-UBC/crossmark/internal/logger"
	"github.com/STAT540-UBC/crossmark/internal/metrics"
	"github.com/STAT540-UBC/crossmark/internal/seed"
	"github.com/STAT540-UBC/crossmark/strategy"
	"github.com/STAT540-UBC/crossmark/types"
)

// Planner draws cross-team review assignments for a course roster.
//
// Planner is the main entry point of the crossmark library. It handles:
//   - Loading and validating the roster from a RosterSource
//   - Rejecting quotas no draw could ever satisfy
//   - Drawing assignments with the configured strategy
//   - Retrying with fresh randomness when a draw saturates
//   - Assembling the ordered plan and reviewer counts
//
// Thread Safety:
//   - Each Plan call owns all of its working state, so a Planner is safe
//     for concurrent use even though a single draw is fully synchronous
//
// Testing:
// Consumers can define minimal interfaces for mocking:
//
//	type ReviewPlanner interface {
//	    Plan(ctx context.Context) (*crossmark.Plan, error)
//	}
type Planner struct {
	cfg    Config
	source RosterSource

	// Optional dependencies
	strategy AssignmentStrategy
	metrics  MetricsCollector
	logger   Logger
}

// NewPlanner creates a new Planner instance with the provided configuration.
//
// Returns a concrete *Planner struct following the "accept interfaces,
// return structs" principle. Consumers can define their own interfaces for
// testing if needed.
//
// Parameters:
//   - cfg: Runtime configuration (defaults are applied to zero fields)
//   - source: Roster source providing teams and students
//   - opts: Optional configuration (strategy, metrics, logger)
//
// Returns:
//   - *Planner: Initialized planner instance
//   - error: Validation error if configuration is invalid
//
// Example:
//
//	cfg := crossmark.Config{TeamsPerStudent: 2, Seed: "stat540-2026"}
//	src := source.NewFile("roster.yaml")
//	planner, err := crossmark.NewPlanner(&cfg, src)
func NewPlanner(cfg *Config, source RosterSource, opts ...Option) (*Planner, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if source == nil {
		return nil, ErrRosterSourceRequired
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Apply options
	options := &plannerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	strategyInstance := options.strategy
	if strategyInstance == nil {
		strategyInstance = strategy.NewRandomDraw(strategy.WithDrawLogger(loggerInstance))
	}

	return &Planner{
		cfg:      *cfg,
		source:   source,
		strategy: strategyInstance,
		metrics:  metricsCollector,
		logger:   loggerInstance,
	}, nil
}

// Plan loads the roster and draws a complete review assignment.
//
// A draw can run out of candidate teams part-way through when earlier
// students fill the pool; such draws are discarded and retried with fresh
// randomness, up to MaxAttempts times. Students appear in the plan in
// roster order.
//
// Parameters:
//   - ctx: Context for cancellation between attempts
//
// Returns:
//   - *Plan: Completed assignment plan
//   - error: Roster or feasibility error, or ErrAssignmentFailed wrapping
//     the last draw error once the attempt budget is exhausted
func (p *Planner) Plan(ctx context.Context) (*Plan, error) {
	started := time.Now()

	roster, err := p.source.LoadRoster(ctx)
	if err != nil {
		p.metrics.RecordPlanAttempt("error")

		return nil, fmt.Errorf("load roster: %w", err)
	}

	if err := roster.Validate(); err != nil {
		p.metrics.RecordPlanAttempt("error")

		return nil, fmt.Errorf("invalid roster: %w", err)
	}

	students := roster.AllStudents()
	teams := roster.TeamNames()
	quota := p.cfg.TeamsPerStudent

	if err := checkFeasible(teams, students, quota); err != nil {
		p.metrics.RecordPlanAttempt("error")

		return nil, err
	}

	baseSeed := p.resolveSeed()

	var (
		assignments map[string][]string
		attempt     int
	)

	err = retry.Do(
		func() error {
			attempt++
			// Reseeding with the attempt number keeps the run reproducible
			// from baseSeed while giving every retry fresh randomness.
			rng := rand.New(rand.NewPCG(baseSeed, uint64(attempt)))

			var drawErr error
			assignments, drawErr = p.strategy.Assign(rng, teams, students, quota)
			if drawErr != nil {
				p.metrics.RecordPlanAttempt(attemptOutcome(drawErr))

				return drawErr
			}

			p.metrics.RecordPlanAttempt("success")

			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(p.cfg.MaxAttempts)),
		retry.Delay(time.Millisecond),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, types.ErrInsufficientCandidates)
		}),
		retry.OnRetry(func(n uint, err error) {
			p.logger.Warn("draw ran out of candidate teams, retrying",
				"attempt", n+1, "max_attempts", p.cfg.MaxAttempts, "error", err)
		}),
	)
	if err != nil {
		p.metrics.RecordPlanDuration(time.Since(started).Seconds())

		return nil, fmt.Errorf("%w after %d attempts: %w", ErrAssignmentFailed, attempt, err)
	}

	plan := p.buildPlan(students, teams, assignments, baseSeed, attempt)

	p.recordPlanMetrics(plan, time.Since(started))
	p.logger.Info("plan complete",
		"students", len(students),
		"teams", len(teams),
		"quota", quota,
		"cap", plan.Cap,
		"seed", plan.Seed,
		"attempts", plan.Attempts,
	)

	return plan, nil
}

// checkFeasible rejects quotas no draw can satisfy, so the planner fails
// fast instead of burning its attempt budget.
func checkFeasible(teams []string, students []types.Student, quota int) error {
	if len(teams) == 0 {
		return types.ErrNoTeams
	}
	if quota < 1 {
		return fmt.Errorf("%w: %d", types.ErrInvalidQuota, quota)
	}

	for _, student := range students {
		candidates := len(teams)
		if student.HomeTeam != "" {
			// Roster validation already confirmed the home team is real.
			candidates--
		}
		if candidates < quota {
			return fmt.Errorf("%w: student %q has %d candidate teams for quota %d",
				types.ErrInvalidQuota, student.Name, candidates, quota)
		}
	}

	return nil
}

func (p *Planner) resolveSeed() uint64 {
	if p.cfg.Seed == "" {
		return seed.Random()
	}

	return seed.Parse(p.cfg.Seed)
}

func (p *Planner) buildPlan(students []types.Student, teams []string, assignments map[string][]string, baseSeed uint64, attempts int) *Plan {
	plan := &types.Plan{
		Quota:          p.cfg.TeamsPerStudent,
		Cap:            strategy.ReviewerCap(len(students), len(teams), p.cfg.TeamsPerStudent),
		Seed:           baseSeed,
		Attempts:       attempts,
		Assignments:    make([]types.ReviewAssignment, 0, len(students)),
		ReviewerCounts: types.CountReviewers(assignments),
	}

	for _, student := range students {
		plan.Assignments = append(plan.Assignments, types.ReviewAssignment{
			Student: student.Name,
			Teams:   assignments[student.Name],
		})
	}

	return plan
}

func (p *Planner) recordPlanMetrics(plan *Plan, elapsed time.Duration) {
	p.metrics.RecordPlanDuration(elapsed.Seconds())
	p.metrics.RecordStudentsPlanned(len(plan.Assignments))

	overflow := 0
	for team, reviewers := range plan.ReviewerCounts {
		p.metrics.RecordReviewerLoad(team, reviewers)
		if reviewers > plan.Cap {
			overflow++
		}
	}
	p.metrics.RecordCapOverflow(overflow)
}

func attemptOutcome(err error) string {
	if errors.Is(err, types.ErrInsufficientCandidates) {
		return "insufficient_candidates"
	}

	return "error"
}

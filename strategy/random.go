package strategy

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/STAT540-UBC/crossmark/internal/logger"
	"github.com/STAT540-UBC/crossmark/types"
)

// RandomDraw implements greedy randomized assignment with a soft reviewer cap.
type RandomDraw struct {
	logger types.Logger
}

var _ types.AssignmentStrategy = (*RandomDraw)(nil)

// RandomDrawOption configures a RandomDraw strategy.
type RandomDrawOption func(*RandomDraw)

// NewRandomDraw creates a new random-draw strategy.
//
// The strategy assigns each student a uniform random sample of teams while
// pruning teams that reached the reviewer cap, keeping the reviewer load per
// team roughly balanced. It is the default strategy of the Planner.
//
// Parameters:
//   - opts: Optional configuration (WithDrawLogger)
//
// Returns:
//   - *RandomDraw: Initialized random-draw strategy
//
// Example:
//
//	strat := strategy.NewRandomDraw()
//	planner, err := crossmark.NewPlanner(&cfg, src, crossmark.WithStrategy(strat))
func NewRandomDraw(opts ...RandomDrawOption) *RandomDraw {
	rd := &RandomDraw{
		logger: logger.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(rd)
		}
	}

	if rd.logger == nil {
		rd.logger = logger.NewNop()
	}

	return rd
}

// WithDrawLogger sets the logger used for cap diagnostics.
func WithDrawLogger(l types.Logger) RandomDrawOption {
	return func(rd *RandomDraw) {
		rd.logger = l
	}
}

// Assign calculates review assignments using greedy randomized draws.
//
// The algorithm:
//  1. Compute the soft reviewer cap (see ReviewerCap)
//  2. Iterate students in order; each draws quota distinct teams uniformly
//     at random from the eligible teams minus their home team
//  3. After each student, prune teams that reached the cap, but only while
//     more than quota teams remain eligible, so the candidate pool is never
//     emptied by pruning alone
//
// Random sampling order decides which teams saturate first, so a draw can
// strand a student with too few candidates. That surfaces as an error
// wrapping types.ErrInsufficientCandidates and is recovered by retrying the
// whole assignment with fresh randomness (the Planner does this).
//
// Teams still eligible when pruning stops can exceed the cap: every
// remaining student draws from that final pool. This overflow is inherent to
// greedy removal and is reported, not prevented.
//
// Parameters:
//   - rng: Random source for this attempt
//   - teams: Reviewable team names
//   - students: Students in processing order
//   - quota: Number of distinct teams each student reviews
//
// Returns:
//   - map[string][]string: Map from student name to drawn team names
//   - error: types.ErrNoTeams, types.ErrInvalidQuota, or a wrapped
//     types.ErrInsufficientCandidates
func (rd *RandomDraw) Assign(rng *rand.Rand, teams []string, students []types.Student, quota int) (map[string][]string, error) {
	if len(teams) == 0 {
		return nil, types.ErrNoTeams
	}
	if quota < 1 {
		return nil, fmt.Errorf("%w: %d", types.ErrInvalidQuota, quota)
	}

	maxReviewers := ReviewerCap(len(students), len(teams), quota)
	rd.logger.Debug("computed reviewer cap",
		"cap", maxReviewers,
		"teams", len(teams),
		"students", len(students),
		"quota", quota,
	)

	eligible := slices.Clone(teams)
	assignments := make(map[string][]string, len(students))
	counts := make(map[string]int, len(teams))

	for _, student := range students {
		pool := candidatePool(eligible, student.HomeTeam)
		if len(pool) < quota {
			return nil, fmt.Errorf("student %q: %w: %d candidates for quota %d",
				student.Name, types.ErrInsufficientCandidates, len(pool), quota)
		}

		drawn := drawTeams(rng, pool, quota)
		assignments[student.Name] = drawn
		for _, team := range drawn {
			counts[team]++
		}

		// Prune saturated teams, but never below the quota itself.
		if len(eligible) > quota {
			before := len(eligible)
			eligible = slices.DeleteFunc(eligible, func(team string) bool {
				return counts[team] >= maxReviewers
			})
			if removed := before - len(eligible); removed > 0 {
				rd.logger.Debug("teams reached reviewer cap",
					"removed", removed,
					"eligible", len(eligible),
					"cap", maxReviewers,
				)
			}
		}
	}

	return assignments, nil
}

// ReviewerCap returns the soft ceiling on reviewers per team:
// ceil(students * quota / teams).
//
// The formula spreads the total number of review slots evenly across teams.
// Home-team exclusions are deliberately ignored: they make exact per-team
// targets unattainable anyway, so the cap stays a soft global target and
// greedy removal is allowed to overflow it for the last students processed.
//
// Parameters:
//   - students: Number of students being assigned
//   - teams: Number of reviewable teams (must be positive)
//   - quota: Teams reviewed per student
//
// Returns:
//   - int: Soft maximum reviewers per team
func ReviewerCap(students, teams, quota int) int {
	if teams < 1 {
		return 0
	}

	return (students*quota + teams - 1) / teams
}

// candidatePool returns the eligible teams a student may draw from. When the
// student has no home team this is the eligible slice itself; callers must
// not mutate the result.
func candidatePool(eligible []string, homeTeam string) []string {
	if homeTeam == "" {
		return eligible
	}

	pool := make([]string, 0, len(eligible))
	for _, team := range eligible {
		if team != homeTeam {
			pool = append(pool, team)
		}
	}

	return pool
}

// drawTeams samples quota distinct teams uniformly without replacement.
func drawTeams(rng *rand.Rand, pool []string, quota int) []string {
	drawn := make([]string, quota)
	for i, j := range rng.Perm(len(pool))[:quota] {
		drawn[i] = pool[j]
	}

	return drawn
}

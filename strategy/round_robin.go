package strategy

import (
	"fmt"
	"math/rand/v2"

	"github.com/STAT540-UBC/crossmark/types"
)

// RoundRobin implements deterministic rotating review assignment.
type RoundRobin struct{}

var _ types.AssignmentStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy walks the team list in a fixed rotation, advancing by the
// quota for each student, so reviewer counts stay within one of each other
// on home-free rosters. It ignores the random source entirely: identical
// inputs always produce the identical plan, with no retries. Use it when
// repeatability matters more than shuffle fairness.
//
// Returns:
//   - *RoundRobin: Initialized round-robin strategy
//
// Example:
//
//	strat := strategy.NewRoundRobin()
//	planner, err := crossmark.NewPlanner(&cfg, src, crossmark.WithStrategy(strat))
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Assign calculates review assignments using a fixed rotation.
//
// The algorithm:
//  1. Keep a rotation offset across students, starting at zero
//  2. Each student takes quota consecutive teams (wrapping) from the team
//     list minus their home team
//  3. Advance the offset by quota
//
// Consecutive wrapped picks are distinct whenever quota does not exceed the
// student's candidate count, which is exactly the quota precondition, so this
// strategy never needs the Planner's retry loop.
//
// Parameters:
//   - rng: Ignored; the strategy is fully deterministic
//   - teams: Reviewable team names
//   - students: Students in processing order
//   - quota: Number of distinct teams each student reviews
//
// Returns:
//   - map[string][]string: Map from student name to assigned team names
//   - error: types.ErrNoTeams, types.ErrInvalidQuota, or a wrapped
//     types.ErrInsufficientCandidates when a home-team exclusion leaves too
//     few candidates
func (rr *RoundRobin) Assign(_ *rand.Rand, teams []string, students []types.Student, quota int) (map[string][]string, error) {
	if len(teams) == 0 {
		return nil, types.ErrNoTeams
	}
	if quota < 1 {
		return nil, fmt.Errorf("%w: %d", types.ErrInvalidQuota, quota)
	}

	assignments := make(map[string][]string, len(students))
	offset := 0

	for _, student := range students {
		pool := candidatePool(teams, student.HomeTeam)
		if len(pool) < quota {
			return nil, fmt.Errorf("student %q: %w: %d candidates for quota %d",
				student.Name, types.ErrInsufficientCandidates, len(pool), quota)
		}

		picks := make([]string, quota)
		for i := range quota {
			picks[i] = pool[(offset+i)%len(pool)]
		}
		offset += quota

		assignments[student.Name] = picks
	}

	return assignments, nil
}

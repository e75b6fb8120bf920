package types

import "math/rand/v2"

// AssignmentStrategy calculates review-team assignments for a set of students.
//
// Strategies implement different assignment algorithms:
//   - RandomDraw: Uniform random draws with a soft reviewer cap per team
//   - RoundRobin: Deterministic rotation (no randomness)
//   - Custom: User-defined algorithms
//
// Strategy implementations should:
//   - Be deterministic given the same rng state (same seed → same output)
//   - Exclude each student's home team from their own assignment
//   - Return quota distinct teams per student
//   - Be stateless (no side effects between calls)
type AssignmentStrategy interface {
	// Assign calculates review assignments for the given students.
	//
	// Deterministic strategies may ignore rng entirely; randomized
	// strategies must draw only from it so that a seeded run is
	// reproducible.
	//
	// Parameters:
	//   - rng: Random source for this attempt (never nil)
	//   - teams: Reviewable team names
	//   - students: Students to assign, in processing order
	//   - quota: Number of distinct teams each student reviews
	//
	// Returns:
	//   - map[string][]string: Map from student name to assigned team names
	//   - error: Assignment error (e.g. wrapping ErrInsufficientCandidates)
	Assign(rng *rand.Rand, teams []string, students []Student, quota int) (map[string][]string, error)
}

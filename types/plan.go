package types

// ReviewAssignment pairs one student with the teams they will review.
//
// Teams preserves draw order and always holds exactly the run's quota of
// distinct team names, none of which is the student's home team.
type ReviewAssignment struct {
	Student string   `json:"student"`
	Teams   []string `json:"teams"`
}

// Plan is a completed peer-review assignment.
//
// A Plan is immutable once returned by the Planner. Assignments follows the
// roster's student processing order; ReviewerCounts is the final Team →
// reviewer count mapping over the whole plan.
type Plan struct {
	// Quota is the number of teams each student reviews.
	Quota int `json:"quota"`

	// Cap is the soft ceiling on reviewers per team used during assignment.
	// Greedy removal only prunes saturated teams while enough eligible teams
	// remain, so final counts may exceed Cap for the last students processed.
	Cap int `json:"cap"`

	// Seed is the base random seed the plan was produced from. Re-running
	// with the same roster, quota and seed reproduces the plan exactly.
	Seed uint64 `json:"seed"`

	// Attempts is the number of assignment attempts consumed, counting the
	// successful one. Greater than 1 means earlier draws saturated the
	// eligible pool and were retried with fresh randomness.
	Attempts int `json:"attempts"`

	Assignments    []ReviewAssignment `json:"assignments"`
	ReviewerCounts map[string]int     `json:"reviewerCounts"`
}

// TeamsFor returns the teams assigned to the named student, or nil when the
// student is not part of the plan.
func (p *Plan) TeamsFor(student string) []string {
	for _, a := range p.Assignments {
		if a.Student == student {
			return a.Teams
		}
	}

	return nil
}

// TotalReviews returns the total number of review slots in the plan, i.e. the
// sum of ReviewerCounts over all teams. For a complete plan this equals
// Quota * len(Assignments).
func (p *Plan) TotalReviews() int {
	total := 0
	for _, n := range p.ReviewerCounts {
		total += n
	}

	return total
}

// CountReviewers derives the Team → reviewer count mapping from a raw
// student → teams assignment map.
//
// Parameters:
//   - assignments: Map from student name to assigned team names
//
// Returns:
//   - map[string]int: Reviewer count per team name
func CountReviewers(assignments map[string][]string) map[string]int {
	counts := make(map[string]int)
	for _, teams := range assignments {
		for _, team := range teams {
			counts[team]++
		}
	}

	return counts
}

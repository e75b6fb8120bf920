package source

import (
	"context"
	"sync"

	"github.com/STAT540-UBC/crossmark/types"
)

// Static implements a roster source with a fixed in-memory roster.
type Static struct {
	mu     sync.RWMutex
	roster types.Roster
}

var _ types.RosterSource = (*Static)(nil)

// NewStatic creates a new static roster source.
//
// The source returns a fixed roster that never changes on its own.
// Useful for testing and scenarios where the roster is known at startup.
//
// Parameters:
//   - roster: Fixed roster of teams and students
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	roster := types.Roster{
//	    Teams: []types.Team{
//	        {Name: "team1", Members: []string{"alice", "bob"}},
//	        {Name: "team2", Members: []string{"carol", "dave"}},
//	        {Name: "team3", Members: []string{"erin", "frank"}},
//	    },
//	}
//	src := source.NewStatic(roster)
//	planner, err := crossmark.NewPlanner(&cfg, src)
//	if err != nil { /* handle */ }
func NewStatic(roster types.Roster) *Static {
	return &Static{
		roster: roster,
	}
}

// LoadRoster returns the static roster.
//
// Returns:
//   - types.Roster: A copy of the fixed roster
//   - error: Always nil (never fails)
func (s *Static) LoadRoster(_ context.Context) (types.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyRoster(s.roster), nil
}

// Update replaces the roster.
//
// This allows the static source to simulate roster changes between planning
// runs, which is useful for testing enrollment churn.
//
// Parameters:
//   - roster: New roster of teams and students
//
// Example:
//
//	src := source.NewStatic(initialRoster)
//	// Later: a late-enrolling student joins
//	src.Update(expandedRoster)
func (s *Static) Update(roster types.Roster) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = copyRoster(roster)
}

func copyRoster(roster types.Roster) types.Roster {
	result := types.Roster{
		Teams:    make([]types.Team, len(roster.Teams)),
		Students: make([]types.Student, len(roster.Students)),
	}
	copy(result.Teams, roster.Teams)
	copy(result.Students, roster.Students)

	return result
}

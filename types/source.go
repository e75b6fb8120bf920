package types

import "context"

// RosterSource provides the roster for an assignment run.
//
// Implementations can load rosters from various backends:
//   - Static: fixed in-memory roster (literals, tests)
//   - File: YAML roster files
//   - Custom: any roster discovery logic (e.g. an LMS export)
//
// The Planner calls LoadRoster once at the start of each Plan call.
type RosterSource interface {
	// LoadRoster returns the roster to assign.
	//
	// Implementations should return consistent results for the same backend
	// state and handle context cancellation gracefully.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - Roster: The loaded roster
	//   - error: Load error (nil on success)
	LoadRoster(ctx context.Context) (Roster, error)
}

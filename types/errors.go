package types

import "errors"

// Sentinel errors for the crossmark library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components should use these sentinel errors for known
// error conditions and wrap them with context using
// fmt.Errorf("...: %w", err).

// Assignment errors - returned by strategies during an attempt.
var (
	// ErrInsufficientCandidates is returned when a student's candidate pool
	// (eligible teams minus their home team) is smaller than the quota.
	//
	// This is a recoverable condition: random sampling order decides which
	// teams saturate first, so the documented recovery is to retry the whole
	// assignment with fresh randomness. The Planner does this automatically.
	ErrInsufficientCandidates = errors.New("insufficient candidate teams")

	// ErrNoTeams is returned when a roster or assignment call has no teams.
	ErrNoTeams = errors.New("no teams in roster")

	// ErrInvalidQuota is returned when the teams-per-student quota is not
	// satisfiable: below one, or at least the number of teams available to
	// some student after the home-team exclusion.
	ErrInvalidQuota = errors.New("invalid teams-per-student quota")
)

// Roster errors - returned by Roster.Validate and roster sources.
var (
	// ErrEmptyName is returned when a team or student has an empty name.
	ErrEmptyName = errors.New("empty name in roster")

	// ErrDuplicateName is returned when a team or student name occurs twice.
	ErrDuplicateName = errors.New("duplicate name in roster")

	// ErrUnknownTeam is returned when a student references a home team that
	// is not part of the roster.
	ErrUnknownTeam = errors.New("unknown home team")
)

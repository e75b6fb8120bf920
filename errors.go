package crossmark

import (
	"errors"

	"github.com/STAT540-UBC/crossmark/types"
)

// Sentinel errors returned by the Planner.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRosterSourceRequired is returned when the roster source is nil.
	ErrRosterSourceRequired = errors.New("roster source is required")

	// ErrAssignmentFailed is returned when no complete assignment could be
	// drawn within the configured attempt budget.
	ErrAssignmentFailed = errors.New("assignment failed")
)

// Draw-level sentinels re-exported from the types package, so callers can
// match planner errors without importing a second package.
var (
	ErrInsufficientCandidates = types.ErrInsufficientCandidates
	ErrInvalidQuota           = types.ErrInvalidQuota
	ErrNoTeams                = types.ErrNoTeams
)

package crossmark

import "github.com/STAT540-UBC/crossmark/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `crossmark`
// package, while still providing a convenient `crossmark.Roster`,
// `crossmark.Logger`, etc. for users.
type (
	Team             = types.Team
	Student          = types.Student
	Roster           = types.Roster
	Plan             = types.Plan
	ReviewAssignment = types.ReviewAssignment
)

// Re-export interfaces from the types package for convenience.
type (
	AssignmentStrategy = types.AssignmentStrategy
	RosterSource       = types.RosterSource
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
)

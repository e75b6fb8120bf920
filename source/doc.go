// Package source provides built-in roster source implementations.
//
// Roster sources load the teams and students that a planning run draws from.
// The package includes:
//
//   - Static: Fixed in-memory roster
//   - File: Roster parsed from a YAML file
//
// Custom sources can be implemented by satisfying the types.RosterSource interface.
package source

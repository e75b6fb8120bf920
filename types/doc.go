// Package types provides core type definitions and interfaces for the crossmark library.
//
// This package contains shared types that are used across multiple packages in
// crossmark. Keeping them in a separate package avoids import cycles between
// the root crossmark package and the strategy, source and internal packages.
//
// Key types:
//   - Roster: Teams and students for one assignment run
//   - Student: A reviewer, optionally affiliated with a home team
//   - Plan: A completed peer-review assignment
//   - AssignmentStrategy: Algorithm interface for drawing review teams
//   - RosterSource: Roster discovery interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types

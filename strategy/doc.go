// Package strategy provides built-in assignment strategy implementations.
//
// Assignment strategies determine which teams each student reviews. The
// package includes two built-in strategies:
//
//   - RandomDraw: Uniform random draws with a soft reviewer cap per team
//     (the default, and the strategy the reviewer cap semantics are built for)
//   - RoundRobin: Deterministic rotation with no randomness
//
// # Strategy Selection Guide
//
// RandomDraw:
//   - Use for fair, unpredictable review pairings (the normal case)
//   - Prunes teams at the reviewer cap to balance load; final counts may
//     overflow the cap for the last students processed
//   - Unlucky draws can strand a student below quota; the Planner retries
//     with fresh randomness automatically
//
// RoundRobin:
//   - Use when identical re-runs matter more than shuffle fairness
//   - Rotation keeps reviewer counts within one on home-free rosters
//   - Never requires retries
//
// Custom strategies can be implemented by satisfying the
// types.AssignmentStrategy interface.
package strategy

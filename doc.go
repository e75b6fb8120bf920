// Package crossmark provides randomized cross-team review assignment for
// course rosters.
//
// Crossmark assigns every student a fixed number of other teams to review,
// never their own, while a soft reviewer cap keeps any one team from
// accumulating more than its share of reviewers. Draws are seeded, so a
// published plan can be reproduced from the seed value in its logs.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import (
//	    "github.com/STAT540-UBC/crossmark"
//	    "github.com/STAT540-UBC/crossmark/report"
//	    "github.com/STAT540-UBC/crossmark/source"
//	)
//
//	cfg := crossmark.Config{TeamsPerStudent: 2}
//	src := source.NewFile("roster.yaml")
//
//	planner, err := crossmark.NewPlanner(&cfg, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plan, err := planner.Plan(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = report.Write(os.Stdout, plan)
//
// # Key Features
//
//   - Home Team Exclusion: Students never review their own team
//   - Soft Reviewer Cap: Teams leave the draw pool once they reach a ceiling-derived reviewer count
//   - Seeded Draws: The same seed, roster, and quota reproduce the same plan
//   - Automatic Retry: A draw that runs out of candidate teams restarts with fresh randomness
//
// # Assignment Strategies
//
// RandomDraw is the default strategy and mirrors how marking duties are
// usually raffled. RoundRobin is a deterministic alternative for dry runs:
//
//	import "github.com/STAT540-UBC/crossmark/strategy"
//
//	planner, err := crossmark.NewPlanner(&cfg, src,
//	    crossmark.WithStrategy(strategy.NewRoundRobin()),
//	)
//
// See the examples/ directory for complete working examples.
package crossmark

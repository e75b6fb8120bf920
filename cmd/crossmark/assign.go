package main

import (
	"context"
	"os"

	"github.com/STAT540-UBC/crossmark"
	"github.com/STAT540-UBC/crossmark/report"
	"github.com/STAT540-UBC/crossmark/source"
	"github.com/STAT540-UBC/crossmark/strategy"
)

const assignLongDesc = `
Draw a review plan for a roster and print it as console tables.

Every student is assigned distinct teams other than their own, balanced
so no team collects many more reviewers than the rest. Identical seeds
yield identical plans:

  crossmark assign -r roster.yaml -s winter-2026

Draws that run out of candidate teams are retried automatically with
fresh randomness, up to --attempts times.
`

type cmdAssign struct {
	Roster   string `long:"roster" short:"r" required:"true" description:"Path of the roster YAML file"`
	Quota    int    `long:"quota" short:"q" default:"2" description:"Number of teams each student reviews"`
	Seed     string `long:"seed" short:"s" description:"Seed phrase for a reproducible draw. Random when empty"`
	Attempts int    `long:"attempts" short:"a" default:"10" description:"Draw attempts before giving up"`
	Strategy string `long:"strategy" short:"t" choice:"random" choice:"round-robin" default:"random" description:"Draw strategy"`
}

func (cmd *cmdAssign) Execute([]string) error {
	log := newLogger()

	cfg := &crossmark.Config{
		TeamsPerStudent: cmd.Quota,
		MaxAttempts:     cmd.Attempts,
		Seed:            cmd.Seed,
	}

	opts := []crossmark.Option{crossmark.WithLogger(log)}
	if cmd.Strategy == "round-robin" {
		opts = append(opts, crossmark.WithStrategy(strategy.NewRoundRobin()))
	}

	planner, err := crossmark.NewPlanner(cfg, source.NewFile(cmd.Roster), opts...)
	if err != nil {
		return err
	}

	plan, err := planner.Plan(context.Background())
	if err != nil {
		return err
	}

	return report.Write(os.Stdout, plan)
}

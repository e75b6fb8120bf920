// crossmark is a command line tool for drawing peer review assignments
// from a class roster.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/STAT540-UBC/crossmark/internal/logging"
)

var baseCfg = new(struct {
	Verbose bool `long:"verbose" short:"v" description:"Enable debug logging"`
})

// newLogger builds the structured logger shared by all commands. Output
// goes to stderr so plan tables on stdout stay clean for redirection.
func newLogger() *logging.SlogLogger {
	level := slog.LevelInfo
	if baseCfg.Verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return logging.NewSlog(slog.New(handler))
}

func mustAddCmd(cmd *flags.Command, name, short, long string, cfg any) *flags.Command {
	cmd, err := cmd.AddCommand(name, short, long, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to add %s command: %v\n", name, err)
		os.Exit(1)
	}

	return cmd
}

func main() {
	parser := flags.NewParser(baseCfg, flags.Default)
	parser.LongDescription = `crossmark draws which peer teams every student reviews.

Rosters are YAML files listing the course teams and any students outside
them. Scaffold one with 'crossmark roster init', fill in the real names,
then run 'crossmark assign' to draw and print the review plan.
`

	mustAddCmd(parser.Command, "assign", "Draw a review plan", assignLongDesc, &cmdAssign{})

	cmdRoster := mustAddCmd(parser.Command, "roster", "Work with roster files", "", &struct{}{})
	mustAddCmd(cmdRoster, "init", "Scaffold a roster file", rosterInitLongDesc, &cmdRosterInit{})

	if _, err := parser.Parse(); err != nil {
		var flagErr *flags.Error
		if !errors.As(err, &flagErr) {
			// Command execution errors are not printed by go-flags.
			fmt.Fprintf(os.Stderr, "crossmark: %v\n", err)
		}
		os.Exit(1)
	}
}

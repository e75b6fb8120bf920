// Package report renders assignment plans as plain-text console tables.
package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/STAT540-UBC/crossmark/types"
)

// Write renders the full console report for a plan: the per-team reviewer
// summary followed by the assignment table.
//
// Parameters:
//   - w: Destination writer
//   - plan: The plan to render
//
// Returns:
//   - error: Non-nil when the writer fails
//
// Example:
//
//	plan, err := planner.Plan(ctx)
//	if err != nil { /* handle */ }
//	_ = report.Write(os.Stdout, plan)
func Write(w io.Writer, plan *types.Plan) error {
	if err := WriteSummary(w, plan); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	return WriteAssignments(w, plan)
}

// WriteSummary renders reviewer counts per team, sorted by team name.
func WriteSummary(w io.Writer, plan *types.Plan) error {
	if _, err := fmt.Fprintln(w, "Students assigned per team:"); err != nil {
		return err
	}

	teams := make([]string, 0, len(plan.ReviewerCounts))
	for team := range plan.ReviewerCounts {
		teams = append(teams, team)
	}
	slices.Sort(teams)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Team", "Reviewers"})
	for _, team := range teams {
		table.Append([]string{team, strconv.Itoa(plan.ReviewerCounts[team])})
	}

	return table.Render()
}

// WriteAssignments renders one row per student with the teams they review.
//
// The table carries one column per quota slot, so a quota of 3 renders
// columns Student, Team 1, Team 2, Team 3. Rows follow plan order, which
// preserves roster order.
func WriteAssignments(w io.Writer, plan *types.Plan) error {
	header := make([]string, 0, plan.Quota+1)
	header = append(header, "Student")
	for i := 1; i <= plan.Quota; i++ {
		header = append(header, "Team "+strconv.Itoa(i))
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)

	for _, assignment := range plan.Assignments {
		row := make([]string, 0, len(header))
		row = append(row, assignment.Student)
		for i := range plan.Quota {
			if i < len(assignment.Teams) {
				row = append(row, assignment.Teams[i])
			} else {
				row = append(row, "")
			}
		}
		table.Append(row)
	}

	return table.Render()
}

package testing

import (
	"fmt"

	"github.com/STAT540-UBC/crossmark/types"
)

// NewFlatRoster builds a roster with teamCount empty teams and studentCount
// standalone students. Students carry no home team, so every team is a
// candidate for every student.
//
// Names follow the team1..teamN and student1..studentN scheme.
func NewFlatRoster(teamCount, studentCount int) types.Roster {
	roster := types.Roster{}
	for i := 1; i <= teamCount; i++ {
		roster.Teams = append(roster.Teams, types.Team{Name: fmt.Sprintf("team%d", i)})
	}
	for i := 1; i <= studentCount; i++ {
		roster.Students = append(roster.Students, types.Student{Name: fmt.Sprintf("student%d", i)})
	}

	return roster
}

// NewGroupedRoster builds a roster whose students are all team members,
// filling teams in contiguous chunks so early students sit in early teams.
// With 6 teams and 29 students, student1..student5 join team1, student6
// through student10 join team2, and so on.
func NewGroupedRoster(teamCount, studentCount int) types.Roster {
	roster := types.Roster{}
	for i := 1; i <= teamCount; i++ {
		roster.Teams = append(roster.Teams, types.Team{Name: fmt.Sprintf("team%d", i)})
	}

	chunk := (studentCount + teamCount - 1) / teamCount
	for i := 1; i <= studentCount; i++ {
		team := &roster.Teams[(i-1)/chunk]
		team.Members = append(team.Members, fmt.Sprintf("student%d", i))
	}

	return roster
}

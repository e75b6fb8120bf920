package strategy

import (
	"testing"

	"github.com/STAT540-UBC/crossmark/types"
	"github.com/stretchr/testify/require"
)

func TestAssign_EdgeCases(t *testing.T) {
	strategies := map[string]types.AssignmentStrategy{
		"RandomDraw": NewRandomDraw(),
		"RoundRobin": NewRoundRobin(),
	}

	for name, strat := range strategies {
		t.Run(name, func(t *testing.T) {
			t.Run("returns empty assignments for zero students", func(t *testing.T) {
				assignments, err := strat.Assign(testRNG(1), teamNames(4), nil, 2)

				require.NoError(t, err)
				require.NotNil(t, assignments)
				require.Empty(t, assignments)
			})

			t.Run("rejects an empty team list", func(t *testing.T) {
				_, err := strat.Assign(testRNG(1), nil, flatStudents(3), 2)

				require.ErrorIs(t, err, types.ErrNoTeams)
			})

			t.Run("rejects a non-positive quota", func(t *testing.T) {
				_, err := strat.Assign(testRNG(1), teamNames(4), flatStudents(3), 0)

				require.ErrorIs(t, err, types.ErrInvalidQuota)
			})

			t.Run("fills a quota equal to the team count when no homes exclude", func(t *testing.T) {
				teams := teamNames(3)

				assignments, err := strat.Assign(testRNG(1), teams, flatStudents(5), 3)

				require.NoError(t, err)
				for student, picks := range assignments {
					require.ElementsMatch(t, teams, picks, "student %s", student)
				}
			})

			t.Run("fails when the home team shrinks the pool below the quota", func(t *testing.T) {
				teams := teamNames(3)
				students := groupedStudents(3, teams)

				_, err := strat.Assign(testRNG(1), teams, students, 3)

				require.ErrorIs(t, err, types.ErrInsufficientCandidates)
			})
		})
	}
}

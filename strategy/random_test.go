package strategy

import (
	"fmt"
	"math/rand/v2"
	"testing"

	crossmarktest "github.com/STAT540-UBC/crossmark/testing"
	"github.com/STAT540-UBC/crossmark/types"
	"github.com/stretchr/testify/require"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// flatStudents returns n students named student1..studentN with no home team.
func flatStudents(n int) []types.Student {
	students := make([]types.Student, n)
	for i := range n {
		students[i] = types.Student{Name: fmt.Sprintf("student%d", i+1)}
	}

	return students
}

// teamNames returns n teams named team1..teamN.
func teamNames(n int) []string {
	teams := make([]string, n)
	for i := range n {
		teams[i] = fmt.Sprintf("team%d", i+1)
	}

	return teams
}

// groupedStudents spreads n students across the given teams as home members,
// round-robin, mirroring a class roster of roughly even team sizes.
func groupedStudents(n int, teams []string) []types.Student {
	students := make([]types.Student, n)
	for i := range n {
		students[i] = types.Student{
			Name:     fmt.Sprintf("student%d", i+1),
			HomeTeam: teams[i%len(teams)],
		}
	}

	return students
}

// completeDraw draws with successive seeds until an attempt completes,
// mirroring how the planner retries saturated draws. It returns the
// assignments and the seed that produced them.
func completeDraw(t *testing.T, strat types.AssignmentStrategy, teams []string, students []types.Student, quota int, from uint64) (map[string][]string, uint64) {
	t.Helper()

	for seed := from; seed < from+20; seed++ {
		assignments, err := strat.Assign(testRNG(seed), teams, students, quota)
		if err != nil {
			require.ErrorIs(t, err, types.ErrInsufficientCandidates)
			continue
		}

		return assignments, seed
	}

	t.Fatalf("no complete draw within 20 seeds of %d", from)

	return nil, 0
}

func TestRandomDraw_Assign(t *testing.T) {
	t.Run("assigns quota distinct teams to every student", func(t *testing.T) {
		// 6 teams, 29 students, quota 2: the classic roster shape.
		strat := NewRandomDraw()
		teams := teamNames(6)
		students := flatStudents(29)

		assignments, _ := completeDraw(t, strat, teams, students, 2, 1)

		require.Len(t, assignments, 29)
		for student, drawn := range assignments {
			require.Len(t, drawn, 2, "student %s", student)
			require.NotEqual(t, drawn[0], drawn[1], "student %s drew the same team twice", student)
			require.Subset(t, teams, drawn)
		}
	})

	t.Run("reviewer counts sum to quota times students", func(t *testing.T) {
		strat := NewRandomDraw(WithDrawLogger(crossmarktest.NewTestLogger(t)))
		assignments, _ := completeDraw(t, strat, teamNames(6), flatStudents(29), 2, 2)

		counts := types.CountReviewers(assignments)
		require.Equal(t, 2*29, sumCounts(counts))
	})

	t.Run("cap overflow is confined to the final eligible pool", func(t *testing.T) {
		// Pruned teams freeze at or below the cap; only the teams still
		// eligible when pruning stops (at most quota of them) can overflow.
		quota := 2
		maxReviewers := ReviewerCap(29, 6, quota)

		for seed := uint64(0); seed < 25; seed++ {
			assignments, err := NewRandomDraw().Assign(testRNG(seed), teamNames(6), flatStudents(29), quota)
			if err != nil {
				require.ErrorIs(t, err, types.ErrInsufficientCandidates)
				continue
			}

			over := 0
			for _, count := range types.CountReviewers(assignments) {
				if count > maxReviewers {
					over++
				}
			}
			require.LessOrEqual(t, over, quota, "seed %d", seed)
		}
	})

	t.Run("never assigns a student their home team", func(t *testing.T) {
		// 6 teams of 4-5 home members each, quota 2.
		teams := teamNames(6)
		students := groupedStudents(29, teams)

		for seed := uint64(0); seed < 50; seed++ {
			assignments, err := NewRandomDraw().Assign(testRNG(seed), teams, students, 2)
			if err != nil {
				require.ErrorIs(t, err, types.ErrInsufficientCandidates)
				continue
			}

			for _, student := range students {
				require.NotContains(t, assignments[student.Name], student.HomeTeam,
					"seed %d: student %s assigned their own team", seed, student.Name)
			}
		}
	})

	t.Run("fixed seed reproduces the assignment", func(t *testing.T) {
		teams := teamNames(6)
		students := groupedStudents(27, teams)

		first, seed := completeDraw(t, NewRandomDraw(), teams, students, 2, 42)

		second, err := NewRandomDraw().Assign(testRNG(seed), teams, students, 2)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("different seeds shuffle differently", func(t *testing.T) {
		teams := teamNames(6)
		students := flatStudents(29)

		first, seed := completeDraw(t, NewRandomDraw(), teams, students, 2, 1)
		second, _ := completeDraw(t, NewRandomDraw(), teams, students, 2, seed+1)

		require.NotEqual(t, first, second)
	})

	t.Run("reports insufficient candidates when the pool is too small", func(t *testing.T) {
		students := []types.Student{{Name: "student1", HomeTeam: "team1"}}

		_, err := NewRandomDraw().Assign(testRNG(1), teamNames(2), students, 2)

		require.ErrorIs(t, err, types.ErrInsufficientCandidates)
		require.ErrorContains(t, err, "student1")
	})

	t.Run("strands a student when pruning leaves only their home team", func(t *testing.T) {
		// Two teams, quota one, everyone homed in team1: the first two
		// students are forced onto team2, which hits the cap of two and
		// is pruned, leaving student3 with an empty pool. No draw order
		// avoids this, so the error is deterministic.
		students := []types.Student{
			{Name: "student1", HomeTeam: "team1"},
			{Name: "student2", HomeTeam: "team1"},
			{Name: "student3", HomeTeam: "team1"},
		}

		_, err := NewRandomDraw().Assign(testRNG(1), teamNames(2), students, 1)

		require.ErrorIs(t, err, types.ErrInsufficientCandidates)
		require.ErrorContains(t, err, "student3")
	})
}

func TestReviewerCap(t *testing.T) {
	tests := []struct {
		students, teams, quota int
		want                   int
	}{
		{students: 29, teams: 6, quota: 2, want: 10}, // ceil(58/6)
		{students: 30, teams: 6, quota: 2, want: 10}, // exact division
		{students: 24, teams: 6, quota: 2, want: 8},
		{students: 5, teams: 4, quota: 3, want: 4}, // ceil(15/4)
		{students: 0, teams: 6, quota: 2, want: 0},
		{students: 10, teams: 0, quota: 2, want: 0},
	}

	for _, tc := range tests {
		got := ReviewerCap(tc.students, tc.teams, tc.quota)
		require.Equal(t, tc.want, got, "ReviewerCap(%d, %d, %d)", tc.students, tc.teams, tc.quota)
	}
}

func sumCounts(counts map[string]int) int {
	total := 0
	for _, n := range counts {
		total += n
	}

	return total
}

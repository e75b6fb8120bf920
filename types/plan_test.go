package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlan_TeamsFor(t *testing.T) {
	plan := &Plan{
		Assignments: []ReviewAssignment{
			{Student: "student1", Teams: []string{"team2", "team3"}},
			{Student: "student2", Teams: []string{"team1", "team3"}},
		},
	}

	require.Equal(t, []string{"team2", "team3"}, plan.TeamsFor("student1"))
	require.Nil(t, plan.TeamsFor("student9"))
}

func TestPlan_TotalReviews(t *testing.T) {
	plan := &Plan{
		ReviewerCounts: map[string]int{"team1": 3, "team2": 2, "team3": 1},
	}

	require.Equal(t, 6, plan.TotalReviews())
}

func TestCountReviewers(t *testing.T) {
	assignments := map[string][]string{
		"student1": {"team2", "team3"},
		"student2": {"team3", "team1"},
		"student3": {"team3", "team2"},
	}

	counts := CountReviewers(assignments)

	require.Equal(t, map[string]int{"team1": 1, "team2": 2, "team3": 3}, counts)
}

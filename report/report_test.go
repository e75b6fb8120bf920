package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/STAT540-UBC/crossmark/types"
	"github.com/stretchr/testify/require"
)

func samplePlan() *types.Plan {
	return &types.Plan{
		Quota: 2,
		Cap:   2,
		Assignments: []types.ReviewAssignment{
			{Student: "alice", Teams: []string{"team2", "team3"}},
			{Student: "bob", Teams: []string{"team1", "team3"}},
			{Student: "carol", Teams: []string{"team1", "team2"}},
		},
		ReviewerCounts: map[string]int{
			"team1": 2,
			"team2": 2,
			"team3": 2,
		},
	}
}

func TestWrite(t *testing.T) {
	t.Run("renders summary before assignments", func(t *testing.T) {
		buf := &bytes.Buffer{}

		require.NoError(t, Write(buf, samplePlan()))

		out := buf.String()
		require.Contains(t, out, "Students assigned per team:")
		require.Less(t, strings.Index(out, "Students assigned per team:"), strings.Index(out, "alice"))
	})

	t.Run("handles an empty plan", func(t *testing.T) {
		buf := &bytes.Buffer{}

		require.NoError(t, Write(buf, &types.Plan{Quota: 2, ReviewerCounts: map[string]int{}}))
		require.Contains(t, buf.String(), "Students assigned per team:")
	})
}

func TestWriteSummary(t *testing.T) {
	t.Run("lists teams sorted by name", func(t *testing.T) {
		buf := &bytes.Buffer{}
		plan := &types.Plan{
			Quota: 2,
			ReviewerCounts: map[string]int{
				"team3": 9,
				"team1": 10,
				"team2": 8,
			},
		}

		require.NoError(t, WriteSummary(buf, plan))

		out := buf.String()
		require.Less(t, strings.Index(out, "team1"), strings.Index(out, "team2"))
		require.Less(t, strings.Index(out, "team2"), strings.Index(out, "team3"))
		require.Contains(t, out, "10")
	})
}

func TestWriteAssignments(t *testing.T) {
	t.Run("renders rows in plan order", func(t *testing.T) {
		buf := &bytes.Buffer{}

		require.NoError(t, WriteAssignments(buf, samplePlan()))

		out := buf.String()
		require.Less(t, strings.Index(out, "alice"), strings.Index(out, "bob"))
		require.Less(t, strings.Index(out, "bob"), strings.Index(out, "carol"))
	})

	t.Run("carries one column per quota slot", func(t *testing.T) {
		buf := &bytes.Buffer{}
		plan := &types.Plan{
			Quota: 3,
			Assignments: []types.ReviewAssignment{
				{Student: "dave", Teams: []string{"team1", "team2", "team4"}},
			},
		}

		require.NoError(t, WriteAssignments(buf, plan))

		out := strings.ToUpper(buf.String())
		require.Contains(t, out, "TEAM 1")
		require.Contains(t, out, "TEAM 3")
		require.Contains(t, out, "DAVE")
	})

	t.Run("pads rows with fewer teams than the quota", func(t *testing.T) {
		buf := &bytes.Buffer{}
		plan := &types.Plan{
			Quota: 2,
			Assignments: []types.ReviewAssignment{
				{Student: "erin", Teams: []string{"team1"}},
			},
		}

		require.NotPanics(t, func() {
			require.NoError(t, WriteAssignments(buf, plan))
		})
		require.Contains(t, buf.String(), "erin")
	})
}

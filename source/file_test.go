package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/STAT540-UBC/crossmark/types"
	"github.com/stretchr/testify/require"
)

func writeRosterFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFile_LoadRoster(t *testing.T) {
	t.Run("parses structured team entries", func(t *testing.T) {
		path := writeRosterFile(t, `
teams:
  - name: team1
    members: [alice, bob]
  - name: team2
    members:
      - carol
      - dave
`)

		roster, err := NewFile(path).LoadRoster(context.Background())

		require.NoError(t, err)
		require.Equal(t, []types.Team{
			{Name: "team1", Members: []string{"alice", "bob"}},
			{Name: "team2", Members: []string{"carol", "dave"}},
		}, roster.Teams)
		require.Empty(t, roster.Students)
	})

	t.Run("parses scalar team and student entries", func(t *testing.T) {
		path := writeRosterFile(t, `
teams:
  - team1
  - team2
  - team3
students:
  - yuki
  - name: zoe
    team: team1
`)

		roster, err := NewFile(path).LoadRoster(context.Background())

		require.NoError(t, err)
		require.Equal(t, []string{"team1", "team2", "team3"}, roster.TeamNames())
		require.Equal(t, []types.Student{
			{Name: "yuki"},
			{Name: "zoe", HomeTeam: "team1"},
		}, roster.Students)
	})

	t.Run("mixes member lists with extra students", func(t *testing.T) {
		path := writeRosterFile(t, `
teams:
  - name: team1
    members: [alice]
  - team2
students:
  - name: bob
    team: team2
`)

		roster, err := NewFile(path).LoadRoster(context.Background())

		require.NoError(t, err)
		require.Equal(t, []types.Student{
			{Name: "alice", HomeTeam: "team1"},
			{Name: "bob", HomeTeam: "team2"},
		}, roster.AllStudents())
	})

	t.Run("fails when the file does not exist", func(t *testing.T) {
		src := NewFile(filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := src.LoadRoster(context.Background())

		require.Error(t, err)
		require.ErrorContains(t, err, "read roster file")
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		path := writeRosterFile(t, "teams: [unbalanced")

		_, err := NewFile(path).LoadRoster(context.Background())

		require.Error(t, err)
		require.ErrorContains(t, err, "parse roster file")
	})

	t.Run("fails when a team entry is neither string nor mapping", func(t *testing.T) {
		path := writeRosterFile(t, `
teams:
  - [nested, sequence]
`)

		_, err := NewFile(path).LoadRoster(context.Background())

		require.Error(t, err)
	})
}

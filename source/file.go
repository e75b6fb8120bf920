package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/STAT540-UBC/crossmark/types"
)

// File implements a roster source backed by a YAML file.
type File struct {
	path string
}

var _ types.RosterSource = (*File)(nil)

// NewFile creates a roster source that reads the roster from a YAML file.
//
// The file is re-read on every LoadRoster call, so roster edits between
// planning runs are picked up without restarting.
//
// The file holds a teams list and an optional students list. Team entries
// are either a bare name or a mapping with a member list; student entries
// are either a bare name or a mapping with an optional home team:
//
//	teams:
//	  - name: team1
//	    members: [alice, bob]
//	  - team2
//	students:
//	  - name: zoe
//	    team: team1
//	  - yuki
//
// Parameters:
//   - path: Path to the YAML roster file
//
// Returns:
//   - *File: Initialized file source
func NewFile(path string) *File {
	return &File{
		path: path,
	}
}

// LoadRoster reads and parses the roster file.
//
// Returns:
//   - types.Roster: The parsed roster
//   - error: Non-nil when the file cannot be read or parsed
func (f *File) LoadRoster(_ context.Context) (types.Roster, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return types.Roster{}, fmt.Errorf("read roster file: %w", err)
	}

	roster, err := parseRoster(data)
	if err != nil {
		return types.Roster{}, fmt.Errorf("parse roster file %s: %w", f.path, err)
	}

	return roster, nil
}

func parseRoster(data []byte) (types.Roster, error) {
	var doc rosterFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.Roster{}, err
	}

	roster := types.Roster{
		Teams:    make([]types.Team, len(doc.Teams)),
		Students: make([]types.Student, len(doc.Students)),
	}
	for i, team := range doc.Teams {
		roster.Teams[i] = types.Team(team)
	}
	for i, student := range doc.Students {
		roster.Students[i] = types.Student(student)
	}

	return roster, nil
}

type rosterFile struct {
	Teams    []teamEntry    `yaml:"teams"`
	Students []studentEntry `yaml:"students"`
}

// teamEntry maps a bare YAML string directly to a team name, or a YAML
// mapping to a team with an explicit member list.
type teamEntry types.Team

func (e *teamEntry) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		e.Name = name
		return nil
	}

	type plain teamEntry

	return unmarshal((*plain)(e))
}

// studentEntry maps a bare YAML string directly to a student name, or a
// YAML mapping to a student with an optional home team.
type studentEntry types.Student

func (e *studentEntry) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		e.Name = name
		return nil
	}

	type plain studentEntry

	return unmarshal((*plain)(e))
}

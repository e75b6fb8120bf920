package types

import (
	"fmt"
	"strings"
)

// Team is a reviewable group identified by name.
//
// Members lists the students whose home team this is. Members never review
// their own team. A team with no members is still reviewable; it simply has
// no home students to exclude.
type Team struct {
	// Name uniquely identifies the team within a roster.
	Name string `yaml:"name" json:"name"`

	// Members are the names of students belonging to this team.
	Members []string `yaml:"members,omitempty" json:"members,omitempty"`
}

// Student is a reviewer, optionally affiliated with a home team.
type Student struct {
	// Name uniquely identifies the student within a roster.
	Name string `yaml:"name" json:"name"`

	// HomeTeam is the name of the student's own team, or empty when the
	// student is unaffiliated. A student's home team is always excluded
	// from their review assignment.
	HomeTeam string `yaml:"team,omitempty" json:"team,omitempty"`
}

// Roster bundles the teams and students for one assignment run.
//
// Students may be enrolled two ways: as Members of a Team (giving them that
// home team) or in the flat Students list (no home team). Both forms can be
// mixed in a single roster.
type Roster struct {
	Teams    []Team    `yaml:"teams" json:"teams"`
	Students []Student `yaml:"students,omitempty" json:"students,omitempty"`
}

// TeamNames returns the roster's team names in declaration order.
//
// Returns:
//   - []string: Team names, one per roster team
func (r Roster) TeamNames() []string {
	names := make([]string, len(r.Teams))
	for i, team := range r.Teams {
		names[i] = team.Name
	}

	return names
}

// AllStudents returns every enrolled student in processing order: team members
// first (in team declaration order, carrying their home team), then the flat
// Students list.
//
// Assignment iteration follows this order, so it also fixes the row order of
// the printed report.
//
// Returns:
//   - []Student: All students with home-team affiliation resolved
func (r Roster) AllStudents() []Student {
	students := make([]Student, 0, len(r.Students))
	for _, team := range r.Teams {
		for _, member := range team.Members {
			students = append(students, Student{Name: member, HomeTeam: team.Name})
		}
	}
	students = append(students, r.Students...)

	return students
}

// Validate checks roster integrity and returns an error for the first
// violation found.
//
// Rules:
//   - At least one team, and no empty team names
//   - Team names are unique
//   - No empty student names
//   - Student names are unique across members and the flat list
//   - A flat-list student's HomeTeam, when set, must name a roster team
//
// Returns:
//   - error: Validation error wrapping a types sentinel, nil if valid
func (r Roster) Validate() error {
	if len(r.Teams) == 0 {
		return ErrNoTeams
	}

	teams := make(map[string]struct{}, len(r.Teams))
	for _, team := range r.Teams {
		name := strings.TrimSpace(team.Name)
		if name == "" {
			return fmt.Errorf("%w: team with empty name", ErrEmptyName)
		}
		if _, ok := teams[name]; ok {
			return fmt.Errorf("%w: team %q", ErrDuplicateName, name)
		}
		teams[name] = struct{}{}
	}

	students := make(map[string]struct{})
	for _, student := range r.AllStudents() {
		name := strings.TrimSpace(student.Name)
		if name == "" {
			return fmt.Errorf("%w: student with empty name", ErrEmptyName)
		}
		if _, ok := students[name]; ok {
			return fmt.Errorf("%w: student %q", ErrDuplicateName, name)
		}
		students[name] = struct{}{}

		if student.HomeTeam != "" {
			if _, ok := teams[student.HomeTeam]; !ok {
				return fmt.Errorf("%w: student %q references team %q", ErrUnknownTeam, name, student.HomeTeam)
			}
		}
	}

	return nil
}

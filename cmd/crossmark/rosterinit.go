package main

import (
	"fmt"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"gopkg.in/yaml.v3"
)

const rosterInitLongDesc = `
Write a starter roster file with generated team and member names.

The generated names are placeholders. Replace them with the real class
roster before drawing assignments:

  crossmark roster init -o roster.yaml -T 6 -m 5
`

type cmdRosterInit struct {
	Output   string `long:"output" short:"o" default:"roster.yaml" description:"Path of the roster file to write"`
	Teams    int    `long:"teams" short:"T" default:"6" description:"Number of teams to scaffold"`
	Members  int    `long:"members" short:"m" default:"4" description:"Member placeholders per team"`
	Students int    `long:"students" short:"S" default:"0" description:"Placeholders for students outside any team"`
	Force    bool   `long:"force" short:"f" description:"Overwrite an existing file"`
}

// rosterDoc mirrors the roster file schema read by source.NewFile.
type rosterDoc struct {
	Teams    []teamDoc `yaml:"teams"`
	Students []string  `yaml:"students,omitempty"`
}

type teamDoc struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

func (cmd *cmdRosterInit) Execute([]string) error {
	if cmd.Teams < 1 {
		return fmt.Errorf("at least one team is required, got %d", cmd.Teams)
	}
	if !cmd.Force {
		if _, err := os.Stat(cmd.Output); err == nil {
			return fmt.Errorf("%s already exists, pass --force to overwrite", cmd.Output)
		}
	}

	// Petnames can collide, so draw until every name is distinct.
	seen := make(map[string]bool)
	nextName := func() string {
		for {
			name := petname.Generate(2, "-")
			if !seen[name] {
				seen[name] = true
				return name
			}
		}
	}

	doc := rosterDoc{}
	for range cmd.Teams {
		team := teamDoc{Name: nextName(), Members: []string{}}
		for range cmd.Members {
			team.Members = append(team.Members, nextName())
		}
		doc.Teams = append(doc.Teams, team)
	}
	for range cmd.Students {
		doc.Students = append(doc.Students, nextName())
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := os.WriteFile(cmd.Output, out, 0o644); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}

	fmt.Printf("Wrote %s with %d teams. Edit the names, then run 'crossmark assign -r %s'.\n",
		cmd.Output, cmd.Teams, cmd.Output)

	return nil
}

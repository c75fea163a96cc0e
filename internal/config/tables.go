package config

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

// Tables holds the static cricket reference data shipped with the
// binary: recognised team types, match formats, club competitions and
// the nation id register.
type Tables struct {
	TeamTypes        []string       `yaml:"team_types"`
	Formats          []string       `yaml:"formats"`
	ClubCompetitions []string       `yaml:"club_competitions"`
	Nations          map[string]int `yaml:"nations"`
	TestNationIDs    []int          `yaml:"test_nation_ids"`
}

// LoadTables decodes the embedded reference tables.
func LoadTables() (*Tables, error) {
	var tables Tables

	err := yaml.Unmarshal(tablesYAML, &tables)
	if err != nil {
		return nil, fmt.Errorf("decode reference tables: %w", err)
	}

	return &tables, nil
}

// MatchTypes returns every recognised match type: the international
// formats followed by the club competitions.
func (t *Tables) MatchTypes() []string {
	types := make([]string, 0, len(t.Formats)+len(t.ClubCompetitions))
	types = append(types, t.Formats...)
	types = append(types, t.ClubCompetitions...)

	return types
}

// KnownTeamType reports whether the team type appears in the register.
func (t *Tables) KnownTeamType(teamType string) bool {
	return contains(t.TeamTypes, teamType)
}

// KnownMatchType reports whether the match type is a recognised format
// or club competition.
func (t *Tables) KnownMatchType(matchType string) bool {
	return contains(t.MatchTypes(), matchType)
}

// TestNations returns the nations holding test status, ordered by
// nation id.
func (t *Tables) TestNations() []string {
	ids := make(map[int]bool, len(t.TestNationIDs))
	for _, id := range t.TestNationIDs {
		ids[id] = true
	}

	var nations []string

	for nation, id := range t.Nations {
		if ids[id] {
			nations = append(nations, nation)
		}
	}

	sort.Slice(nations, func(i, j int) bool {
		return t.Nations[nations[i]] < t.Nations[nations[j]]
	})

	return nations
}

func contains(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}

	return false
}

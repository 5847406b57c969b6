package content

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

// ErrNoNames is returned when neither a zone nor any of its neighbors has a
// name list for the requested gender.
var ErrNoNames = errors.New("no names available")

// NameList holds the given-name and family-name pools of one cultural zone.
// Family may be empty for cultures that do not use inherited surnames.
type NameList struct {
	Male   []string `yaml:"male"`
	Female []string `yaml:"female"`
	Family []string `yaml:"family"`
}

func (l NameList) given(g culture.Gender) []string {
	if g == culture.GenderFemale {
		return l.Female
	}
	return l.Male
}

// Names maps cultural zones to name pools.
type Names struct {
	zones map[culture.Zone]NameList
}

// NewNames returns a name table over the given zone pools.
func NewNames(zones map[culture.Zone]NameList) *Names {
	if zones == nil {
		zones = make(map[culture.Zone]NameList)
	}
	return &Names{zones: zones}
}

// Pick draws a full name for (zone, gender). When zone has no pool for gender
// the zone's cultural neighbors are tried in order.
//
// Postcondition: a non-empty name is returned, or an error wrapping ErrNoNames.
func (n *Names) Pick(zone culture.Zone, g culture.Gender, src dice.Source) (string, error) {
	candidates := append([]culture.Zone{zone}, zone.Neighbors()...)
	for _, z := range candidates {
		list, ok := n.zones[z]
		if !ok || len(list.given(g)) == 0 {
			continue
		}
		name := dice.Pick(src, list.given(g))
		if len(list.Family) > 0 {
			name += " " + dice.Pick(src, list.Family)
		}
		return name, nil
	}
	return "", fmt.Errorf("%s/%s: %w", zone, g, ErrNoNames)
}

type namesFile struct {
	Zones map[culture.Zone]NameList `yaml:"zones"`
}

// LoadNamesFromBytes parses a name table from YAML.
func LoadNamesFromBytes(data []byte) (*Names, error) {
	var f namesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing names YAML: %w", err)
	}
	for z, list := range f.Zones {
		if !z.Valid() {
			return nil, fmt.Errorf("names: unknown zone %q", z)
		}
		for _, name := range slices.Concat(list.Male, list.Female, list.Family) {
			if strings.TrimSpace(name) == "" {
				return nil, fmt.Errorf("names %s: blank entry", z)
			}
		}
	}
	return NewNames(f.Zones), nil
}

// Package profession assigns a (social class, role) pair to a character by
// filtering an era's profession table against the region, scoring the
// survivors against the character's stats, and drawing uniformly among the
// positive scores.
package profession

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/npcgen/internal/game/character"
	"github.com/cory-johannsen/npcgen/internal/game/culture"
)

// Requirement is the authored profile of one role.
type Requirement struct {
	MinStats   map[string]int     `yaml:"min_stats"`
	MaxStats   map[string]int     `yaml:"max_stats"`
	MinSocial  map[string]float64 `yaml:"min_social"`
	MaxSocial  map[string]float64 `yaml:"max_social"`
	GenderBias culture.Gender     `yaml:"gender"`
	NameKey    string             `yaml:"name_key"`
	Emoji      string             `yaml:"emoji"`
	Court      bool               `yaml:"court"`
}

// Validate checks that every bound names a known ability or social axis and
// that paired bounds are ordered.
func (r Requirement) Validate() error {
	for name, lo := range r.MinStats {
		if !slices.Contains(character.AbilityNames, name) {
			return fmt.Errorf("unknown ability %q", name)
		}
		if hi, ok := r.MaxStats[name]; ok && hi < lo {
			return fmt.Errorf("ability %q: max %d below min %d", name, hi, lo)
		}
	}
	for name := range r.MaxStats {
		if !slices.Contains(character.AbilityNames, name) {
			return fmt.Errorf("unknown ability %q", name)
		}
	}
	for name, lo := range r.MinSocial {
		if !slices.Contains(character.SocialNames, name) {
			return fmt.Errorf("unknown social axis %q", name)
		}
		if hi, ok := r.MaxSocial[name]; ok && hi < lo {
			return fmt.Errorf("social axis %q: max %g below min %g", name, hi, lo)
		}
	}
	for name := range r.MaxSocial {
		if !slices.Contains(character.SocialNames, name) {
			return fmt.Errorf("unknown social axis %q", name)
		}
	}
	if r.GenderBias != "" && !r.GenderBias.Valid() {
		return fmt.Errorf("unknown gender bias %q", r.GenderBias)
	}
	return nil
}

// Classes maps social class to role to requirement.
type Classes map[string]map[string]Requirement

// RegionRule narrows professions inside a named sub-region. Match is a
// case-insensitive substring of the caller's region string.
type RegionRule struct {
	Match            string   `yaml:"match"`
	Context          Context  `yaml:"context"`
	ExclusiveClasses []string `yaml:"exclusive_classes"`
	ExcludedRoles    []string `yaml:"excluded_roles"`
}

func (r RegionRule) matches(region string) bool {
	return r.Match != "" && strings.Contains(strings.ToLower(region), strings.ToLower(r.Match))
}

type tableKey struct {
	zone culture.Zone
	era  culture.Era
}

// Catalog holds the per-(zone, era) profession tables and the region rules.
type Catalog struct {
	tables map[tableKey]Classes
	rules  []RegionRule
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{tables: make(map[tableKey]Classes)}
}

// Add registers the table for (zone, era); the last call wins.
func (c *Catalog) Add(zone culture.Zone, era culture.Era, classes Classes) {
	c.tables[tableKey{zone, era}] = classes
}

// AddRule appends a region rule.
func (c *Catalog) AddRule(r RegionRule) {
	c.rules = append(c.rules, r)
}

// Table returns the table for (zone, era).
func (c *Catalog) Table(zone culture.Zone, era culture.Era) (Classes, bool) {
	if c == nil {
		return nil, false
	}
	t, ok := c.tables[tableKey{zone, era}]
	return t, ok && len(t) > 0
}

// Rules returns the region rules matching region, in authored order.
func (c *Catalog) Rules(region string) []RegionRule {
	if c == nil {
		return nil
	}
	var out []RegionRule
	for _, r := range c.rules {
		if r.matches(region) {
			out = append(out, r)
		}
	}
	return out
}

// exclusiveOwner reports whether class is reserved to some region.
func (c *Catalog) exclusiveOwner(class string) bool {
	for _, r := range c.rules {
		if containsFold(r.ExclusiveClasses, class) {
			return true
		}
	}
	return false
}

// Len returns the number of (zone, era) tables.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tables)
}

type catalogFile struct {
	Tables []struct {
		Zone    culture.Zone `yaml:"zone"`
		Era     culture.Era  `yaml:"era"`
		Classes Classes      `yaml:"classes"`
	} `yaml:"tables"`
	Regions []RegionRule `yaml:"regions"`
}

// LoadCatalogFromBytes parses profession tables and region rules from YAML.
//
// Postcondition: every table names a valid coordinate and every requirement
// has passed Validate, or an error is returned.
func LoadCatalogFromBytes(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing profession YAML: %w", err)
	}
	cat := NewCatalog()
	for i, t := range f.Tables {
		if !t.Zone.Valid() || !t.Era.Valid() {
			return nil, fmt.Errorf("profession table %d: unknown coordinate %s/%s", i, t.Zone, t.Era)
		}
		for class, roles := range t.Classes {
			for role, req := range roles {
				if err := req.Validate(); err != nil {
					return nil, fmt.Errorf("profession table %s/%s: %s/%s: %w", t.Zone, t.Era, class, role, err)
				}
			}
		}
		cat.Add(t.Zone, t.Era, t.Classes)
	}
	for i, r := range f.Regions {
		if r.Match == "" {
			return nil, fmt.Errorf("region rule %d: match must not be empty", i)
		}
		if r.Context != "" && !r.Context.Valid() {
			return nil, fmt.Errorf("region rule %q: unknown context %q", r.Match, r.Context)
		}
		cat.AddRule(r)
	}
	return cat, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func containsFold(list []string, v string) bool {
	for _, x := range list {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}

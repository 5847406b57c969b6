// Package ideology assigns a character one ideology and a handful of
// individual beliefs with convictions.
package ideology

import (
	"fmt"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
)

// Belief tags that modulate adoption probability.
const (
	TagReligious   = "religious"
	TagProgressive = "progressive"
	TagTraditional = "traditional"
	TagEthical     = "ethical"
	TagCommunity   = "community"
)

// Belief is a single held position.
type Belief struct {
	ID          string   `yaml:"id"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description"`
}

// HasTag reports whether b carries tag.
func (b Belief) HasTag(tag string) bool {
	return slices.Contains(b.Tags, tag)
}

// Ideology is a worldview with eligibility filters and the base adoption
// probability of each of its beliefs. Empty filter lists are wildcards.
type Ideology struct {
	ID        string             `yaml:"id"`
	Name      string             `yaml:"name"`
	Zones     []culture.Zone     `yaml:"zones"`
	Eras      []culture.Era      `yaml:"eras"`
	Religions []string           `yaml:"religions"`
	Beliefs   map[string]float64 `yaml:"beliefs"`
}

// Validate checks the ideology against the known beliefs.
//
// Postcondition: returns nil iff ID is set, at least one belief is declared,
// every belief id is known, every probability is in [0, 1], and every zone
// and era is known.
func (i Ideology) Validate(beliefs map[string]Belief) error {
	if i.ID == "" {
		return fmt.Errorf("ideology: id must not be empty")
	}
	if len(i.Beliefs) == 0 {
		return fmt.Errorf("ideology %q: at least one belief is required", i.ID)
	}
	for id, p := range i.Beliefs {
		if _, ok := beliefs[id]; !ok {
			return fmt.Errorf("ideology %q: unknown belief %q", i.ID, id)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("ideology %q: belief %q probability %g outside [0,1]", i.ID, id, p)
		}
	}
	for _, z := range i.Zones {
		if !z.Valid() {
			return fmt.Errorf("ideology %q: unknown zone %q", i.ID, z)
		}
	}
	for _, e := range i.Eras {
		if !e.Valid() {
			return fmt.Errorf("ideology %q: unknown era %q", i.ID, e)
		}
	}
	return nil
}

// BeliefIDs returns the ideology's belief ids in sorted order.
func (i Ideology) BeliefIDs() []string {
	ids := make([]string, 0, len(i.Beliefs))
	for id := range i.Beliefs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Catalog is the read-only set of ideologies and beliefs.
type Catalog struct {
	ideologies []Ideology
	byID       map[string]Ideology
	beliefs    map[string]Belief
}

// NewCatalog builds a catalog. It does not validate; use
// LoadCatalogFromBytes for authored data.
func NewCatalog(ideologies []Ideology, beliefs []Belief) *Catalog {
	c := &Catalog{
		ideologies: append([]Ideology(nil), ideologies...),
		byID:       make(map[string]Ideology, len(ideologies)),
		beliefs:    make(map[string]Belief, len(beliefs)),
	}
	for _, i := range ideologies {
		c.byID[i.ID] = i
	}
	for _, b := range beliefs {
		c.beliefs[b.ID] = b
	}
	return c
}

// Ideology returns the ideology with id.
func (c *Catalog) Ideology(id string) (Ideology, bool) {
	if c == nil {
		return Ideology{}, false
	}
	i, ok := c.byID[id]
	return i, ok
}

// Belief returns the belief with id.
func (c *Catalog) Belief(id string) (Belief, bool) {
	if c == nil {
		return Belief{}, false
	}
	b, ok := c.beliefs[id]
	return b, ok
}

// Ideologies returns every ideology in authored order.
func (c *Catalog) Ideologies() []Ideology {
	if c == nil {
		return nil
	}
	return append([]Ideology(nil), c.ideologies...)
}

type ideologyFile struct {
	Ideologies []Ideology `yaml:"ideologies"`
}

type beliefFile struct {
	Beliefs []Belief `yaml:"beliefs"`
}

// LoadCatalogFromBytes parses the ideology and belief documents.
//
// Postcondition: belief and ideology ids are unique and every ideology has
// passed Validate, or an error is returned.
func LoadCatalogFromBytes(ideologyData, beliefData []byte) (*Catalog, error) {
	var bf beliefFile
	if err := yaml.Unmarshal(beliefData, &bf); err != nil {
		return nil, fmt.Errorf("parsing belief YAML: %w", err)
	}
	beliefs := make(map[string]Belief, len(bf.Beliefs))
	for i, b := range bf.Beliefs {
		if b.ID == "" {
			return nil, fmt.Errorf("belief %d: id must not be empty", i)
		}
		if _, dup := beliefs[b.ID]; dup {
			return nil, fmt.Errorf("belief %d: duplicate id %q", i, b.ID)
		}
		beliefs[b.ID] = b
	}

	var f ideologyFile
	if err := yaml.Unmarshal(ideologyData, &f); err != nil {
		return nil, fmt.Errorf("parsing ideology YAML: %w", err)
	}
	seen := make(map[string]bool, len(f.Ideologies))
	for i, ideo := range f.Ideologies {
		if err := ideo.Validate(beliefs); err != nil {
			return nil, fmt.Errorf("ideology %d: %w", i, err)
		}
		if seen[ideo.ID] {
			return nil, fmt.Errorf("ideology %d: duplicate id %q", i, ideo.ID)
		}
		seen[ideo.ID] = true
	}
	return NewCatalog(f.Ideologies, bf.Beliefs), nil
}

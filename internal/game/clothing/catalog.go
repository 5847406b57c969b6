package clothing

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
)

// Key is the composite lookup key of the catalog.
type Key struct {
	Zone   culture.Zone
	Era    culture.Era
	Tier   culture.Tier
	Gender culture.Gender
}

func keyOf(c culture.Coordinate) Key {
	return Key{Zone: c.Zone, Era: c.Era, Tier: c.Tier, Gender: c.Gender}
}

// String renders the key as ZONE/ERA/tier/Gender.
func (k Key) String() string {
	return culture.Coordinate{Zone: k.Zone, Era: k.Era, Tier: k.Tier, Gender: k.Gender}.String()
}

// Entry is one authored outfit as it appears in YAML.
type Entry struct {
	Zone   culture.Zone   `yaml:"zone"`
	Era    culture.Era    `yaml:"era"`
	Tier   culture.Tier   `yaml:"wealth"`
	Gender culture.Gender `yaml:"gender"`
	Set    `yaml:",inline"`
}

// Validate checks that the entry names a valid coordinate and at least one garment.
func (e Entry) Validate() error {
	if !e.Zone.Valid() {
		return fmt.Errorf("clothing entry: unknown zone %q", e.Zone)
	}
	if !e.Era.Valid() {
		return fmt.Errorf("clothing entry %s: unknown era %q", e.Zone, e.Era)
	}
	if !e.Tier.Valid() {
		return fmt.Errorf("clothing entry %s/%s: unknown wealth tier %q", e.Zone, e.Era, e.Tier)
	}
	if !e.Gender.Valid() {
		return fmt.Errorf("clothing entry %s/%s/%s: unknown gender %q", e.Zone, e.Era, e.Tier, e.Gender)
	}
	if len(e.Garments) == 0 {
		return fmt.Errorf("clothing entry %s/%s/%s/%s: at least one garment is required", e.Zone, e.Era, e.Tier, e.Gender)
	}
	return nil
}

// Catalog maps coordinates to authored outfits. Most coordinates are absent.
// A Catalog is read-only once loaded.
type Catalog struct {
	sets map[Key]Set
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{sets: make(map[Key]Set)}
}

// Add registers s at k; the last call for a key wins.
func (c *Catalog) Add(k Key, s Set) {
	c.sets[k] = s.Clone()
}

// Lookup is the single place a catalog miss is decided.
//
// Postcondition: the returned set is a private copy.
func (c *Catalog) Lookup(k Key) (Set, bool) {
	if c == nil {
		return Set{}, false
	}
	s, ok := c.sets[k]
	if !ok {
		return Set{}, false
	}
	return s.Clone(), true
}

// Len returns the number of authored outfits.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.sets)
}

// Keys returns every authored key in a stable order.
func (c *Catalog) Keys() []Key {
	if c == nil {
		return nil
	}
	keys := make([]Key, 0, len(c.sets))
	for k := range c.sets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// Merge copies every outfit of other into c, overriding duplicates.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	for k, s := range other.sets {
		c.sets[k] = s.Clone()
	}
}

type catalogFile struct {
	Sets []Entry `yaml:"sets"`
}

// LoadCatalogFromBytes parses a clothing catalog from YAML of the form
// `sets: [{zone, era, wealth, gender, garments, headgear, ...}]`.
//
// Postcondition: every entry has passed Validate, or an error is returned.
func LoadCatalogFromBytes(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing clothing YAML: %w", err)
	}
	cat := NewCatalog()
	for i, e := range f.Sets {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("clothing set %d: %w", i, err)
		}
		cat.Add(Key{Zone: e.Zone, Era: e.Era, Tier: e.Tier, Gender: e.Gender}, e.Set)
	}
	return cat, nil
}

package marking

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// defaultWeight applies to definitions that omit the weight key.
const defaultWeight = 1.0

// Catalog is the read-only list of marking definitions in authored order.
type Catalog struct {
	defs []Definition
}

// NewCatalog returns a catalog over defs.
func NewCatalog(defs ...Definition) *Catalog {
	return &Catalog{defs: append([]Definition(nil), defs...)}
}

// Definitions returns the definitions in authored order.
func (c *Catalog) Definitions() []Definition {
	if c == nil {
		return nil
	}
	return append([]Definition(nil), c.defs...)
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.defs)
}

type catalogFile struct {
	Markings []definitionEntry `yaml:"markings"`
}

// definitionEntry keeps an absent weight distinct from an explicit zero.
type definitionEntry struct {
	Definition `yaml:",inline"`
	Weight     *float64 `yaml:"weight"`
}

// LoadCatalogFromBytes parses a marking catalog from YAML of the form
// `markings: [{id, type, patterns, zones, ...}]`.
//
// Postcondition: every definition has passed Validate and ids are unique,
// or an error is returned.
func LoadCatalogFromBytes(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing marking YAML: %w", err)
	}
	defs := make([]Definition, len(f.Markings))
	seen := make(map[string]bool, len(f.Markings))
	for i, e := range f.Markings {
		d := &defs[i]
		*d = e.Definition
		d.Weight = defaultWeight
		if e.Weight != nil {
			d.Weight = *e.Weight
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("marking %d: %w", i, err)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("marking %d: duplicate id %q", i, d.ID)
		}
		seen[d.ID] = true
	}
	return NewCatalog(defs...), nil
}

// Package religion picks a character's religion from a prevalence table and
// enforces the wealth ceiling a religion carries in a given zone and era.
package religion

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

// FolkReligion is returned when no prevalence data covers a coordinate.
const FolkReligion = "folk_religion"

// Share is one religion's weight within a prevalence entry.
type Share struct {
	Religion string  `yaml:"religion"`
	Weight   float64 `yaml:"weight"`
}

type prevalenceKey struct {
	zone   culture.Zone
	region string
	era    culture.Era
}

type ceilingKey struct {
	religion string
	zone     culture.Zone
	era      culture.Era
}

// Table holds religion prevalence and wealth ceilings. Religion and region
// names are compared case-insensitively. A Table is read-only once loaded.
type Table struct {
	prevalence map[prevalenceKey][]Share
	ceilings   map[ceilingKey]culture.Wealth
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		prevalence: make(map[prevalenceKey][]Share),
		ceilings:   make(map[ceilingKey]culture.Wealth),
	}
}

// AddPrevalence registers the religion mix for (zone, region, era). An empty
// region is the zone-wide default.
func (t *Table) AddPrevalence(zone culture.Zone, region string, era culture.Era, shares []Share) {
	t.prevalence[prevalenceKey{zone, normalize(region), era}] = append([]Share(nil), shares...)
}

// AddCeiling caps religion's wealth in (zone, era).
func (t *Table) AddCeiling(religion string, zone culture.Zone, era culture.Era, ceiling culture.Wealth) {
	t.ceilings[ceilingKey{normalize(religion), zone, era}] = ceiling
}

// Shares returns the religion mix for the coordinate, trying the exact
// region first and the zone-wide entry second.
func (t *Table) Shares(zone culture.Zone, region string, era culture.Era) ([]Share, bool) {
	if t == nil {
		return nil, false
	}
	if region != "" {
		if s, ok := t.prevalence[prevalenceKey{zone, normalize(region), era}]; ok && len(s) > 0 {
			return s, true
		}
	}
	s, ok := t.prevalence[prevalenceKey{zone, "", era}]
	return s, ok && len(s) > 0
}

// Pick draws a religion for the coordinate by weight, or FolkReligion when
// nothing covers it.
//
// Precondition: src must be non-nil.
func (t *Table) Pick(zone culture.Zone, region string, era culture.Era, src dice.Source, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}
	shares, ok := t.Shares(zone, region, era)
	if !ok {
		logger.Debug("no religion prevalence; using folk religion",
			zap.String("zone", string(zone)), zap.String("region", region), zap.String("era", string(era)))
		return FolkReligion
	}
	weights := make([]float64, len(shares))
	for i, s := range shares {
		weights[i] = s.Weight
	}
	idx := dice.WeightedIndex(src, weights)
	if idx < 0 {
		return FolkReligion
	}
	return shares[idx].Religion
}

// Ceiling returns the highest wealth religion may hold in (zone, era).
func (t *Table) Ceiling(religion string, zone culture.Zone, era culture.Era) (culture.Wealth, bool) {
	if t == nil {
		return "", false
	}
	w, ok := t.ceilings[ceilingKey{normalize(religion), zone, era}]
	return w, ok
}

// Enforce clamps w to religion's ceiling in (zone, era). clamped reports
// whether w was lowered; callers must then recompute everything derived
// from wealth.
//
// Postcondition: result.Rank() <= ceiling.Rank() whenever a ceiling exists.
func (t *Table) Enforce(religion string, zone culture.Zone, era culture.Era, w culture.Wealth) (result culture.Wealth, clamped bool) {
	ceiling, ok := t.Ceiling(religion, zone, era)
	if !ok || w.Rank() <= ceiling.Rank() {
		return w, false
	}
	return ceiling, true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type tableFile struct {
	Prevalence []struct {
		Zone      culture.Zone `yaml:"zone"`
		Region    string       `yaml:"region"`
		Era       culture.Era  `yaml:"era"`
		Religions []Share      `yaml:"religions"`
	} `yaml:"prevalence"`
	Ceilings []struct {
		Religion string         `yaml:"religion"`
		Zone     culture.Zone   `yaml:"zone"`
		Eras     []culture.Era  `yaml:"eras"`
		Max      culture.Wealth `yaml:"max_wealth"`
	} `yaml:"ceilings"`
}

// LoadTableFromBytes parses prevalence entries and wealth ceilings from YAML.
// A ceiling entry may list several eras.
//
// Postcondition: every coordinate, weight and wealth level is valid, or an
// error is returned.
func LoadTableFromBytes(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing religion YAML: %w", err)
	}
	t := NewTable()
	for i, p := range f.Prevalence {
		if !p.Zone.Valid() || !p.Era.Valid() {
			return nil, fmt.Errorf("prevalence %d: unknown coordinate %s/%s", i, p.Zone, p.Era)
		}
		if len(p.Religions) == 0 {
			return nil, fmt.Errorf("prevalence %d (%s/%s): no religions", i, p.Zone, p.Era)
		}
		for _, s := range p.Religions {
			if s.Religion == "" || s.Weight < 0 {
				return nil, fmt.Errorf("prevalence %d (%s/%s): invalid share %+v", i, p.Zone, p.Era, s)
			}
		}
		t.AddPrevalence(p.Zone, p.Region, p.Era, p.Religions)
	}
	for i, c := range f.Ceilings {
		if c.Religion == "" || !c.Zone.Valid() || !c.Max.Valid() {
			return nil, fmt.Errorf("ceiling %d: invalid religion, zone or wealth (%q, %q, %q)", i, c.Religion, c.Zone, c.Max)
		}
		if len(c.Eras) == 0 {
			return nil, fmt.Errorf("ceiling %d (%s): at least one era is required", i, c.Religion)
		}
		for _, e := range c.Eras {
			if !e.Valid() {
				return nil, fmt.Errorf("ceiling %d (%s): unknown era %q", i, c.Religion, e)
			}
			t.AddCeiling(c.Religion, c.Zone, e, c.Max)
		}
	}
	return t, nil
}

// Package marking selects at most one body marking (tattoo, paint,
// scarification, piercing, brand, henna, ash or structural modification) for
// a character from a catalog of culturally scoped definitions.
package marking

import (
	"fmt"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
)

// Type is the kind of body modification.
type Type string

const (
	TypeTattoo        Type = "tattoo"
	TypePaint         Type = "paint"
	TypeScarification Type = "scarification"
	TypePiercing      Type = "piercing"
	TypeBrand         Type = "brand"
	TypeHenna         Type = "henna"
	TypeAsh           Type = "ash"
	TypeStructural    Type = "structural"
)

// Valid reports whether t is a known marking type.
func (t Type) Valid() bool {
	switch t {
	case TypeTattoo, TypePaint, TypeScarification, TypePiercing, TypeBrand, TypeHenna, TypeAsh, TypeStructural:
		return true
	}
	return false
}

// Pattern is one visual variant of a marking.
type Pattern struct {
	Name      string   `yaml:"name" json:"name"`
	Locations []string `yaml:"locations" json:"locations"`
	Colors    []string `yaml:"colors" json:"colors"`
	Size      string   `yaml:"size" json:"size"`
}

// Definition is a marking archetype together with its eligibility filters.
// Empty filter lists are wildcards, except Zones which must be declared.
type Definition struct {
	ID            string             `yaml:"id"`
	Name          string             `yaml:"name"`
	Type          Type               `yaml:"type"`
	Patterns      []Pattern          `yaml:"patterns"`
	Zones         []culture.Zone     `yaml:"zones"`
	Eras          []culture.Era      `yaml:"eras"`
	Genders       []culture.Gender   `yaml:"genders"`
	AgeGroups     []culture.AgeGroup `yaml:"age_groups"`
	SocialClasses []string           `yaml:"social_classes"`
	Professions   []string           `yaml:"professions"`
	Occasions     []string           `yaml:"occasions"`
	Permanent     bool               `yaml:"permanent"`
	Duration      string             `yaml:"duration"`
	Weight        float64            `yaml:"-"`
	Significance  string             `yaml:"significance"`
}

// Validate checks the structural requirements of a definition.
//
// Postcondition: returns nil iff ID is set, Type is known, at least one
// pattern and one zone are declared, every zone and era is known, and
// Weight is non-negative.
func (d Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("marking: id must not be empty")
	}
	if !d.Type.Valid() {
		return fmt.Errorf("marking %q: unknown type %q", d.ID, d.Type)
	}
	if len(d.Patterns) == 0 {
		return fmt.Errorf("marking %q: at least one pattern is required", d.ID)
	}
	for i, p := range d.Patterns {
		if p.Name == "" {
			return fmt.Errorf("marking %q: pattern %d has no name", d.ID, i)
		}
	}
	if len(d.Zones) == 0 {
		return fmt.Errorf("marking %q: at least one zone is required", d.ID)
	}
	for _, z := range d.Zones {
		if !z.Valid() {
			return fmt.Errorf("marking %q: unknown zone %q", d.ID, z)
		}
	}
	for _, e := range d.Eras {
		if !e.Valid() {
			return fmt.Errorf("marking %q: unknown era %q", d.ID, e)
		}
	}
	if d.Weight < 0 {
		return fmt.Errorf("marking %q: weight must be >= 0, got %g", d.ID, d.Weight)
	}
	return nil
}

// Package npc assembles complete NPC attribute profiles from the resolvers
// in the sibling game packages.
package npc

import (
	"fmt"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

const (
	minAge = 14
	maxAge = 70
)

// Request describes the character to generate. Zero-valued Zone, Era,
// Gender, Wealth and Age are drawn from the seed.
type Request struct {
	Seed          int64          `json:"seed" yaml:"seed"`
	Zone          culture.Zone   `json:"zone,omitempty" yaml:"zone,omitempty"`
	Era           culture.Era    `json:"era,omitempty" yaml:"era,omitempty"`
	Gender        culture.Gender `json:"gender,omitempty" yaml:"gender,omitempty"`
	Wealth        culture.Wealth `json:"wealth,omitempty" yaml:"wealth,omitempty"`
	Region        string         `json:"region,omitempty" yaml:"region,omitempty"`
	Age           int            `json:"age,omitempty" yaml:"age,omitempty"`
	Occasion      string         `json:"occasion,omitempty" yaml:"occasion,omitempty"`
	PreferredRole string         `json:"preferred_role,omitempty" yaml:"preferred_role,omitempty"`
}

// Validate checks every non-zero field.
func (r Request) Validate() error {
	if r.Zone != "" && !r.Zone.Valid() {
		return fmt.Errorf("request: unknown zone %q", r.Zone)
	}
	if r.Era != "" && !r.Era.Valid() {
		return fmt.Errorf("request: unknown era %q", r.Era)
	}
	if r.Gender != "" && !r.Gender.Valid() {
		return fmt.Errorf("request: unknown gender %q", r.Gender)
	}
	if r.Wealth != "" && !r.Wealth.Valid() {
		return fmt.Errorf("request: unknown wealth %q", r.Wealth)
	}
	if r.Age < 0 {
		return fmt.Errorf("request: age must not be negative, got %d", r.Age)
	}
	return nil
}

// fill draws every zero-valued field except Wealth, which is derived from the
// privilege roll once the social context is built.
func (r Request) fill(src dice.Source) Request {
	if r.Zone == "" {
		r.Zone = dice.Pick(src, culture.Zones)
	}
	if r.Era == "" {
		r.Era = dice.Pick(src, culture.Eras)
	}
	if r.Gender == "" {
		r.Gender = culture.GenderMale
		if dice.Chance(src, 0.5) {
			r.Gender = culture.GenderFemale
		}
	}
	if r.Age == 0 {
		r.Age = minAge + src.Intn(maxAge-minAge+1)
	}
	return r
}

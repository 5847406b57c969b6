package npc

import (
	"encoding/json"

	"github.com/cory-johannsen/npcgen/internal/game/character"
	"github.com/cory-johannsen/npcgen/internal/game/clothing"
	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/ideology"
	"github.com/cory-johannsen/npcgen/internal/game/inventory"
	"github.com/cory-johannsen/npcgen/internal/game/marking"
	"github.com/cory-johannsen/npcgen/internal/game/personality"
	"github.com/cory-johannsen/npcgen/internal/game/profession"
)

// Profile is the assembled attribute bundle of one NPC. A Profile is never
// modified after Generate returns it.
type Profile struct {
	ID       string           `json:"id" yaml:"id"`
	Seed     int64            `json:"seed" yaml:"seed"`
	Name     string           `json:"name" yaml:"name"`
	Zone     culture.Zone     `json:"zone" yaml:"zone"`
	Era      culture.Era      `json:"era" yaml:"era"`
	Region   string           `json:"region,omitempty" yaml:"region,omitempty"`
	Gender   culture.Gender   `json:"gender" yaml:"gender"`
	Age      int              `json:"age" yaml:"age"`
	AgeGroup culture.AgeGroup `json:"age_group" yaml:"age_group"`

	Abilities   character.AbilityScores `json:"abilities" yaml:"abilities"`
	Personality personality.Traits      `json:"personality" yaml:"personality"`
	Social      character.SocialContext `json:"social" yaml:"social"`

	Wealth        culture.Wealth  `json:"wealth" yaml:"wealth"`
	WealthClamped bool            `json:"wealth_clamped,omitempty" yaml:"wealth_clamped,omitempty"`
	Religion      string          `json:"religion" yaml:"religion"`
	Purse         inventory.Purse `json:"purse" yaml:"purse"`

	Profession profession.Assignment `json:"profession" yaml:"profession"`
	Archetypes []string              `json:"archetypes,omitempty" yaml:"archetypes,omitempty"`

	Clothing clothing.Result     `json:"clothing" yaml:"clothing"`
	Marking  *marking.Descriptor `json:"marking,omitempty" yaml:"marking,omitempty"`

	Ideology ideology.Assignment `json:"ideology" yaml:"ideology"`

	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Degraded bool     `json:"degraded,omitempty" yaml:"degraded,omitempty"`
}

// Coordinate returns the content-lookup key of p.
func (p Profile) Coordinate() culture.Coordinate {
	return culture.Coordinate{Zone: p.Zone, Era: p.Era, Tier: p.Wealth.Tier(), Gender: p.Gender}
}

// View returns p as a JSON-shaped map, the form handed to Lua rules.
func (p Profile) View() (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

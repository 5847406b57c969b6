package npc

import (
	"github.com/cory-johannsen/npcgen/internal/game/character"
	"github.com/cory-johannsen/npcgen/internal/game/clothing"
	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
	"github.com/cory-johannsen/npcgen/internal/game/ideology"
	"github.com/cory-johannsen/npcgen/internal/game/inventory"
	"github.com/cory-johannsen/npcgen/internal/game/personality"
	"github.com/cory-johannsen/npcgen/internal/game/profession"
	"github.com/cory-johannsen/npcgen/internal/game/religion"
)

// DegradedName is the name carried by every degraded profile.
const DegradedName = "Unknown Traveller"

// Degraded returns the minimal well-formed profile used when assembly hits a
// structural anomaly. Valid request fields are kept; the rest fall back to
// EUROPEAN, MEDIEVAL, Male, modest and age 30. It uses no randomness.
//
// Postcondition: Clothing.Set.Complete() is true and Degraded is set.
func Degraded(req Request) Profile {
	if !req.Zone.Valid() {
		req.Zone = culture.ZoneEuropean
	}
	if !req.Era.Valid() {
		req.Era = culture.EraMedieval
	}
	if !req.Gender.Valid() {
		req.Gender = culture.GenderMale
	}
	if !req.Wealth.Valid() {
		req.Wealth = culture.WealthModest
	}
	if req.Age <= 0 {
		req.Age = 30
	}

	coord := culture.Coordinate{Zone: req.Zone, Era: req.Era, Tier: req.Wealth.Tier(), Gender: req.Gender}
	currency := inventory.CurrencyFor(req.Era)
	return Profile{
		ID:          ProfileID(req),
		Seed:        req.Seed,
		Name:        DegradedName,
		Zone:        req.Zone,
		Era:         req.Era,
		Region:      req.Region,
		Gender:      req.Gender,
		Age:         req.Age,
		AgeGroup:    culture.AgeGroupFor(req.Age),
		Abilities:   character.DefaultAbilities(),
		Personality: personality.Neutral(),
		Social: character.SocialContext{
			Privilege:       req.Wealth.Privilege(),
			Wanderlust:      0.5,
			Religiosity:     0.5,
			Ambition:        0.5,
			Entrepreneurial: 0.5,
		},
		Wealth:   req.Wealth,
		Religion: religion.FolkReligion,
		Purse:    inventory.NewPurse(currency, currency.RollUnit),
		Profession: profession.Assignment{
			SocialClass: "commoner",
			Role:        profession.DefaultRole(req.Wealth),
			Context:     profession.ContextGeneral,
			Fallback:    true,
		},
		Clothing: clothing.NewResolver(nil, dice.NewSeededSource(req.Seed), nil).Resolve(coord),
		Ideology: ideology.Minimal(),
		Degraded: true,
	}
}

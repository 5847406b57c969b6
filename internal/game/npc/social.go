package npc

import (
	"github.com/cory-johannsen/npcgen/internal/game/character"
	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
	"github.com/cory-johannsen/npcgen/internal/game/personality"
)

// socialNudge bounds how far a trait moves its social axis.
const socialNudge = 0.3

// buildSocial derives the social context. A requested wealth fixes privilege
// through the privilege table; otherwise privilege is rolled and wealth is
// read from it. The other axes are uniform draws nudged by personality.
func buildSocial(w culture.Wealth, t personality.Traits, src dice.Source) (character.SocialContext, culture.Wealth) {
	var s character.SocialContext
	if w.Valid() {
		s.Privilege = w.Privilege()
	} else {
		s.Privilege = src.Float64()
		w = culture.WealthFromPrivilege(s.Privilege)
	}
	s.Wanderlust = src.Float64()
	s.Religiosity = character.Clamp01(src.Float64() + (t.Conscientiousness-0.5)*socialNudge)
	s.Ambition = character.Clamp01(src.Float64() + (t.Extraversion-0.5)*socialNudge)
	s.Entrepreneurial = character.Clamp01(src.Float64() + (t.Openness-0.5)*socialNudge)
	return s, w
}

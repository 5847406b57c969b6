package character

import (
	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

// abilityRoll is the expression every ability score is rolled with.
var abilityRoll = dice.MustParse("4d6kh3")

// RollAbilities rolls every ability score with 4d6, keeping the highest three.
//
// Precondition: roller must be non-nil.
// Postcondition: every score is in [3, 18].
func RollAbilities(roller *dice.Roller) AbilityScores {
	var a AbilityScores
	for _, name := range AbilityNames {
		a.Set(name, roller.Roll(abilityRoll).Total())
	}
	return a
}

// DefaultAbilities returns the flat all-10 scores used by degraded profiles.
func DefaultAbilities() AbilityScores {
	var a AbilityScores
	for _, name := range AbilityNames {
		a.Set(name, 10)
	}
	return a
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

package personality

import "github.com/cory-johannsen/npcgen/internal/game/character"

// statSwing maps a 3..18 score onto [-1, 1] around the 10.5 mean.
func statSwing(score int) float64 {
	v := (float64(score) - 10.5) / 7.5
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	}
	return v
}

// Correlate nudges base toward the personality implied by the ability
// scores. Every nudge is additive and bounded to at most 0.15 in magnitude;
// the result is clamped to [0, 1]. Correlate is pure.
func Correlate(base Traits, a character.AbilityScores) Traits {
	t := base

	t.Openness += 0.15 * statSwing(a.Intelligence)
	t.Extraversion += 0.15 * statSwing(a.Charisma)

	wis := statSwing(a.Wisdom)
	t.Neuroticism -= 0.12 * wis
	t.Conscientiousness += 0.12 * wis

	t.Openness += 0.12 * statSwing(a.Perception)

	crafty := statSwing(a.Craftiness)
	t.Agreeableness -= 0.12 * crafty
	t.Openness += 0.12 * crafty

	// Strong but uncharismatic characters read as blunt.
	if a.Strength >= 15 && a.Charisma <= 8 {
		t.Agreeableness -= 0.12
	}

	return t.Clamped()
}

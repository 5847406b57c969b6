// Package personality models the Big-Five trait vector, its correlation with
// ability scores, and the profession archetype nudges applied after a role
// is assigned.
package personality

import (
	"github.com/cory-johannsen/npcgen/internal/game/character"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

// Traits is a Big-Five personality vector; every trait is in [0, 1].
type Traits struct {
	Openness          float64 `json:"openness" yaml:"openness"`
	Conscientiousness float64 `json:"conscientiousness" yaml:"conscientiousness"`
	Extraversion      float64 `json:"extraversion" yaml:"extraversion"`
	Agreeableness     float64 `json:"agreeableness" yaml:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism" yaml:"neuroticism"`
}

// Roll draws each trait independently and uniformly from [0, 1).
func Roll(src dice.Source) Traits {
	return Traits{
		Openness:          src.Float64(),
		Conscientiousness: src.Float64(),
		Extraversion:      src.Float64(),
		Agreeableness:     src.Float64(),
		Neuroticism:       src.Float64(),
	}
}

// Neutral returns the all-0.5 vector used by degraded profiles.
func Neutral() Traits {
	return Traits{Openness: 0.5, Conscientiousness: 0.5, Extraversion: 0.5, Agreeableness: 0.5, Neuroticism: 0.5}
}

// Clamped returns t with every trait limited to [0, 1].
func (t Traits) Clamped() Traits {
	return Traits{
		Openness:          character.Clamp01(t.Openness),
		Conscientiousness: character.Clamp01(t.Conscientiousness),
		Extraversion:      character.Clamp01(t.Extraversion),
		Agreeableness:     character.Clamp01(t.Agreeableness),
		Neuroticism:       character.Clamp01(t.Neuroticism),
	}
}

// Get returns the named trait.
func (t Traits) Get(name string) (float64, bool) {
	switch name {
	case "openness":
		return t.Openness, true
	case "conscientiousness":
		return t.Conscientiousness, true
	case "extraversion":
		return t.Extraversion, true
	case "agreeableness":
		return t.Agreeableness, true
	case "neuroticism":
		return t.Neuroticism, true
	}
	return 0, false
}

func (t *Traits) ptr(name string) *float64 {
	switch name {
	case "openness":
		return &t.Openness
	case "conscientiousness":
		return &t.Conscientiousness
	case "extraversion":
		return &t.Extraversion
	case "agreeableness":
		return &t.Agreeableness
	case "neuroticism":
		return &t.Neuroticism
	}
	return nil
}

// Nudge returns t with delta added to the named trait, clamped to [0, 1].
// Unknown trait names leave t unchanged.
func (t Traits) Nudge(name string, delta float64) Traits {
	if p := t.ptr(name); p != nil {
		*p = character.Clamp01(*p + delta)
	}
	return t
}

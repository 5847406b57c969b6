package marking

import (
	"strings"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
)

// MaxProbability caps the chance of carrying any marking.
const MaxProbability = 0.98

// zonePrevalence is the base chance that a member of a zone carries any
// visible marking.
var zonePrevalence = map[culture.Zone]float64{
	culture.ZoneEuropean:              0.08,
	culture.ZoneMENA:                  0.30,
	culture.ZoneCentralAsian:          0.20,
	culture.ZoneSouthAsian:            0.35,
	culture.ZoneEastAsian:             0.12,
	culture.ZoneSubSaharan:            0.55,
	culture.ZoneOceania:               0.70,
	culture.ZoneSouthAmerican:         0.45,
	culture.ZoneNorthAmericanNative:   0.60,
	culture.ZoneNorthAmericanColonial: 0.05,
}

var eraMultiplier = map[culture.Era]float64{
	culture.EraPrehistoric: 1.6,
	culture.EraAncient:     1.3,
	culture.EraClassical:   1.2,
	culture.EraIndustrial:  0.7,
	culture.EraModern:      0.6,
	culture.EraFuture:      0.8,
}

// professionMultipliers are checked in order; the first matching group wins.
var professionMultipliers = []struct {
	keywords []string
	factor   float64
}{
	{[]string{"sailor", "seaman", "mariner", "whaler", "pirate", "navigator"}, 1.8},
	{[]string{"shaman", "priest", "priestess", "monk", "nun", "healer", "medicine", "oracle", "diviner", "imam", "lama",
		"warrior", "soldier", "guard", "mercenary", "hunter", "chief", "samurai", "knight", "brave"}, 1.5},
	{[]string{"merchant", "trader", "scholar", "scribe", "clerk", "teacher", "physician"}, 0.8},
}

// Probability returns the chance that a character in ctx carries any
// marking: the zone base, scaled by era and profession.
//
// Postcondition: 0 <= result <= MaxProbability.
func Probability(ctx Context) float64 {
	p := zonePrevalence[ctx.Zone]
	if m, ok := eraMultiplier[ctx.Era]; ok {
		p *= m
	}
	if ctx.Zone == culture.ZoneEuropean && ctx.Era == culture.EraMedieval {
		p *= 0.5
	}
	p *= professionFactor(ctx.Profession)
	if p > MaxProbability {
		return MaxProbability
	}
	if p < 0 {
		return 0
	}
	return p
}

func professionFactor(profession string) float64 {
	p := strings.ToLower(profession)
	if p == "" {
		return 1
	}
	for _, g := range professionMultipliers {
		for _, k := range g.keywords {
			if strings.Contains(p, k) {
				return g.factor
			}
		}
	}
	return 1
}

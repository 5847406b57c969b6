package personality

import "strings"

// bound is a soft range a profession archetype expects a trait to sit in.
type bound struct {
	trait    string
	min, max float64
}

// archetype groups profession keywords with the trait bounds they imply.
type archetype struct {
	name     string
	keywords []string
	bounds   []bound
}

var archetypes = []archetype{
	{"shadow", []string{"assassin", "thief", "bandit", "smuggler", "spy", "cutpurse", "brigand", "pirate"},
		[]bound{{"agreeableness", 0, 0.45}}},
	{"devout", []string{"priest", "monk", "nun", "healer", "imam", "shaman", "lama", "cleric"},
		[]bound{{"agreeableness", 0.5, 1}, {"conscientiousness", 0.5, 1}}},
	{"learned", []string{"scholar", "scribe", "philosopher", "astronomer", "physician", "teacher", "engineer"},
		[]bound{{"openness", 0.55, 1}}},
	{"martial", []string{"soldier", "guard", "warrior", "knight", "samurai", "mercenary", "officer"},
		[]bound{{"conscientiousness", 0.45, 1}, {"neuroticism", 0, 0.6}}},
	{"trade", []string{"merchant", "trader", "peddler", "shopkeeper", "broker"},
		[]bound{{"extraversion", 0.45, 1}}},
	{"radical", []string{"revolutionary", "agitator", "rebel", "anarchist", "activist"},
		[]bound{{"openness", 0.55, 1}}},
	{"court", []string{"courtier", "diplomat", "herald", "envoy"},
		[]bound{{"extraversion", 0.5, 1}, {"agreeableness", 0.4, 1}}},
	{"solitary", []string{"hermit", "wanderer", "trapper", "hunter"},
		[]bound{{"extraversion", 0, 0.5}}},
}

// AdjustForProfession moves every trait that falls outside the role's
// archetype bounds halfway back toward the violated bound. Roles that match
// no archetype leave t unchanged. The returned names list the archetypes
// that applied, in table order.
func AdjustForProfession(t Traits, role string) (Traits, []string) {
	r := strings.ToLower(role)
	var applied []string
	for _, a := range archetypes {
		if !matchesAny(r, a.keywords) {
			continue
		}
		applied = append(applied, a.name)
		for _, b := range a.bounds {
			v, _ := t.Get(b.trait)
			switch {
			case v < b.min:
				t = t.Nudge(b.trait, (b.min-v)/2)
			case v > b.max:
				t = t.Nudge(b.trait, (b.max-v)/2)
			}
		}
	}
	return t, applied
}

func matchesAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

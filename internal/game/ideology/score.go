package ideology

import (
	"strings"

	"github.com/cory-johannsen/npcgen/internal/game/character"
	"github.com/cory-johannsen/npcgen/internal/game/personality"
)

// Keyword categories detected in an ideology id.
var (
	revolutionaryWords = []string{"revolution", "radical", "anarch", "insurg"}
	conservativeWords  = []string{"conservative", "tradition", "royalist", "loyalist", "reaction"}
	militaristWords    = []string{"militar", "martial", "warrior", "bushido", "chivalr"}
	humanistWords      = []string{"humanis", "rational", "enlighten", "philosoph"}
	mysticWords        = []string{"mystic", "spiritual", "animis", "shaman", "esoteric", "sufi"}
	orthodoxWords      = []string{"orthodox", "devout", "pious", "fundamental", "puritan"}
	mercantileWords    = []string{"mercantil", "entrepreneur", "commerc", "capital", "guild"}
	egalitarianWords   = []string{"egalitarian", "secular", "communal", "socialis", "leveller"}

	revolutionaryProfessions = []string{"revolutionary", "agitator", "rebel", "anarchist", "insurgent", "activist"}
	devoutProfessions        = []string{"priest", "monk", "nun", "imam", "rabbi", "lama", "shaman", "cleric"}
	tradeProfessions         = []string{"merchant", "trader", "banker", "shopkeeper", "broker"}
	martialProfessions       = []string{"soldier", "knight", "warrior", "guard", "samurai", "mercenary", "officer"}
)

// IsConservative reports whether an ideology id is conservative-coded.
func IsConservative(id string) bool {
	return hasAny(strings.ToLower(id), conservativeWords)
}

// IsRevolutionaryProfession reports whether a role is revolutionary-coded.
func IsRevolutionaryProfession(role string) bool {
	return hasAny(strings.ToLower(role), revolutionaryProfessions)
}

// Score rates how well ideology id fits a character. Each detected keyword
// category contributes a term aligned with personality and social context;
// the profession adds fixed bonuses and penalties.
func Score(id string, t personality.Traits, s character.SocialContext, role string) float64 {
	lid := strings.ToLower(id)
	o, c, a, n := t.Openness-0.5, t.Conscientiousness-0.5, t.Agreeableness-0.5, t.Neuroticism-0.5
	priv, rel, amb, ent := s.Privilege-0.5, s.Religiosity-0.5, s.Ambition-0.5, s.Entrepreneurial-0.5

	score := 0.0
	if hasAny(lid, revolutionaryWords) {
		score += o*60 - a*20 + n*10 - priv*30
	}
	if hasAny(lid, conservativeWords) {
		score += -o*60 + c*30 + priv*30 + rel*20
	}
	if hasAny(lid, militaristWords) {
		score += -a*40 + c*20 + amb*20
	}
	if hasAny(lid, humanistWords) {
		score += o*40 + a*20 - rel*30
	}
	if hasAny(lid, mysticWords) {
		score += o*20 + n*10 + rel*40
	}
	if hasAny(lid, orthodoxWords) {
		score += c*20 + rel*50 - o*20
	}
	if hasAny(lid, mercantileWords) {
		score += ent*50 + amb*20
	}
	if hasAny(lid, egalitarianWords) {
		score += a*30 - priv*30 - rel*30
	}

	r := strings.ToLower(role)
	switch {
	case hasAny(r, revolutionaryProfessions):
		if IsConservative(id) {
			score -= 100
		} else {
			score += 40
		}
	case hasAny(r, devoutProfessions):
		if hasAny(lid, orthodoxWords) || hasAny(lid, mysticWords) {
			score += 25
		}
		if hasAny(lid, egalitarianWords) || hasAny(lid, humanistWords) {
			score -= 25
		}
	case hasAny(r, tradeProfessions):
		if hasAny(lid, mercantileWords) {
			score += 25
		}
	case hasAny(r, martialProfessions):
		if hasAny(lid, militaristWords) {
			score += 25
		}
	}
	return score
}

// RankWeight is the selection weight of the ideology ranked rank (0-based)
// with the given score.
func RankWeight(rank int, score float64) float64 {
	return max(1, 100-15*float64(rank)+score)
}

func hasAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

package npc

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/ideology"
	"github.com/cory-johannsen/npcgen/internal/game/personality"
)

// coherenceNudge is how far a rule moves the offending trait.
const coherenceNudge = 0.1

// Rule is one built-in coherence check. Check returns a warning when the
// profile is contradictory; the named trait is then nudged by Delta.
type Rule struct {
	Name  string
	Trait string
	Delta float64
	Check func(p Profile) (string, bool)
}

var (
	shadowRoles = []string{"thief", "bandit", "smuggler", "pickpocket", "highwayman", "assassin", "cutpurse"}
	devoutRoles = []string{"priest", "monk", "nun", "imam", "friar", "abbess", "minister", "sadhu"}
	secularIDs  = []string{"secular", "rationalism", "socialism"}
)

// Rules is the built-in rule set, applied in order.
var Rules = []Rule{
	{
		Name: "revolutionary_conservative", Trait: "openness", Delta: coherenceNudge,
		Check: func(p Profile) (string, bool) {
			if ideology.IsRevolutionaryProfession(p.Profession.Role) && ideology.IsConservative(p.Ideology.Ideology) {
				return fmt.Sprintf("revolutionary %s holds conservative ideology %s", p.Profession.Role, p.Ideology.Ideology), true
			}
			return "", false
		},
	},
	{
		Name: "meticulous_criminal", Trait: "conscientiousness", Delta: -coherenceNudge,
		Check: func(p Profile) (string, bool) {
			if roleMatches(p.Profession.Role, shadowRoles) && p.Personality.Conscientiousness > 0.7 {
				return fmt.Sprintf("%s is unusually conscientious (%.2f)", p.Profession.Role, p.Personality.Conscientiousness), true
			}
			return "", false
		},
	},
	{
		Name: "hostile_cleric", Trait: "agreeableness", Delta: coherenceNudge,
		Check: func(p Profile) (string, bool) {
			if roleMatches(p.Profession.Role, devoutRoles) && p.Personality.Agreeableness < 0.3 {
				return fmt.Sprintf("%s is unusually disagreeable (%.2f)", p.Profession.Role, p.Personality.Agreeableness), true
			}
			return "", false
		},
	},
	{
		Name: "faithless_cleric",
		Check: func(p Profile) (string, bool) {
			if roleMatches(p.Profession.Role, devoutRoles) && p.Social.Religiosity < 0.3 {
				return fmt.Sprintf("%s has low religiosity (%.2f)", p.Profession.Role, p.Social.Religiosity), true
			}
			return "", false
		},
	},
	{
		Name: "devout_secularist",
		Check: func(p Profile) (string, bool) {
			if roleMatches(p.Ideology.Ideology, secularIDs) && p.Social.Religiosity > 0.85 {
				return fmt.Sprintf("ideology %s held with high religiosity (%.2f)", p.Ideology.Ideology, p.Social.Religiosity), true
			}
			return "", false
		},
	},
	{
		Name: "impoverished_noble",
		Check: func(p Profile) (string, bool) {
			class := strings.ToLower(p.Profession.SocialClass)
			if (class == "nobility" || class == "court") && p.Wealth.Rank() <= culture.WealthModest.Rank() {
				return fmt.Sprintf("%s of class %s has %s wealth", p.Profession.Role, class, p.Wealth), true
			}
			return "", false
		},
	},
}

// Validate runs rules against p and returns the nudged personality with the
// warnings raised. It never blocks generation; p is not modified.
//
// Postcondition: every returned trait is in [0, 1].
func Validate(p Profile, rules []Rule) (personality.Traits, []string) {
	traits := p.Personality
	var warnings []string
	for _, r := range rules {
		msg, bad := r.Check(p)
		if !bad {
			continue
		}
		warnings = append(warnings, msg)
		if r.Trait != "" && r.Delta != 0 {
			traits = traits.Nudge(r.Trait, r.Delta)
		}
	}
	return traits.Clamped(), warnings
}

func roleMatches(role string, keywords []string) bool {
	r := strings.ToLower(role)
	for _, k := range keywords {
		if strings.Contains(r, k) {
			return true
		}
	}
	return false
}

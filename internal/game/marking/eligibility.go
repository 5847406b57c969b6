package marking

import (
	"slices"
	"strings"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
)

// Context is the demographic context a marking is selected for.
type Context struct {
	Zone        culture.Zone
	Era         culture.Era
	Gender      culture.Gender
	Age         int
	SocialClass string
	Profession  string
	Occasion    string
}

// Eligible reports whether d may be worn by a character in ctx. Zone
// membership is mandatory; every other axis is checked only when d declares
// a restriction on it.
func Eligible(d Definition, ctx Context) bool {
	if !slices.Contains(d.Zones, ctx.Zone) {
		return false
	}
	if len(d.Eras) > 0 && !slices.Contains(d.Eras, ctx.Era) {
		return false
	}
	if len(d.Genders) > 0 && !slices.Contains(d.Genders, ctx.Gender) {
		return false
	}
	if len(d.AgeGroups) > 0 && !slices.Contains(d.AgeGroups, culture.AgeGroupFor(ctx.Age)) {
		return false
	}
	if len(d.SocialClasses) > 0 && !containsFold(d.SocialClasses, ctx.SocialClass) {
		return false
	}
	if len(d.Occasions) > 0 && !containsFold(d.Occasions, ctx.Occasion) {
		return false
	}
	if len(d.Professions) > 0 && !professionMatches(d.Professions, ctx.Profession) {
		return false
	}
	return true
}

// Filter returns the definitions of c eligible for ctx, in catalog order.
func (c *Catalog) Filter(ctx Context) []Definition {
	var out []Definition
	for _, d := range c.Definitions() {
		if Eligible(d, ctx) {
			out = append(out, d)
		}
	}
	return out
}

func containsFold(list []string, v string) bool {
	for _, x := range list {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}

// professionMatches is a case-insensitive substring match in either
// direction, so "sailor" matches "Merchant Sailor" and vice versa.
func professionMatches(list []string, profession string) bool {
	p := strings.ToLower(strings.TrimSpace(profession))
	if p == "" {
		return false
	}
	for _, x := range list {
		x = strings.ToLower(x)
		if strings.Contains(p, x) || strings.Contains(x, p) {
			return true
		}
	}
	return false
}

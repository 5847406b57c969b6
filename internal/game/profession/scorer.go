package profession

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/npcgen/internal/game/character"
	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

const (
	baseScore        = 10.0
	violationPenalty = -1000.0
	statBonusPerStep = 0.5
	statBonusCap     = 2.5
	socialBonusScale = 5.0
)

// Query is everything the scorer reads about a character.
type Query struct {
	Zone          culture.Zone
	Era           culture.Era
	Region        string
	Gender        culture.Gender
	Wealth        culture.Wealth
	Abilities     character.AbilityScores
	Social        character.SocialContext
	PreferredRole string
}

// Assignment is the chosen profession.
type Assignment struct {
	SocialClass string  `json:"social_class" yaml:"social_class"`
	Role        string  `json:"role" yaml:"role"`
	NameKey     string  `json:"name_key,omitempty" yaml:"name_key,omitempty"`
	Emoji       string  `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Context     Context `json:"context" yaml:"context"`
	Fallback    bool    `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// Candidate is one scored (class, role) pair.
type Candidate struct {
	SocialClass string
	Role        string
	Requirement Requirement
	Score       float64
}

// Scorer assigns professions from a catalog.
type Scorer struct {
	catalog *Catalog
	logger  *zap.Logger
}

// NewScorer creates a Scorer over cat.
//
// Precondition: a nil logger disables logging.
func NewScorer(cat *Catalog, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{catalog: cat, logger: logger}
}

// Assign returns a profession for q. It never fails: when no authored role
// survives it falls back to a generic commoner role.
//
// Precondition: src must be non-nil.
// Postcondition: unless Fallback is set, the returned role's declared stat
// and social bounds are all satisfied by q.
func (s *Scorer) Assign(q Query, src dice.Source) Assignment {
	rules := s.catalog.Rules(q.Region)
	ctx := Classify(q.Region, q.Zone, q.Era, rules)

	table, ok := s.table(q.Zone, q.Era)
	if !ok {
		s.logger.Debug("no profession table", zap.String("zone", string(q.Zone)), zap.String("era", string(q.Era)))
		return s.fallback(q, ctx, src)
	}

	if q.PreferredRole != "" {
		if a, ok := s.preferred(q, ctx, rules, table); ok {
			return a
		}
		s.logger.Debug("preferred role rejected", zap.String("role", q.PreferredRole))
	}

	candidates := s.Candidates(q, ctx, rules, table)
	if len(candidates) == 0 {
		return s.fallback(q, ctx, src)
	}
	c := dice.Pick(src, candidates)
	s.logger.Debug("profession assigned",
		zap.String("class", c.SocialClass),
		zap.String("role", c.Role),
		zap.String("context", string(ctx)),
		zap.Int("candidates", len(candidates)),
	)
	return Assignment{SocialClass: c.SocialClass, Role: c.Role, NameKey: c.Requirement.NameKey, Emoji: c.Requirement.Emoji, Context: ctx}
}

// table finds the era's table for the zone, then for culturally adjacent
// zones in the same era.
func (s *Scorer) table(zone culture.Zone, era culture.Era) (Classes, bool) {
	if t, ok := s.catalog.Table(zone, era); ok {
		return t, true
	}
	for _, n := range zone.Neighbors() {
		if t, ok := s.catalog.Table(n, era); ok {
			return t, true
		}
	}
	return nil, false
}

func (s *Scorer) preferred(q Query, ctx Context, rules []RegionRule, table Classes) (Assignment, bool) {
	for _, class := range sortedKeys(table) {
		for _, role := range sortedKeys(table[class]) {
			if !strings.EqualFold(role, q.PreferredRole) {
				continue
			}
			req := table[class][role]
			if !s.admissible(q, ctx, rules, class, role, req) || Score(req, q.Abilities, q.Social) <= 0 {
				return Assignment{}, false
			}
			return Assignment{SocialClass: class, Role: role, NameKey: req.NameKey, Emoji: req.Emoji, Context: ctx}, true
		}
	}
	return Assignment{}, false
}

// Candidates returns every admissible, positively scored (class, role) pair
// of table in a stable order.
func (s *Scorer) Candidates(q Query, ctx Context, rules []RegionRule, table Classes) []Candidate {
	var out []Candidate
	for _, class := range sortedKeys(table) {
		for _, role := range sortedKeys(table[class]) {
			req := table[class][role]
			if !s.admissible(q, ctx, rules, class, role, req) {
				continue
			}
			score := Score(req, q.Abilities, q.Social)
			if score <= 0 {
				continue
			}
			out = append(out, Candidate{SocialClass: class, Role: role, Requirement: req, Score: score})
		}
	}
	return out
}

func (s *Scorer) admissible(q Query, ctx Context, rules []RegionRule, class, role string, req Requirement) bool {
	owned := false
	for _, r := range rules {
		if containsFold(r.ExclusiveClasses, class) {
			owned = true
			break
		}
	}
	if !owned && (s.catalog.exclusiveOwner(class) || !ClassAllowed(ctx, class)) {
		return false
	}
	for _, r := range rules {
		if containsFold(r.ExcludedRoles, role) {
			return false
		}
	}
	if req.GenderBias != "" && req.GenderBias != q.Gender {
		return false
	}
	if req.Court && q.Wealth.Rank() < culture.WealthWealthy.Rank() {
		return false
	}
	return true
}

// Score rates how well a character fits req: a fixed base plus a small
// headroom bonus per satisfied bound, or a disqualifying penalty per
// violated bound.
func Score(req Requirement, a character.AbilityScores, soc character.SocialContext) float64 {
	score := baseScore
	for _, name := range sortedKeys(req.MinStats) {
		v, _ := a.Get(name)
		score += statTerm(float64(v - req.MinStats[name]))
	}
	for _, name := range sortedKeys(req.MaxStats) {
		v, _ := a.Get(name)
		score += statTerm(float64(req.MaxStats[name] - v))
	}
	for _, name := range sortedKeys(req.MinSocial) {
		v, _ := soc.Get(name)
		score += socialTerm(v - req.MinSocial[name])
	}
	for _, name := range sortedKeys(req.MaxSocial) {
		v, _ := soc.Get(name)
		score += socialTerm(req.MaxSocial[name] - v)
	}
	return score
}

func statTerm(headroom float64) float64 {
	if headroom < 0 {
		return violationPenalty
	}
	return min(headroom*statBonusPerStep, statBonusCap)
}

func socialTerm(headroom float64) float64 {
	if headroom < 0 {
		return violationPenalty
	}
	return headroom * socialBonusScale
}

// genericRoles are the terminal fallback roles per gender.
var genericRoles = map[culture.Gender][]string{
	culture.GenderMale:   {"laborer", "farmer", "wanderer", "herder", "fisher"},
	culture.GenderFemale: {"weaver", "farmer", "wanderer", "herder", "midwife"},
}

func (s *Scorer) fallback(q Query, ctx Context, src dice.Source) Assignment {
	roles := genericRoles[q.Gender]
	var role string
	if len(roles) > 0 {
		role = dice.Pick(src, roles)
	} else {
		role = DefaultRole(q.Wealth)
	}
	s.logger.Debug("profession fallback", zap.String("role", role))
	return Assignment{SocialClass: "commoner", Role: role, Context: ctx, Fallback: true}
}

// DefaultRole is the deterministic last resort: laborer for poor or modest
// wealth, wanderer otherwise.
func DefaultRole(w culture.Wealth) string {
	if w == culture.WealthPoor || w == culture.WealthModest {
		return "laborer"
	}
	return "wanderer"
}

package npc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/npcgen/internal/content"
	"github.com/cory-johannsen/npcgen/internal/game/character"
	"github.com/cory-johannsen/npcgen/internal/game/clothing"
	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
	"github.com/cory-johannsen/npcgen/internal/game/ideology"
	"github.com/cory-johannsen/npcgen/internal/game/inventory"
	"github.com/cory-johannsen/npcgen/internal/game/marking"
	"github.com/cory-johannsen/npcgen/internal/game/personality"
	"github.com/cory-johannsen/npcgen/internal/game/profession"
)

// CoherenceScripts supplies scripted coherence warnings for a zone.
type CoherenceScripts interface {
	CheckCoherence(zone string, profile map[string]any) ([]string, error)
}

// Generator assembles profiles from read-only content tables.
//
// Generator is safe for concurrent use: every Generate call draws from its
// own source seeded by the request.
type Generator struct {
	tables   *content.Tables
	scripts  CoherenceScripts
	rules    []Rule
	logger   *zap.Logger
	scorer   *profession.Scorer
	selector *marking.Selector
	assigner *ideology.Assigner
}

// NewGenerator creates a Generator over tables.
//
// Precondition: tables must be non-nil with every table loaded. scripts may
// be nil; a nil logger disables logging.
func NewGenerator(tables *content.Tables, scripts CoherenceScripts, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		tables:   tables,
		scripts:  scripts,
		rules:    Rules,
		logger:   logger,
		scorer:   profession.NewScorer(tables.Professions, logger),
		selector: marking.NewSelector(tables.Markings, logger),
		assigner: ideology.NewAssigner(tables.Ideologies, logger),
	}
}

// Generate assembles the profile for req. It never fails: an invalid request
// or a structural anomaly during assembly yields the degraded profile, logged
// at Warn.
//
// Postcondition: identical requests produce identical profiles.
func (g *Generator) Generate(req Request) (p Profile) {
	if err := req.Validate(); err != nil {
		g.logger.Warn("invalid request; returning degraded profile", zap.Int64("seed", req.Seed), zap.Error(err))
		return Degraded(req)
	}

	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("profile assembly panicked; returning degraded profile",
				zap.Int64("seed", req.Seed),
				zap.Any("panic", r),
			)
			p = Degraded(req)
		}
	}()

	p, err := g.assemble(req)
	if err != nil {
		g.logger.Warn("profile assembly failed; returning degraded profile", zap.Int64("seed", req.Seed), zap.Error(err))
		return Degraded(req)
	}
	return p
}

// GenerateBatch generates count profiles with consecutive seeds starting at
// req.Seed.
func (g *Generator) GenerateBatch(req Request, count int) []Profile {
	out := make([]Profile, 0, max(count, 0))
	for i := range count {
		r := req
		r.Seed = req.Seed + int64(i)
		out = append(out, g.Generate(r))
	}
	return out
}

func (g *Generator) assemble(req Request) (Profile, error) {
	logger := g.logger.With(zap.Int64("seed", req.Seed))
	src := dice.NewSeededSource(req.Seed)
	roller := dice.NewLoggedRoller(src, logger)

	req = req.fill(src)

	abilities := character.RollAbilities(roller)
	traits := personality.Correlate(personality.Roll(src), abilities)
	social, wealth := buildSocial(req.Wealth, traits, src)

	faith := g.tables.Religions.Pick(req.Zone, req.Region, req.Era, src, logger)
	capped, clamped := g.tables.Religions.Enforce(faith, req.Zone, req.Era, wealth)
	if clamped {
		logger.Debug("wealth clamped by religion ceiling",
			zap.String("religion", faith),
			zap.String("from", string(wealth)),
			zap.String("to", string(capped)),
		)
		wealth = capped
		social.Privilege = wealth.Privilege()
	}

	name, err := g.tables.Names.Pick(req.Zone, req.Gender, src)
	if err != nil {
		return Profile{}, fmt.Errorf("naming: %w", err)
	}

	job := g.scorer.Assign(profession.Query{
		Zone:          req.Zone,
		Era:           req.Era,
		Region:        req.Region,
		Gender:        req.Gender,
		Wealth:        wealth,
		Abilities:     abilities,
		Social:        social,
		PreferredRole: req.PreferredRole,
	}, src)

	coord := culture.Coordinate{Zone: req.Zone, Era: req.Era, Tier: wealth.Tier(), Gender: req.Gender}
	outfit := clothing.NewResolver(g.tables.Clothing, src, logger).Resolve(coord)
	outfit.Set = clothing.FilterForRegion(outfit.Set, req.Region, job.Role)

	var mark *marking.Descriptor
	if sel, ok := g.selector.Select(marking.Context{
		Zone:        req.Zone,
		Era:         req.Era,
		Gender:      req.Gender,
		Age:         req.Age,
		SocialClass: job.SocialClass,
		Profession:  job.Role,
		Occasion:    req.Occasion,
	}, src); ok {
		d := marking.Describe(sel)
		mark = &d
	}

	purse := inventory.StartingPurse(wealth, req.Era, roller)

	traits, archetypes := personality.AdjustForProfession(traits, job.Role)
	beliefs := g.assigner.Assign(ideology.Query{
		Zone:     req.Zone,
		Era:      req.Era,
		Religion: faith,
		Role:     job.Role,
		Traits:   &traits,
		Social:   &social,
	}, src)

	filled := req
	filled.Wealth = wealth
	p := Profile{
		ID:            ProfileID(filled),
		Seed:          req.Seed,
		Name:          name,
		Zone:          req.Zone,
		Era:           req.Era,
		Region:        req.Region,
		Gender:        req.Gender,
		Age:           req.Age,
		AgeGroup:      culture.AgeGroupFor(req.Age),
		Abilities:     abilities,
		Personality:   traits,
		Social:        social,
		Wealth:        wealth,
		WealthClamped: clamped,
		Religion:      faith,
		Purse:         purse,
		Profession:    job,
		Archetypes:    archetypes,
		Clothing:      outfit,
		Marking:       mark,
		Ideology:      beliefs,
	}

	p.Personality, p.Warnings = Validate(p, g.rules)
	p.Warnings = append(p.Warnings, g.scriptWarnings(p, logger)...)

	logger.Debug("profile assembled",
		zap.String("id", p.ID),
		zap.Stringer("coordinate", p.Coordinate()),
		zap.String("role", job.Role),
		zap.String("ideology", beliefs.Ideology),
		zap.Int("warnings", len(p.Warnings)),
	)
	return p, nil
}

// scriptWarnings runs the Lua coherence rules. Script problems are logged
// and never block generation.
func (g *Generator) scriptWarnings(p Profile, logger *zap.Logger) []string {
	if g.scripts == nil {
		return nil
	}
	view, err := p.View()
	if err != nil {
		logger.Warn("profile view failed; skipping scripted coherence", zap.Error(err))
		return nil
	}
	warnings, err := g.scripts.CheckCoherence(string(p.Zone), view)
	if err != nil {
		logger.Warn("scripted coherence failed", zap.Error(err))
		return nil
	}
	return warnings
}

package clothing

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

// Request is the coordinate an outfit is resolved for.
type Request = culture.Coordinate

// Stage names one step of the fallback chain.
type Stage string

const (
	StageDirect    Stage = "direct"
	StageWealth    Stage = "wealth"
	StageEra       Stage = "era"
	StageCulture   Stage = "culture"
	StageCross     Stage = "cross"
	StageGender    Stage = "gender"
	StageBestEra   Stage = "best_era"
	StageSynthetic Stage = "synthetic"
)

// Strategy is one resolver stage: a pure function from request to an
// optional outfit.
type Strategy struct {
	Stage   Stage
	Resolve func(Request) (Set, bool)
}

// FirstSuccess runs strategies in order and returns the first outfit found.
func FirstSuccess(req Request, strategies []Strategy) (Set, Stage, bool) {
	for _, s := range strategies {
		if set, ok := s.Resolve(req); ok {
			return set, s.Stage, true
		}
	}
	return Set{}, "", false
}

// Result is a resolved outfit and the stage that produced it.
type Result struct {
	Set   Set   `json:"set" yaml:"set"`
	Stage Stage `json:"stage" yaml:"stage"`
}

// Resolver resolves outfits against a catalog. It draws adaptation
// randomness from its Source and is therefore not safe for concurrent use.
type Resolver struct {
	catalog  *Catalog
	src      dice.Source
	logger   *zap.Logger
	disabled map[Stage]bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithoutStages disables the named stages. The synthetic stage cannot be
// disabled.
func WithoutStages(stages ...Stage) Option {
	return func(r *Resolver) {
		for _, s := range stages {
			if s != StageSynthetic {
				r.disabled[s] = true
			}
		}
	}
}

// NewResolver creates a Resolver over cat.
//
// Precondition: src must be non-nil. A nil catalog resolves everything
// synthetically; a nil logger disables logging.
func NewResolver(cat *Catalog, src dice.Source, logger *zap.Logger, opts ...Option) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{catalog: cat, src: src, logger: logger, disabled: make(map[Stage]bool)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Strategies returns the enabled stages in precedence order. The synthetic
// stage is always last.
func (r *Resolver) Strategies() []Strategy {
	all := []Strategy{
		{StageDirect, r.direct},
		{StageWealth, r.wealthFallback},
		{StageEra, r.eraFallback},
		{StageCulture, r.cultureFallback},
		{StageCross, r.crossFallback},
		{StageGender, r.genderFallback},
		{StageBestEra, r.bestEraFallback},
		{StageSynthetic, r.synthetic},
	}
	enabled := all[:0]
	for _, s := range all {
		if !r.disabled[s.Stage] {
			enabled = append(enabled, s)
		}
	}
	return enabled
}

// Resolve returns an outfit for req.
//
// Postcondition: Result.Set.Complete() is true.
func (r *Resolver) Resolve(req Request) Result {
	set, stage, ok := FirstSuccess(req, r.Strategies())
	if !ok {
		set, stage = synthesize(req.Redirected()), StageSynthetic
	}
	r.logger.Debug("clothing resolved",
		zap.Stringer("coordinate", req),
		zap.String("stage", string(stage)),
	)
	return Result{Set: ensureComplete(set), Stage: stage}
}

func (r *Resolver) lookup(c culture.Coordinate) (Set, bool) {
	return r.catalog.Lookup(keyOf(c))
}

func (r *Resolver) direct(req Request) (Set, bool) {
	return r.lookup(req.Redirected())
}

func (r *Resolver) wealthFallback(req Request) (Set, bool) {
	req = req.Redirected()
	for _, alt := range req.Tier.Fallbacks() {
		c := req
		c.Tier = alt
		if s, ok := r.lookup(c); ok {
			return adaptToWealth(s, alt, req.Tier, r.src), true
		}
	}
	return Set{}, false
}

func (r *Resolver) eraFallback(req Request) (Set, bool) {
	req = req.Redirected()
	for _, era := range req.Era.Neighbors() {
		c := req
		c.Era = era
		if s, ok := r.lookup(c); ok {
			return adaptToEra(s, req.Era), true
		}
	}
	return Set{}, false
}

func (r *Resolver) cultureFallback(req Request) (Set, bool) {
	req = req.Redirected()
	for _, zone := range req.Zone.Neighbors() {
		c := req
		c.Zone = zone
		if s, ok := r.lookup(c); ok {
			return adaptToCulture(s, req.Zone), true
		}
	}
	return Set{}, false
}

// crossFallback borrows from an adjacent culture in an adjacent era; the
// culture adaptation is applied before the era adaptation.
func (r *Resolver) crossFallback(req Request) (Set, bool) {
	req = req.Redirected()
	for _, zone := range req.Zone.Neighbors() {
		for _, era := range req.Era.Neighbors() {
			c := req
			c.Zone, c.Era = zone, era
			if s, ok := r.lookup(c); ok {
				return adaptToEra(adaptToCulture(s, req.Zone), req.Era), true
			}
		}
	}
	return Set{}, false
}

func (r *Resolver) genderFallback(req Request) (Set, bool) {
	req = req.Redirected()
	c := req
	c.Gender = req.Gender.Opposite()
	if s, ok := r.lookup(c); ok {
		return adaptToGender(s, req.Gender), true
	}
	return Set{}, false
}

// bestEraFallback takes the chronologically first era with any outfit for
// the zone, tier and gender.
func (r *Resolver) bestEraFallback(req Request) (Set, bool) {
	req = req.Redirected()
	for _, era := range culture.Eras {
		c := req
		c.Era = era
		if s, ok := r.lookup(c); ok {
			return adaptToEra(s, req.Era), true
		}
	}
	return Set{}, false
}

func (r *Resolver) synthetic(req Request) (Set, bool) {
	return synthesize(req.Redirected()), true
}

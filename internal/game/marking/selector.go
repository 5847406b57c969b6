package marking

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

// Selection is a chosen marking and one of its patterns.
type Selection struct {
	Definition Definition
	Pattern    Pattern
}

// Selector picks markings from a catalog.
type Selector struct {
	catalog *Catalog
	logger  *zap.Logger
}

// NewSelector creates a Selector over cat.
//
// Precondition: a nil logger disables logging.
func NewSelector(cat *Catalog, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{catalog: cat, logger: logger}
}

// Select returns zero or one marking for ctx. The prevalence roll is made
// only when at least one definition is eligible.
//
// Precondition: src must be non-nil.
func (s *Selector) Select(ctx Context, src dice.Source) (Selection, bool) {
	eligible := s.catalog.Filter(ctx)
	if len(eligible) == 0 {
		s.logger.Debug("no eligible markings", zap.String("zone", string(ctx.Zone)), zap.String("era", string(ctx.Era)))
		return Selection{}, false
	}
	p := Probability(ctx)
	if !dice.Chance(src, p) {
		s.logger.Debug("marking prevalence roll failed", zap.Float64("probability", p))
		return Selection{}, false
	}
	sel, ok := Choose(eligible, src)
	if ok {
		s.logger.Debug("marking selected",
			zap.String("marking", sel.Definition.ID),
			zap.String("pattern", sel.Pattern.Name),
			zap.Int("eligible", len(eligible)),
		)
	}
	return sel, ok
}

// Choose draws one definition by weight and then one of its patterns
// uniformly.
//
// Postcondition: ok is false iff no definition has a positive weight.
func Choose(defs []Definition, src dice.Source) (Selection, bool) {
	weights := make([]float64, len(defs))
	for i, d := range defs {
		weights[i] = d.Weight
	}
	idx := dice.WeightedIndex(src, weights)
	if idx < 0 {
		return Selection{}, false
	}
	d := defs[idx]
	return Selection{Definition: d, Pattern: dice.Pick(src, d.Patterns)}, true
}

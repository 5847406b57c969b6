package ideology

import (
	"math"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/npcgen/internal/game/character"
	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
	"github.com/cory-johannsen/npcgen/internal/game/personality"
)

const (
	// MinConviction and MaxConviction bound every held belief.
	MinConviction = 20
	MaxConviction = 100

	maxSampleAttempts = 50
	minBeliefSlots    = 3
	extraBeliefSlots  = 3
	tagModifierScale  = 0.4
)

// Minimal fallback used when even the era default is missing.
const (
	MinimalIdeology = "survivalism"
	MinimalBelief   = "survival"
)

// Selection methods recorded on an Assignment.
const (
	MethodScored     = "scored"
	MethodUniform    = "uniform"
	MethodEraDefault = "era_default"
	MethodMinimal    = "minimal"
)

// HeldBelief is a belief together with how strongly it is held.
type HeldBelief struct {
	ID         string `json:"id" yaml:"id"`
	Conviction int    `json:"conviction" yaml:"conviction"`
}

// Assignment is the assigned ideology and sampled beliefs.
type Assignment struct {
	Ideology string       `json:"ideology" yaml:"ideology"`
	Beliefs  []HeldBelief `json:"beliefs" yaml:"beliefs"`
	Method   string       `json:"method" yaml:"method"`
}

// Query is everything the assigner reads about a character. Traits and
// Social are optional; without them selection is uniform.
type Query struct {
	Zone     culture.Zone
	Era      culture.Era
	Religion string
	Role     string
	Traits   *personality.Traits
	Social   *character.SocialContext
}

// Eligible returns the ideologies whose declared zones, eras and religions
// all admit the query, in authored order.
func (c *Catalog) Eligible(zone culture.Zone, era culture.Era, religion string) []Ideology {
	var out []Ideology
	for _, i := range c.Ideologies() {
		if len(i.Zones) > 0 && !slices.Contains(i.Zones, zone) {
			continue
		}
		if len(i.Eras) > 0 && !slices.Contains(i.Eras, era) {
			continue
		}
		if len(i.Religions) > 0 && !containsFold(i.Religions, religion) {
			continue
		}
		out = append(out, i)
	}
	return out
}

// EraDefault returns the id of the default ideology for era.
func EraDefault(era culture.Era) string {
	switch era {
	case culture.EraPrehistoric:
		return "animism"
	case culture.EraModern, culture.EraFuture:
		return "secular_humanism"
	}
	return "folk_belief"
}

// Assigner assigns ideologies and beliefs from a catalog.
type Assigner struct {
	catalog *Catalog
	logger  *zap.Logger
}

// NewAssigner creates an Assigner over cat.
//
// Precondition: a nil logger disables logging.
func NewAssigner(cat *Catalog, logger *zap.Logger) *Assigner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assigner{catalog: cat, logger: logger}
}

// Assign picks an ideology for q and samples its beliefs. It never fails.
//
// Precondition: src must be non-nil.
// Postcondition: every returned conviction is in [MinConviction, MaxConviction].
func (a *Assigner) Assign(q Query, src dice.Source) Assignment {
	traits, social := personality.Neutral(), neutralSocial()
	if q.Traits != nil {
		traits = *q.Traits
	}
	if q.Social != nil {
		social = *q.Social
	}

	var (
		chosen Ideology
		method string
	)
	eligible := a.catalog.Eligible(q.Zone, q.Era, q.Religion)
	switch {
	case len(eligible) == 0:
		def, ok := a.catalog.Ideology(EraDefault(q.Era))
		if !ok {
			a.logger.Debug("no ideology available; using minimal fallback", zap.String("era", string(q.Era)))
			return Minimal()
		}
		chosen, method = def, MethodEraDefault
	case q.Traits != nil && q.Social != nil:
		chosen, method = a.rankWeighted(eligible, traits, social, q.Role, src), MethodScored
	default:
		chosen, method = dice.Pick(src, eligible), MethodUniform
	}

	beliefs := a.SampleBeliefs(chosen, traits, social, src)
	a.logger.Debug("ideology assigned",
		zap.String("ideology", chosen.ID),
		zap.String("method", method),
		zap.Int("eligible", len(eligible)),
		zap.Int("beliefs", len(beliefs)),
	)
	return Assignment{Ideology: chosen.ID, Beliefs: beliefs, Method: method}
}

// Minimal returns the hard-coded last-resort assignment.
func Minimal() Assignment {
	return Assignment{
		Ideology: MinimalIdeology,
		Beliefs:  []HeldBelief{{ID: MinimalBelief, Conviction: MaxConviction}},
		Method:   MethodMinimal,
	}
}

func (a *Assigner) rankWeighted(eligible []Ideology, t personality.Traits, s character.SocialContext, role string, src dice.Source) Ideology {
	type scored struct {
		ideology Ideology
		score    float64
	}
	ranked := make([]scored, len(eligible))
	for i, ideo := range eligible {
		ranked[i] = scored{ideology: ideo, score: Score(ideo.ID, t, s, role)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].ideology.ID < ranked[j].ideology.ID
	})
	weights := make([]float64, len(ranked))
	for i, r := range ranked {
		weights[i] = RankWeight(i, r.score)
	}
	return ranked[dice.WeightedIndex(src, weights)].ideology
}

// SampleBeliefs draws three to five belief slots and fills them from the
// ideology's declared beliefs within a fixed attempt budget. Fewer beliefs
// are returned when the budget runs out or the ideology declares fewer.
func (a *Assigner) SampleBeliefs(ideo Ideology, t personality.Traits, s character.SocialContext, src dice.Source) []HeldBelief {
	slots := minBeliefSlots + src.Intn(extraBeliefSlots)
	remaining := ideo.BeliefIDs()
	held := make([]HeldBelief, 0, slots)
	for attempt := 0; attempt < maxSampleAttempts && len(held) < slots && len(remaining) > 0; attempt++ {
		i := src.Intn(len(remaining))
		id := remaining[i]
		b, ok := a.catalog.Belief(id)
		if !ok {
			b = Belief{ID: id}
		}
		if src.Float64() < AdoptionProbability(ideo.Beliefs[id], b, t, s) {
			held = append(held, HeldBelief{ID: id, Conviction: Conviction(src.Float64(), t)})
			remaining = slices.Delete(remaining, i, i+1)
		}
	}
	return held
}

// AdoptionProbability adjusts a belief's base probability by personality:
// religious beliefs by religiosity, progressive by openness, traditional
// against openness, ethical and community beliefs by agreeableness.
func AdoptionProbability(base float64, b Belief, t personality.Traits, s character.SocialContext) float64 {
	p := base
	if b.HasTag(TagReligious) {
		p += tagModifierScale * (s.Religiosity - 0.5)
	}
	if b.HasTag(TagProgressive) {
		p += tagModifierScale * (t.Openness - 0.5)
	}
	if b.HasTag(TagTraditional) {
		p -= tagModifierScale * (t.Openness - 0.5)
	}
	if b.HasTag(TagEthical) || b.HasTag(TagCommunity) {
		p += tagModifierScale * (t.Agreeableness - 0.5)
	}
	return p
}

// Conviction turns a uniform draw in [0, 1) into a conviction, raised by
// conscientiousness and lowered by openness and neuroticism.
//
// Postcondition: MinConviction <= result <= MaxConviction.
func Conviction(draw float64, t personality.Traits) int {
	v := MinConviction + draw*(MaxConviction-MinConviction)
	v += (t.Conscientiousness - 0.5) * 30
	v -= (t.Openness - 0.5) * 20
	v -= (t.Neuroticism - 0.5) * 20
	v = math.Max(MinConviction, math.Min(MaxConviction, v))
	return int(math.Round(v))
}

func neutralSocial() character.SocialContext {
	return character.SocialContext{Privilege: 0.5, Wanderlust: 0.5, Religiosity: 0.5, Ambition: 0.5, Entrepreneurial: 0.5}
}

func containsFold(list []string, v string) bool {
	for _, x := range list {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}

package ideology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/npcgen/internal/game/character"
	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
	"github.com/cory-johannsen/npcgen/internal/game/ideology"
	"github.com/cory-johannsen/npcgen/internal/game/personality"
)

const beliefsYAML = `
beliefs:
  - {id: divine_order, tags: [religious, traditional]}
  - {id: reform, tags: [progressive]}
  - {id: charity, tags: [ethical, community]}
  - {id: hierarchy, tags: [traditional]}
  - {id: fair_trade, tags: [ethical]}
  - {id: spirits, tags: [religious]}
  - {id: kinship, tags: [community]}
  - {id: reason, tags: [progressive]}
`

const ideologiesYAML = `
ideologies:
  - id: feudal_conservatism
    zones: [EUROPEAN]
    eras: [MEDIEVAL, RENAISSANCE]
    beliefs: {divine_order: 0.9, hierarchy: 0.9, charity: 0.6, kinship: 0.5}
  - id: radical_reformism
    zones: [EUROPEAN]
    eras: [MEDIEVAL, RENAISSANCE, EARLY_MODERN]
    religions: [christianity]
    beliefs: {reform: 0.9, reason: 0.8, charity: 0.5, fair_trade: 0.5}
  - id: mercantilism
    eras: [RENAISSANCE, EARLY_MODERN]
    beliefs: {fair_trade: 0.9, reason: 0.6, hierarchy: 0.4}
  - id: folk_belief
    zones: [EUROPEAN]
    eras: [ANCIENT]
    beliefs: {spirits: 0.9, kinship: 0.9, charity: 0.7}
`

func loadCatalog(t *testing.T) *ideology.Catalog {
	t.Helper()
	cat, err := ideology.LoadCatalogFromBytes([]byte(ideologiesYAML), []byte(beliefsYAML))
	require.NoError(t, err)
	return cat
}

func ids(is []ideology.Ideology) []string {
	out := make([]string, len(is))
	for i, x := range is {
		out[i] = x.ID
	}
	return out
}

func TestEligible_FiltersAllAxes(t *testing.T) {
	cat := loadCatalog(t)
	assert.Equal(t, []string{"feudal_conservatism", "radical_reformism"},
		ids(cat.Eligible(culture.ZoneEuropean, culture.EraMedieval, "Christianity")))
	assert.Equal(t, []string{"feudal_conservatism"},
		ids(cat.Eligible(culture.ZoneEuropean, culture.EraMedieval, "judaism")))
	assert.Equal(t, []string{"mercantilism"},
		ids(cat.Eligible(culture.ZoneEastAsian, culture.EraRenaissance, "buddhism")))
	assert.Empty(t, cat.Eligible(culture.ZoneEastAsian, culture.EraModern, "buddhism"))
}

func TestAssign_EraDefaultThenMinimal(t *testing.T) {
	a := ideology.NewAssigner(loadCatalog(t), zaptest.NewLogger(t))

	got := a.Assign(ideology.Query{Zone: culture.ZoneOceania, Era: culture.EraMedieval}, dice.NewSeededSource(1))
	assert.Equal(t, "folk_belief", got.Ideology)
	assert.Equal(t, ideology.MethodEraDefault, got.Method)

	got = a.Assign(ideology.Query{Zone: culture.ZoneOceania, Era: culture.EraModern}, dice.NewSeededSource(1))
	assert.Equal(t, ideology.Minimal(), got)
	require.Len(t, got.Beliefs, 1)
	assert.Equal(t, 100, got.Beliefs[0].Conviction)
}

func TestEraDefault(t *testing.T) {
	assert.Equal(t, "animism", ideology.EraDefault(culture.EraPrehistoric))
	assert.Equal(t, "secular_humanism", ideology.EraDefault(culture.EraFuture))
	assert.Equal(t, "folk_belief", ideology.EraDefault(culture.EraClassical))
}

func TestAssign_UniformWithoutPersonality(t *testing.T) {
	a := ideology.NewAssigner(loadCatalog(t), nil)
	got := a.Assign(ideology.Query{Zone: culture.ZoneEuropean, Era: culture.EraMedieval, Religion: "christianity"}, dice.NewSeededSource(3))
	assert.Equal(t, ideology.MethodUniform, got.Method)
	assert.Contains(t, []string{"feudal_conservatism", "radical_reformism"}, got.Ideology)
}

func TestScore_RevolutionaryProfession(t *testing.T) {
	tr, soc := personality.Neutral(), character.SocialContext{Privilege: 0.5, Religiosity: 0.5, Ambition: 0.5, Entrepreneurial: 0.5}
	assert.InDelta(t, -100, ideology.Score("feudal_conservatism", tr, soc, "Revolutionary"), 1e-9)
	assert.InDelta(t, 40, ideology.Score("radical_reformism", tr, soc, "revolutionary"), 1e-9)
	assert.InDelta(t, 0, ideology.Score("radical_reformism", tr, soc, "farmer"), 1e-9)
}

func TestScore_PersonalityAlignment(t *testing.T) {
	soc := character.SocialContext{Privilege: 0.5, Religiosity: 0.5, Ambition: 0.5, Entrepreneurial: 0.5}
	open := personality.Traits{Openness: 1, Conscientiousness: 0.5, Extraversion: 0.5, Agreeableness: 0.5, Neuroticism: 0.5}
	closed := open
	closed.Openness = 0
	assert.Greater(t, ideology.Score("radical_reformism", open, soc, ""), ideology.Score("radical_reformism", closed, soc, ""))
	assert.Greater(t, ideology.Score("feudal_conservatism", closed, soc, ""), ideology.Score("feudal_conservatism", open, soc, ""))
}

func TestRankWeight(t *testing.T) {
	assert.Equal(t, 100.0, ideology.RankWeight(0, 0))
	assert.Equal(t, 85.0, ideology.RankWeight(1, 0))
	assert.Equal(t, 1.0, ideology.RankWeight(2, -500))
}

// TestAssign_RevolutionaryAvoidsConservatism checks that the -100 penalty
// makes a conservative ideology rare for a revolutionary.
func TestAssign_RevolutionaryAvoidsConservatism(t *testing.T) {
	a := ideology.NewAssigner(loadCatalog(t), nil)
	tr := personality.Neutral()
	soc := character.SocialContext{Privilege: 0.5, Religiosity: 0.5, Ambition: 0.5, Entrepreneurial: 0.5}
	q := ideology.Query{Zone: culture.ZoneEuropean, Era: culture.EraMedieval, Religion: "christianity", Role: "revolutionary", Traits: &tr, Social: &soc}
	counts := map[string]int{}
	for seed := int64(0); seed < 2000; seed++ {
		got := a.Assign(q, dice.NewSeededSource(seed))
		require.Equal(t, ideology.MethodScored, got.Method)
		counts[got.Ideology]++
	}
	assert.Greater(t, counts["radical_reformism"], 20*counts["feudal_conservatism"])
}

func TestSampleBeliefs_CountAndUniqueness(t *testing.T) {
	cat := loadCatalog(t)
	a := ideology.NewAssigner(cat, nil)
	ideo, ok := cat.Ideology("feudal_conservatism")
	require.True(t, ok)
	for seed := int64(0); seed < 200; seed++ {
		held := a.SampleBeliefs(ideo, personality.Neutral(), character.SocialContext{Religiosity: 0.5}, dice.NewSeededSource(seed))
		assert.LessOrEqual(t, len(held), 4)
		seen := map[string]bool{}
		for _, h := range held {
			assert.False(t, seen[h.ID], "belief %s assigned twice", h.ID)
			seen[h.ID] = true
			_, declared := ideo.Beliefs[h.ID]
			assert.True(t, declared)
		}
	}
}

func TestAdoptionProbability_TagModifiers(t *testing.T) {
	open := personality.Neutral()
	open.Openness = 1
	soc := character.SocialContext{Religiosity: 1}

	assert.InDelta(t, 0.7, ideology.AdoptionProbability(0.5, ideology.Belief{Tags: []string{"progressive"}}, open, soc), 1e-9)
	assert.InDelta(t, 0.3, ideology.AdoptionProbability(0.5, ideology.Belief{Tags: []string{"traditional"}}, open, soc), 1e-9)
	assert.InDelta(t, 0.7, ideology.AdoptionProbability(0.5, ideology.Belief{Tags: []string{"religious"}}, personality.Neutral(), soc), 1e-9)
	assert.InDelta(t, 0.5, ideology.AdoptionProbability(0.5, ideology.Belief{}, open, soc), 1e-9)
}

func TestConviction_ExtremePersonalities(t *testing.T) {
	zero := personality.Traits{}
	one := personality.Traits{Openness: 1, Conscientiousness: 1, Extraversion: 1, Agreeableness: 1, Neuroticism: 1}
	for _, draw := range []float64{0, 0.25, 0.5, 0.999999} {
		for _, tr := range []personality.Traits{zero, one} {
			c := ideology.Conviction(draw, tr)
			assert.GreaterOrEqual(t, c, ideology.MinConviction)
			assert.LessOrEqual(t, c, ideology.MaxConviction)
		}
	}
	assert.Equal(t, 20, ideology.Conviction(0, personality.Neutral()))
	assert.Equal(t, 60, ideology.Conviction(0.5, personality.Neutral()))
}

func TestProperty_ConvictionInRange(t *testing.T) {
	a := ideology.NewAssigner(loadCatalog(t), nil)
	rapid.Check(t, func(rt *rapid.T) {
		tr := personality.Traits{
			Openness:          rapid.Float64Range(0, 1).Draw(rt, "o"),
			Conscientiousness: rapid.Float64Range(0, 1).Draw(rt, "c"),
			Extraversion:      rapid.Float64Range(0, 1).Draw(rt, "e"),
			Agreeableness:     rapid.Float64Range(0, 1).Draw(rt, "a"),
			Neuroticism:       rapid.Float64Range(0, 1).Draw(rt, "n"),
		}
		soc := character.SocialContext{Religiosity: rapid.Float64Range(0, 1).Draw(rt, "religiosity")}
		q := ideology.Query{
			Zone: culture.ZoneEuropean, Era: rapid.SampledFrom(culture.Eras).Draw(rt, "era"),
			Religion: "christianity", Traits: &tr, Social: &soc,
		}
		got := a.Assign(q, dice.NewSeededSource(rapid.Int64().Draw(rt, "seed")))
		for _, b := range got.Beliefs {
			assert.GreaterOrEqual(rt, b.Conviction, ideology.MinConviction)
			assert.LessOrEqual(rt, b.Conviction, ideology.MaxConviction)
		}
	})
}

func TestLoadCatalog_Rejects(t *testing.T) {
	cases := map[string][2]string{
		"unknown belief":   {"ideologies: [{id: x, beliefs: {ghost: 0.5}}]", beliefsYAML},
		"probability":      {"ideologies: [{id: x, beliefs: {reform: 1.5}}]", beliefsYAML},
		"no beliefs":       {"ideologies: [{id: x}]", beliefsYAML},
		"duplicate":        {"ideologies: [{id: x, beliefs: {reform: 0.5}}, {id: x, beliefs: {reform: 0.5}}]", beliefsYAML},
		"bad era":          {"ideologies: [{id: x, eras: [STONE], beliefs: {reform: 0.5}}]", beliefsYAML},
		"belief no id":     {"ideologies: []", "beliefs: [{tags: [religious]}]"},
		"malformed belief": {"ideologies: []", "beliefs: ["},
	}
	for name, docs := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ideology.LoadCatalogFromBytes([]byte(docs[0]), []byte(docs[1]))
			assert.Error(t, err)
		})
	}
}

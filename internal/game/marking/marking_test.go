package marking_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
	"github.com/cory-johannsen/npcgen/internal/game/marking"
)

const fixtureYAML = `
markings:
  - id: moko
    name: Ta Moko
    type: tattoo
    zones: [OCEANIA]
    age_groups: [adult, elder]
    permanent: true
    weight: 3
    significance: lineage and rank
    patterns:
      - {name: moko_spiral, locations: [face], colors: [black], size: large}
  - id: sailor_anchor
    name: Sailor's Anchor
    type: tattoo
    zones: [EUROPEAN, NORTH_AMERICAN_COLONIAL]
    eras: [EARLY_MODERN, INDUSTRIAL]
    professions: [sailor]
    permanent: true
    patterns:
      - {name: anchor_band, locations: [forearm], colors: [blue]}
  - id: wedding_henna
    name: Bridal Henna
    type: henna
    zones: [MENA, SOUTH_ASIAN]
    genders: [Female]
    occasions: [wedding]
    duration: two weeks
    patterns:
      - {name: mehndi_vine, locations: [hands, feet], colors: [red-brown]}
  - id: kohl
    name: Kohl
    type: paint
    zones: [MENA]
    patterns:
      - {name: eye_liner, locations: [eyes], colors: [black]}
`

func loadFixture(t *testing.T) *marking.Catalog {
	t.Helper()
	cat, err := marking.LoadCatalogFromBytes([]byte(fixtureYAML))
	require.NoError(t, err)
	return cat
}

func ids(defs []marking.Definition) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.ID
	}
	return out
}

func TestLoadCatalog_DefaultsWeight(t *testing.T) {
	cat := loadFixture(t)
	require.Equal(t, 4, cat.Len())
	defs := cat.Definitions()
	assert.Equal(t, 3.0, defs[0].Weight)
	assert.Equal(t, 1.0, defs[1].Weight)
}

func TestLoadCatalog_ExplicitZeroWeightDisablesMarking(t *testing.T) {
	cat, err := marking.LoadCatalogFromBytes([]byte(`
markings:
  - id: retired
    type: paint
    zones: [MENA]
    weight: 0
    patterns: [{name: old}]
  - id: kohl
    type: paint
    zones: [MENA]
    patterns: [{name: eye_liner}]
`))
	require.NoError(t, err)
	defs := cat.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, 0.0, defs[0].Weight)
	assert.Equal(t, 1.0, defs[1].Weight)

	sel := marking.NewSelector(cat, zaptest.NewLogger(t))
	ctx := marking.Context{Zone: culture.ZoneMENA, Era: culture.EraMedieval, Age: 30}
	for seed := int64(0); seed < 100; seed++ {
		s, ok := sel.Select(ctx, dice.NewSeededSource(seed))
		if ok {
			assert.Equal(t, "kohl", s.Definition.ID)
		}
	}
}

func TestLoadCatalog_Rejects(t *testing.T) {
	cases := map[string]string{
		"no zones":     "markings: [{id: a, type: tattoo, patterns: [{name: x}]}]",
		"bad type":     "markings: [{id: a, type: glitter, zones: [MENA], patterns: [{name: x}]}]",
		"no patterns":  "markings: [{id: a, type: tattoo, zones: [MENA]}]",
		"bad zone":     "markings: [{id: a, type: tattoo, zones: [MARS], patterns: [{name: x}]}]",
		"duplicate id": "markings: [{id: a, type: ash, zones: [MENA], patterns: [{name: x}]}, {id: a, type: ash, zones: [MENA], patterns: [{name: y}]}]",
		"bad yaml":     "markings: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := marking.LoadCatalogFromBytes([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestFilter_ZoneIsMandatory(t *testing.T) {
	cat := loadFixture(t)
	got := cat.Filter(marking.Context{Zone: culture.ZoneEastAsian, Era: culture.EraMedieval, Age: 30})
	assert.Empty(t, got)
}

func TestFilter_UndeclaredAxesAreWildcards(t *testing.T) {
	cat := loadFixture(t)
	got := cat.Filter(marking.Context{Zone: culture.ZoneMENA, Era: culture.EraFuture, Gender: culture.GenderMale, Age: 70})
	assert.Equal(t, []string{"kohl"}, ids(got))
}

func TestFilter_DeclaredAxesRestrict(t *testing.T) {
	cat := loadFixture(t)
	bride := marking.Context{Zone: culture.ZoneMENA, Era: culture.EraMedieval, Gender: culture.GenderFemale, Age: 19, Occasion: "Wedding"}
	assert.Equal(t, []string{"wedding_henna", "kohl"}, ids(cat.Filter(bride)))

	bride.Occasion = "market"
	assert.Equal(t, []string{"kohl"}, ids(cat.Filter(bride)))

	child := marking.Context{Zone: culture.ZoneOceania, Era: culture.EraMedieval, Age: 10}
	assert.Empty(t, cat.Filter(child))
	child.Age = 30
	assert.Equal(t, []string{"moko"}, ids(cat.Filter(child)))
}

func TestFilter_ProfessionSubstringEitherDirection(t *testing.T) {
	cat := loadFixture(t)
	ctx := marking.Context{Zone: culture.ZoneEuropean, Era: culture.EraIndustrial, Age: 30, Profession: "Merchant Sailor"}
	assert.Equal(t, []string{"sailor_anchor"}, ids(cat.Filter(ctx)))

	ctx.Profession = "SAIL"
	assert.Equal(t, []string{"sailor_anchor"}, ids(cat.Filter(ctx)))

	ctx.Profession = "baker"
	assert.Empty(t, cat.Filter(ctx))

	ctx.Profession = ""
	assert.Empty(t, cat.Filter(ctx))
}

func TestProbability_Modifiers(t *testing.T) {
	base := marking.Probability(marking.Context{Zone: culture.ZoneEuropean, Era: culture.EraRenaissance})
	assert.InDelta(t, 0.08, base, 1e-9)

	medieval := marking.Probability(marking.Context{Zone: culture.ZoneEuropean, Era: culture.EraMedieval})
	assert.InDelta(t, 0.04, medieval, 1e-9)

	modern := marking.Probability(marking.Context{Zone: culture.ZoneEastAsian, Era: culture.EraModern})
	assert.InDelta(t, 0.072, modern, 1e-9)

	sailor := marking.Probability(marking.Context{Zone: culture.ZoneEuropean, Era: culture.EraRenaissance, Profession: "sailor"})
	assert.InDelta(t, 0.144, sailor, 1e-9)

	merchant := marking.Probability(marking.Context{Zone: culture.ZoneEuropean, Era: culture.EraRenaissance, Profession: "Spice Merchant"})
	assert.InDelta(t, 0.064, merchant, 1e-9)
}

func TestProbability_Clamped(t *testing.T) {
	p := marking.Probability(marking.Context{Zone: culture.ZoneOceania, Era: culture.EraPrehistoric, Profession: "shaman"})
	assert.Equal(t, marking.MaxProbability, p)
}

func TestProperty_ProbabilityInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := marking.Context{
			Zone:       rapid.SampledFrom(culture.Zones).Draw(rt, "zone"),
			Era:        rapid.SampledFrom(culture.Eras).Draw(rt, "era"),
			Profession: rapid.SampledFrom([]string{"", "sailor", "priest", "merchant", "baker"}).Draw(rt, "profession"),
		}
		p := marking.Probability(ctx)
		assert.GreaterOrEqual(rt, p, 0.0)
		assert.LessOrEqual(rt, p, marking.MaxProbability)
	})
}

// TestChoose_WeightedRatio checks that weights 8 and 2 are chosen about 4:1.
func TestChoose_WeightedRatio(t *testing.T) {
	defs := []marking.Definition{
		{ID: "heavy", Weight: 8, Patterns: []marking.Pattern{{Name: "a"}}},
		{ID: "light", Weight: 2, Patterns: []marking.Pattern{{Name: "b"}}},
	}
	src := dice.NewSeededSource(2024)
	counts := map[string]int{}
	for i := 0; i < 20000; i++ {
		sel, ok := marking.Choose(defs, src)
		require.True(t, ok)
		counts[sel.Definition.ID]++
	}
	assert.InDelta(t, 4.0, float64(counts["heavy"])/float64(counts["light"]), 0.3)
}

func TestChoose_AllZeroWeights(t *testing.T) {
	defs := []marking.Definition{{ID: "x", Patterns: []marking.Pattern{{Name: "a"}}}}
	_, ok := marking.Choose(defs, dice.NewSeededSource(1))
	assert.False(t, ok)
}

func TestSelector_SelectsOnlyEligible(t *testing.T) {
	sel := marking.NewSelector(loadFixture(t), zaptest.NewLogger(t))
	ctx := marking.Context{Zone: culture.ZoneOceania, Era: culture.EraPrehistoric, Age: 40, Profession: "shaman"}
	hits := 0
	for seed := int64(0); seed < 200; seed++ {
		s, ok := sel.Select(ctx, dice.NewSeededSource(seed))
		if !ok {
			continue
		}
		hits++
		assert.Equal(t, "moko", s.Definition.ID)
	}
	assert.Greater(t, hits, 150)
}

func TestSelector_NoEligibleNoMarking(t *testing.T) {
	sel := marking.NewSelector(loadFixture(t), nil)
	_, ok := sel.Select(marking.Context{Zone: culture.ZoneEastAsian, Era: culture.EraMedieval, Age: 30}, dice.NewSeededSource(1))
	assert.False(t, ok)
}

func TestDescribe_Remapping(t *testing.T) {
	cat := loadFixture(t)
	defs := cat.Definitions()

	kohl := marking.Describe(marking.Selection{Definition: defs[3], Pattern: defs[3].Patterns[0]})
	assert.Equal(t, marking.PatternEyeBand, kohl.Pattern)

	henna := marking.Describe(marking.Selection{Definition: defs[2], Pattern: defs[2].Patterns[0]})
	assert.Equal(t, marking.PatternHennaLace, henna.Pattern)
	assert.Equal(t, "two weeks", henna.Duration)
	assert.Equal(t, "medium", henna.Size)
}

func TestDescribe_BespokeShapes(t *testing.T) {
	scar := marking.Definition{ID: "s", Type: marking.TypeScarification, Significance: "initiation",
		Patterns: []marking.Pattern{{Name: "geometric_chevrons", Locations: []string{"chest"}}}}
	d := marking.Describe(marking.Selection{Definition: scar, Pattern: scar.Patterns[0]})
	assert.Equal(t, marking.PatternScarification, d.Pattern)
	require.NotNil(t, d.Scarification)
	assert.Equal(t, "geometric_chevrons", d.Scarification.Motif)
	assert.True(t, d.Permanent)
	assert.Nil(t, d.Piercing)

	lip := marking.Definition{ID: "p", Type: marking.TypePiercing,
		Patterns: []marking.Pattern{{Name: "lip_plate", Locations: []string{"lower lip"}, Colors: []string{"clay"}}}}
	d = marking.Describe(marking.Selection{Definition: lip, Pattern: lip.Patterns[0]})
	require.NotNil(t, d.Piercing)
	assert.Equal(t, "clay", d.Piercing.Material)

	skull := marking.Definition{ID: "h", Type: marking.TypeStructural, Permanent: true, Significance: "nobility",
		Patterns: []marking.Pattern{{Name: "head_binding"}}}
	d = marking.Describe(marking.Selection{Definition: skull, Pattern: skull.Patterns[0]})
	require.NotNil(t, d.Structural)
	assert.True(t, d.Structural.Permanent)
	assert.Equal(t, "nobility", d.Structural.Significance)
}

func TestProperty_NormalizePatternInVocabulary(t *testing.T) {
	types := []marking.Type{
		marking.TypeTattoo, marking.TypePaint, marking.TypeScarification, marking.TypePiercing,
		marking.TypeBrand, marking.TypeHenna, marking.TypeAsh, marking.TypeStructural,
	}
	rapid.Check(t, func(rt *rapid.T) {
		typ := rapid.SampledFrom(types).Draw(rt, "type")
		name := rapid.String().Draw(rt, "name")
		assert.True(rt, slices.Contains(marking.Vocabulary, marking.NormalizePattern(typ, name)))
	})
}

package profession_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/npcgen/internal/game/character"
	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
	"github.com/cory-johannsen/npcgen/internal/game/profession"
)

const fixtureYAML = `
tables:
  - zone: EUROPEAN
    era: MEDIEVAL
    classes:
      commoner:
        farmer: {min_stats: {strength: 8}, emoji: "🌾"}
        miller: {min_stats: {craftiness: 10}}
      nobility:
        courtier: {court: true, min_social: {privilege: 0.6}}
      clergy:
        nun: {gender: Female, min_stats: {wisdom: 9}}
        monk: {gender: Male}
      military:
        knight: {min_stats: {strength: 14}, max_stats: {craftiness: 16}}
      clan:
        gillie: {}
      maritime:
        fisherman: {}
regions:
  - match: highlands
    context: rural
    exclusive_classes: [clan]
  - match: alps
    excluded_roles: [miller, fisherman]
`

func newScorer(t *testing.T) (*profession.Scorer, *profession.Catalog) {
	t.Helper()
	cat, err := profession.LoadCatalogFromBytes([]byte(fixtureYAML))
	require.NoError(t, err)
	return profession.NewScorer(cat, zaptest.NewLogger(t)), cat
}

func abilities(v int) character.AbilityScores {
	return character.AbilityScores{
		Strength: v, Dexterity: v, Constitution: v, Intelligence: v,
		Wisdom: v, Charisma: v, Perception: v, Craftiness: v,
	}
}

func baseQuery() profession.Query {
	return profession.Query{
		Zone:      culture.ZoneEuropean,
		Era:       culture.EraMedieval,
		Gender:    culture.GenderMale,
		Wealth:    culture.WealthModest,
		Abilities: abilities(12),
		Social:    character.SocialContext{Privilege: 0.3},
	}
}

func rolesSeen(s *profession.Scorer, q profession.Query, n int) map[string]bool {
	seen := map[string]bool{}
	for seed := int64(0); seed < int64(n); seed++ {
		seen[s.Assign(q, dice.NewSeededSource(seed)).Role] = true
	}
	return seen
}

func TestAssign_GenderBiasRespected(t *testing.T) {
	s, _ := newScorer(t)
	q := baseQuery()
	seen := rolesSeen(s, q, 300)
	assert.True(t, seen["monk"])
	assert.False(t, seen["nun"])

	q.Gender = culture.GenderFemale
	seen = rolesSeen(s, q, 300)
	assert.True(t, seen["nun"])
	assert.False(t, seen["monk"])
}

func TestAssign_CourtRolesNeedWealth(t *testing.T) {
	s, _ := newScorer(t)
	q := baseQuery()
	q.Social.Privilege = 0.95
	assert.False(t, rolesSeen(s, q, 300)["courtier"])

	q.Wealth = culture.WealthNoble
	assert.True(t, rolesSeen(s, q, 300)["courtier"])
}

func TestAssign_RegionExclusiveClass(t *testing.T) {
	s, _ := newScorer(t)
	q := baseQuery()
	assert.False(t, rolesSeen(s, q, 300)["gillie"], "clan roles must not appear outside their region")

	q.Region = "Scottish Highlands"
	seen := rolesSeen(s, q, 300)
	assert.True(t, seen["gillie"])
	assert.False(t, seen["fisherman"], "maritime class is not plausible in a rural context")
}

func TestAssign_RegionExcludedRole(t *testing.T) {
	s, _ := newScorer(t)
	q := baseQuery()
	assert.True(t, rolesSeen(s, q, 300)["miller"])
	q.Region = "Swiss Alps"
	assert.False(t, rolesSeen(s, q, 300)["miller"])
}

func TestAssign_PreferredRole(t *testing.T) {
	s, _ := newScorer(t)
	q := baseQuery()
	q.Abilities.Strength = 15
	q.PreferredRole = "Knight"
	for seed := int64(0); seed < 20; seed++ {
		a := s.Assign(q, dice.NewSeededSource(seed))
		assert.Equal(t, "knight", a.Role)
		assert.Equal(t, "military", a.SocialClass)
	}

	q.Abilities.Strength = 10
	for seed := int64(0); seed < 50; seed++ {
		assert.NotEqual(t, "knight", s.Assign(q, dice.NewSeededSource(seed)).Role)
	}
}

func TestAssign_NeighborZoneTable(t *testing.T) {
	s, _ := newScorer(t)
	q := baseQuery()
	q.Zone = culture.ZoneMENA
	a := s.Assign(q, dice.NewSeededSource(1))
	assert.False(t, a.Fallback)
}

func TestAssign_FallbackWithoutTable(t *testing.T) {
	s, _ := newScorer(t)
	q := baseQuery()
	q.Zone = culture.ZoneOceania
	q.Gender = culture.GenderFemale
	a := s.Assign(q, dice.NewSeededSource(4))
	assert.True(t, a.Fallback)
	assert.Equal(t, "commoner", a.SocialClass)
	assert.Contains(t, []string{"weaver", "farmer", "wanderer", "herder", "midwife"}, a.Role)
}

func TestAssign_FallbackWhenEveryRoleDisqualified(t *testing.T) {
	s, _ := newScorer(t)
	q := baseQuery()
	q.Abilities = abilities(3)
	q.Gender = culture.GenderFemale
	q.Region = "Swiss Alps"
	a := s.Assign(q, dice.NewSeededSource(9))
	assert.True(t, a.Fallback)
}

func TestAssign_DeterministicDefaultWithoutGender(t *testing.T) {
	s, _ := newScorer(t)
	q := baseQuery()
	q.Zone = culture.ZoneOceania
	q.Gender = ""
	q.Wealth = culture.WealthPoor
	assert.Equal(t, "laborer", s.Assign(q, dice.NewSeededSource(1)).Role)
	q.Wealth = culture.WealthWealthy
	assert.Equal(t, "wanderer", s.Assign(q, dice.NewSeededSource(1)).Role)
}

func TestProperty_AssignNeverViolatesBounds(t *testing.T) {
	s, cat := newScorer(t)
	table, ok := cat.Table(culture.ZoneEuropean, culture.EraMedieval)
	require.True(t, ok)

	rapid.Check(t, func(rt *rapid.T) {
		q := baseQuery()
		for _, name := range character.AbilityNames {
			q.Abilities.Set(name, rapid.IntRange(3, 18).Draw(rt, name))
		}
		q.Social.Privilege = rapid.Float64Range(0, 1).Draw(rt, "privilege")
		q.Wealth = rapid.SampledFrom(culture.Wealths).Draw(rt, "wealth")
		q.Gender = rapid.SampledFrom([]culture.Gender{culture.GenderMale, culture.GenderFemale}).Draw(rt, "gender")

		a := s.Assign(q, dice.NewSeededSource(rapid.Int64().Draw(rt, "seed")))
		if a.Fallback {
			return
		}
		req := table[a.SocialClass][a.Role]
		for name, lo := range req.MinStats {
			v, _ := q.Abilities.Get(name)
			assert.GreaterOrEqual(rt, v, lo, "%s below minimum for %s", name, a.Role)
		}
		for name, hi := range req.MaxStats {
			v, _ := q.Abilities.Get(name)
			assert.LessOrEqual(rt, v, hi, "%s above maximum for %s", name, a.Role)
		}
		for name, lo := range req.MinSocial {
			v, _ := q.Social.Get(name)
			assert.GreaterOrEqual(rt, v, lo)
		}
	})
}

func TestScore_PenaltyAndBonus(t *testing.T) {
	req := profession.Requirement{MinStats: map[string]int{"strength": 14}}
	assert.Less(t, profession.Score(req, abilities(10), character.SocialContext{}), 0.0)
	assert.InDelta(t, 11.0, profession.Score(req, abilities(16), character.SocialContext{}), 1e-9)
	assert.InDelta(t, 12.0, profession.Score(req, abilities(18), character.SocialContext{}), 1e-9)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, profession.ContextMaritime, profession.Classify("Boston Harbor", culture.ZoneNorthAmericanColonial, culture.EraEarlyModern, nil))
	assert.Equal(t, profession.ContextFrontier, profession.Classify("Ohio Territory", culture.ZoneNorthAmericanColonial, culture.EraEarlyModern, nil))
	assert.Equal(t, profession.ContextNative, profession.Classify("", culture.ZoneNorthAmericanNative, culture.EraAncient, nil))
	assert.Equal(t, profession.ContextGeneral, profession.Classify("", culture.ZoneEuropean, culture.EraMedieval, nil))
	rules := []profession.RegionRule{{Match: "x", Context: profession.ContextUrban}}
	assert.Equal(t, profession.ContextUrban, profession.Classify("village", culture.ZoneEuropean, culture.EraMedieval, rules))
}

func TestClassAllowed_FallbackAllowance(t *testing.T) {
	assert.True(t, profession.ClassAllowed(profession.ContextNative, "merchant"))
	assert.False(t, profession.ClassAllowed(profession.ContextNative, "nobility"))
	assert.True(t, profession.ClassAllowed(profession.ContextGeneral, "anything"))
}

func TestLoadCatalog_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown ability": "tables: [{zone: EUROPEAN, era: MEDIEVAL, classes: {c: {r: {min_stats: {luck: 3}}}}}]",
		"inverted bounds": "tables: [{zone: EUROPEAN, era: MEDIEVAL, classes: {c: {r: {min_stats: {strength: 12}, max_stats: {strength: 8}}}}}]",
		"bad zone":        "tables: [{zone: NARNIA, era: MEDIEVAL, classes: {}}]",
		"bad context":     "regions: [{match: x, context: orbital}]",
		"empty match":     "regions: [{context: urban}]",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := profession.LoadCatalogFromBytes([]byte(doc))
			assert.Error(t, err)
		})
	}
}

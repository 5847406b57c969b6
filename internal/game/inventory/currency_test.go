package inventory

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

func TestCurrency_Decompose_Zero(t *testing.T) {
	counts := sterling.Decompose(0)
	for i, n := range counts {
		if n != 0 {
			t.Fatalf("denomination %d: expected 0 got %d", i, n)
		}
	}
}

func TestCurrency_Decompose_Mixed(t *testing.T) {
	counts := sterling.Decompose(2*240 + 12 + 4)
	if counts[0] != 2 || counts[1] != 1 || counts[2] != 4 {
		t.Fatalf("expected 2,1,4 got %v", counts)
	}
}

func TestCurrency_Format(t *testing.T) {
	cases := []struct {
		c     Currency
		total int
		want  string
	}{
		{sterling, 0, "0 Pennies"},
		{sterling, 1, "1 Penny"},
		{sterling, 2*240 + 12 + 4, "2 Pounds, 1 Shilling, 4 Pennies"},
		{sterling, 240, "1 Pound"},
		{dollars, 1250, "12 Dollars, 50 Cents"},
		{denarii, 33, "2 Denarii, 1 As"},
		{credits, 70, "70 Credits"},
	}
	for _, tc := range cases {
		if got := tc.c.Format(tc.total); got != tc.want {
			t.Fatalf("%s %d: expected %q got %q", tc.c.ID, tc.total, tc.want, got)
		}
	}
}

func TestCurrency_EveryEraEndsInBaseUnit(t *testing.T) {
	for _, era := range culture.Eras {
		c := CurrencyFor(era)
		if len(c.Denominations) == 0 || c.Denominations[len(c.Denominations)-1].Value != 1 {
			t.Fatalf("%s: smallest denomination must have value 1", era)
		}
		if got, ok := CurrencyByID(c.ID); !ok || got.ID != c.ID {
			t.Fatalf("%s: currency %q not found by id", era, c.ID)
		}
	}
}

func TestProperty_Decompose_Roundtrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(0, 1_000_000).Draw(t, "total")
		c := CurrencyFor(rapid.SampledFrom(culture.Eras).Draw(t, "era"))
		sum := 0
		for i, n := range c.Decompose(total) {
			sum += n * c.Denominations[i].Value
			if i > 0 && n*c.Denominations[i].Value >= c.Denominations[i-1].Value {
				t.Fatalf("denomination %d overflows into %d", i, i-1)
			}
		}
		if sum != total {
			t.Fatalf("expected %d got %d", total, sum)
		}
	})
}

func TestStartingPurse_RangesByWealth(t *testing.T) {
	bounds := map[culture.Wealth][2]int{
		culture.WealthPoor:        {1, 6},
		culture.WealthModest:      {4, 14},
		culture.WealthComfortable: {9, 29},
		culture.WealthWealthy:     {28, 68},
		culture.WealthNoble:       {72, 132},
	}
	roller := dice.NewLoggedRoller(dice.NewSeededSource(5), nil)
	for w, b := range bounds {
		for i := 0; i < 100; i++ {
			p := StartingPurse(w, culture.EraMedieval, roller)
			units := p.Amount / sterling.RollUnit
			if units < b[0] || units > b[1] {
				t.Fatalf("%s: %d shillings outside [%d,%d]", w, units, b[0], b[1])
			}
			if p.Currency != "sterling" || p.Display == "" {
				t.Fatalf("%s: unexpected purse %+v", w, p)
			}
		}
	}
}

func TestStartingPurse_Deterministic(t *testing.T) {
	a := StartingPurse(culture.WealthNoble, culture.EraIndustrial, dice.NewLoggedRoller(dice.NewSeededSource(77), nil))
	b := StartingPurse(culture.WealthNoble, culture.EraIndustrial, dice.NewLoggedRoller(dice.NewSeededSource(77), nil))
	if a != b {
		t.Fatalf("expected identical purses, got %+v and %+v", a, b)
	}
}

package culture

import (
	"fmt"
	"strings"
)

// Wealth is the five-level wealth scale carried on a profile.
type Wealth string

const (
	WealthPoor        Wealth = "poor"
	WealthModest      Wealth = "modest"
	WealthComfortable Wealth = "comfortable"
	WealthWealthy     Wealth = "wealthy"
	WealthNoble       Wealth = "noble"
)

// Wealths lists the five levels from poorest to richest.
var Wealths = []Wealth{WealthPoor, WealthModest, WealthComfortable, WealthWealthy, WealthNoble}

// Tier is the simplified three-level wealth scale used to index content tables.
type Tier string

const (
	TierPoor    Tier = "poor"
	TierCommon  Tier = "common"
	TierWealthy Tier = "wealthy"
)

// Tiers lists the simplified tiers from poorest to richest.
var Tiers = []Tier{TierPoor, TierCommon, TierWealthy}

// tierFallbacks is the per-tier preference order of alternate tiers.
var tierFallbacks = map[Tier][]Tier{
	TierPoor:    {TierCommon, TierWealthy},
	TierCommon:  {TierPoor, TierWealthy},
	TierWealthy: {TierCommon, TierPoor},
}

var privilegeByWealth = map[Wealth]float64{
	WealthPoor:        0.10,
	WealthModest:      0.30,
	WealthComfortable: 0.50,
	WealthWealthy:     0.75,
	WealthNoble:       0.95,
}

// Rank returns the position of w on the five-level scale, or -1 if unknown.
func (w Wealth) Rank() int {
	for i, x := range Wealths {
		if x == w {
			return i
		}
	}
	return -1
}

// Valid reports whether w is a known wealth level.
func (w Wealth) Valid() bool { return w.Rank() >= 0 }

// Tier reduces w to the simplified content-lookup tier.
func (w Wealth) Tier() Tier {
	switch w {
	case WealthPoor:
		return TierPoor
	case WealthWealthy, WealthNoble:
		return TierWealthy
	default:
		return TierCommon
	}
}

// Privilege maps w onto the social-context privilege value.
func (w Wealth) Privilege() float64 {
	if p, ok := privilegeByWealth[w]; ok {
		return p
	}
	return privilegeByWealth[WealthModest]
}

// Min returns the poorer of w and other.
func (w Wealth) Min(other Wealth) Wealth {
	if other.Rank() < w.Rank() {
		return other
	}
	return w
}

// WealthFromPrivilege maps a privilege roll in [0,1] onto the wealth scale.
func WealthFromPrivilege(p float64) Wealth {
	switch {
	case p < 0.20:
		return WealthPoor
	case p < 0.40:
		return WealthModest
	case p < 0.62:
		return WealthComfortable
	case p < 0.85:
		return WealthWealthy
	default:
		return WealthNoble
	}
}

// ParseWealth accepts a wealth level in any case.
func ParseWealth(s string) (Wealth, error) {
	w := Wealth(strings.ToLower(strings.TrimSpace(s)))
	if !w.Valid() {
		return "", fmt.Errorf("unknown wealth level %q", s)
	}
	return w, nil
}

// Rank returns the position of t on the simplified scale, or -1 if unknown.
func (t Tier) Rank() int {
	for i, x := range Tiers {
		if x == t {
			return i
		}
	}
	return -1
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool { return t.Rank() >= 0 }

// Fallbacks returns the alternate tiers to try for t, in preference order.
func (t Tier) Fallbacks() []Tier {
	return append([]Tier(nil), tierFallbacks[t]...)
}

// ParseTier accepts a tier, or a five-level wealth name which is reduced.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t, nil
	}
	w, err := ParseWealth(s)
	if err != nil {
		return "", fmt.Errorf("unknown wealth tier %q", s)
	}
	return w.Tier(), nil
}

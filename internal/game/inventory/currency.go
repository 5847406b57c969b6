// Package inventory models the money a character starts with.
package inventory

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
)

// Denomination is one coin or note of a currency, valued in base units.
type Denomination struct {
	Singular string
	Plural   string
	Value    int
}

// Currency is an era's money, denominations ordered from largest to
// smallest. The smallest denomination has Value 1.
type Currency struct {
	ID            string
	Denominations []Denomination
	// RollUnit is the value, in base units, of one point of a purse roll.
	RollUnit int
}

var (
	barter = Currency{ID: "barter", RollUnit: 1, Denominations: []Denomination{
		{"Barter Token", "Barter Tokens", 1},
	}}
	shekels = Currency{ID: "shekel", RollUnit: 1, Denominations: []Denomination{
		{"Silver Shekel", "Silver Shekels", 20},
		{"Copper Piece", "Copper Pieces", 1},
	}}
	denarii = Currency{ID: "denarius", RollUnit: 4, Denominations: []Denomination{
		{"Denarius", "Denarii", 16},
		{"As", "Asses", 1},
	}}
	sterling = Currency{ID: "sterling", RollUnit: 12, Denominations: []Denomination{
		{"Pound", "Pounds", 240},
		{"Shilling", "Shillings", 12},
		{"Penny", "Pennies", 1},
	}}
	ducats = Currency{ID: "ducat", RollUnit: 4, Denominations: []Denomination{
		{"Ducat", "Ducats", 20},
		{"Soldo", "Soldi", 1},
	}}
	dollars = Currency{ID: "dollar", RollUnit: 100, Denominations: []Denomination{
		{"Dollar", "Dollars", 100},
		{"Cent", "Cents", 1},
	}}
	credits = Currency{ID: "credit", RollUnit: 10, Denominations: []Denomination{
		{"Credit", "Credits", 1},
	}}
)

var currencyByEra = map[culture.Era]Currency{
	culture.EraPrehistoric: barter,
	culture.EraAncient:     shekels,
	culture.EraClassical:   denarii,
	culture.EraMedieval:    sterling,
	culture.EraRenaissance: ducats,
	culture.EraEarlyModern: sterling,
	culture.EraIndustrial:  dollars,
	culture.EraModern:      dollars,
	culture.EraFuture:      credits,
}

// CurrencyFor returns the money used in era; unknown eras barter.
func CurrencyFor(era culture.Era) Currency {
	if c, ok := currencyByEra[era]; ok {
		return c
	}
	return barter
}

// CurrencyByID returns the currency with id.
func CurrencyByID(id string) (Currency, bool) {
	for _, c := range currencyByEra {
		if c.ID == id {
			return c, true
		}
	}
	return Currency{}, false
}

// Decompose splits total base units into a count per denomination.
//
// Precondition: total >= 0.
// Postcondition: sum(counts[i] * Denominations[i].Value) == total, and every
// count except the last is below the next-larger ratio.
func (c Currency) Decompose(total int) []int {
	counts := make([]int, len(c.Denominations))
	remainder := total
	for i, d := range c.Denominations {
		counts[i] = remainder / d.Value
		remainder %= d.Value
	}
	return counts
}

// Format returns a human-readable amount such as "2 Pounds, 1 Shilling, 4 Pennies".
//
// Postcondition: zero-valued denominations are omitted except the smallest,
// which always appears when everything else is zero.
func (c Currency) Format(total int) string {
	counts := c.Decompose(total)
	var parts []string
	for i, n := range counts {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, c.Denominations[i].name(n)))
		}
	}
	if len(parts) == 0 {
		last := c.Denominations[len(c.Denominations)-1]
		return "0 " + last.Plural
	}
	return strings.Join(parts, ", ")
}

func (d Denomination) name(n int) string {
	if n == 1 {
		return d.Singular
	}
	return d.Plural
}

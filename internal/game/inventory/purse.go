package inventory

import (
	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

// purseDice is the starting-money roll per wealth level, counted in the
// era currency's RollUnit.
var purseDice = map[culture.Wealth]dice.Expression{
	culture.WealthPoor:        dice.MustParse("1d6"),
	culture.WealthModest:      dice.MustParse("2d6+2"),
	culture.WealthComfortable: dice.MustParse("4d6+5"),
	culture.WealthWealthy:     dice.MustParse("8d6+20"),
	culture.WealthNoble:       dice.MustParse("12d6+60"),
}

// Purse is a character's starting money.
type Purse struct {
	Amount   int    `json:"amount" yaml:"amount"`
	Currency string `json:"currency" yaml:"currency"`
	Display  string `json:"display" yaml:"display"`
}

// NewPurse builds a purse of amount base units in currency c.
func NewPurse(c Currency, amount int) Purse {
	return Purse{Amount: amount, Currency: c.ID, Display: c.Format(amount)}
}

// StartingPurse rolls the starting money for wealth w in era.
//
// Precondition: roller must be non-nil.
// Postcondition: Amount >= RollUnit of the era currency.
func StartingPurse(w culture.Wealth, era culture.Era, roller *dice.Roller) Purse {
	expr, ok := purseDice[w]
	if !ok {
		expr = purseDice[culture.WealthModest]
	}
	c := CurrencyFor(era)
	return NewPurse(c, roller.Roll(expr).Total()*c.RollUnit)
}

// Package dice provides the randomness abstraction and roll-result types
// shared by every NPC resolution stage.
package dice

import "fmt"

// RollResult holds the full audit trail for a single dice roll evaluation.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type RollResult struct {
	Expression string // original expression string, e.g. "4d6kh3"
	Dice       []int  // kept die results before modifier
	Modifier   int    // flat modifier (may be negative)
}

// Total returns the sum of all kept die results plus the modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string such as "2d6+3 → [4 5] +3 = 12".
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	return fmt.Sprintf("%s → %v %+d = %d", r.Expression, r.Dice, r.Modifier, r.Total())
}

// Source is the randomness stream consumed by the generator.
//
// A seeded Source is a plain stateful stream and is NOT safe for concurrent
// use; each generated character owns its own Source.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a non-negative value in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

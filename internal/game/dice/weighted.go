package dice

// WeightedIndex draws an index with probability proportional to its weight.
// A running draw scaled to the total weight is reduced by each weight in turn;
// the first weight that takes it below zero wins. Non-positive weights are
// never selected.
//
// Postcondition: returns -1 iff no weight is positive.
func WeightedIndex(src Source, weights []float64) int {
	total := 0.0
	last := -1
	for i, w := range weights {
		if w > 0 {
			total += w
			last = i
		}
	}
	if last < 0 {
		return -1
	}
	r := src.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		r -= w
		if r < 0 {
			return i
		}
	}
	// Float rounding can leave r at exactly zero after the last subtraction.
	return last
}

// Chance reports whether a single draw falls below p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Pick returns a uniformly chosen element of items.
//
// Precondition: len(items) > 0.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Between returns a uniform value in [lo, hi).
func Between(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

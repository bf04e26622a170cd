package arity

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// MinUpperBound is the smallest upper bound the search uses. Go allows
// zero-size fields, so the size of a type in bits alone can undercount.
// It matches the largest ceiling the table generator accepts.
const MinUpperBound = 255

// Median returns the midpoint of [l, r] rounded up, computed without
// overflowing N. For l < r the result lies in (l, r], so a search that
// narrows to [m, r] or [l, m-1] always shrinks its interval.
func Median[N constraints.Unsigned](l, r N) N {
	return l/2 + r/2 + (1+l%2+r%2)/2
}

// Bisect returns the largest k in [l, r] for which feasible holds, assuming
// feasible is true at l and monotonically non-increasing in k.
func Bisect(l, r uint64, feasible func(k uint64) bool) uint64 {
	for l != r {
		m := Median(l, r)
		if feasible(m) {
			l = m
		} else {
			r = m - 1
		}
	}
	return l
}

// UpperBound returns the search ceiling for t: its size in bits, raised to
// MinUpperBound. The bound is deliberately loose.
func UpperBound(t Type) (uint64, error) {
	bits, ok := t.Bits()
	if !ok {
		return 0, fmt.Errorf("%s: %w", t, ErrSizeOverflow)
	}
	return max(bits, MinUpperBound), nil
}

// Count returns the number of direct fields of t.
func Count(t Type) (int, error) {
	return CountWith(t, nil)
}

// CountWith is Count with a probe that observes every oracle query in the
// order the search issues them.
func CountWith(t Type, probe func(k uint64, feasible bool)) (int, error) {
	bound, err := UpperBound(t)
	if err != nil {
		return 0, err
	}

	oracle := Oracle(t)
	query := oracle
	if probe != nil {
		query = func(k uint64) bool {
			ok := oracle(k)
			probe(k, ok)
			return ok
		}
	}

	n := Bisect(0, bound, query)
	if n == bound && bound < math.MaxUint64 && query(bound+1) {
		return 0, fmt.Errorf("%s: %w (%d)", t, ErrUnbounded, bound)
	}
	if n > math.MaxInt {
		return 0, fmt.Errorf("%s: %w (%d)", t, ErrUnbounded, n)
	}
	return int(n), nil
}

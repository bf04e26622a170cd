// Package arity infers how many direct fields a plain struct type has
// without reading its field list as metadata.
//
// The inference is a decision procedure over a type view:
//
//   - the oracle (Constructible) answers whether a type can be initialized
//     positionally from exactly k placeholder arguments, where each
//     placeholder (Universal) converts to any requested type except the
//     candidate type itself;
//   - the search (Count) runs a binary search over [0, UpperBound] with the
//     oracle as its predicate and returns the largest feasible k.
//
// The search assumes feasibility is monotonic: if k arguments are accepted,
// every k' < k is accepted too. Types that break this assumption produce an
// unspecified count.
//
// Two backends implement Type: the root mirror package over reflect.Type and
// internal/source over go/types.
package arity

import "errors"

var (
	// ErrSizeOverflow is returned when the size of a type in bits does not
	// fit in a uint64.
	ErrSizeOverflow = errors.New("type size in bits overflows uint64")

	// ErrUnbounded is returned when the oracle still accepts one argument
	// past the search upper bound, so the result would be truncated.
	ErrUnbounded = errors.New("arity exceeds search upper bound")
)

// Type is the view of a candidate type that the oracle and the search need.
type Type interface {
	// String names the type for diagnostics.
	String() string

	// Bits returns the storage size of the type in bits. ok is false when
	// the multiplication overflowed.
	Bits() (bits uint64, ok bool)

	// NumSlots reports how many positional initializers the type has room
	// for.
	NumSlots() int

	// Slot returns the type requested from the placeholder at position i.
	Slot(i int) Type

	// Same reports whether other denotes the identical type.
	Same(other Type) bool
}

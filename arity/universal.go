package arity

// Universal is a placeholder argument that converts to any requested type
// except the candidate type it was created for. One placeholder is created
// per argument position; positions are otherwise interchangeable.
//
// Refusing the candidate type keeps a single placeholder from standing in
// for a whole nested value of the type under test.
type Universal struct {
	// Index is the argument position this placeholder fills.
	Index int

	exclude Type
}

// NewUniversal returns the placeholder for position index of candidate t.
func NewUniversal(t Type, index int) Universal {
	return Universal{Index: index, exclude: t}
}

// ConvertsTo reports whether the placeholder can be converted to target.
// It carries no state beyond its position, so the answer depends on target
// alone.
func (u Universal) ConvertsTo(target Type) bool {
	if target == nil {
		return false
	}
	if u.exclude == nil {
		return true
	}
	return !target.Same(u.exclude)
}

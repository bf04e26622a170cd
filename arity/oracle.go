package arity

// Constructible reports whether t can be initialized positionally from
// exactly k Universal placeholders.
//
// Initialization accepts at most as many arguments as t has slots and
// accepts fewer by leaving the remaining fields at their zero values. Since
// a placeholder converts to anything but t itself, only the count can make
// the answer negative for an eligible type.
//
// The check is made against the type alone; no value of t is created.
func Constructible(t Type, k int) bool {
	switch {
	case k < 0:
		return false
	case k == 0:
		return true
	case k > t.NumSlots():
		return false
	}
	for i := 0; i < k; i++ {
		if !NewUniversal(t, i).ConvertsTo(t.Slot(i)) {
			return false
		}
	}
	return true
}

// Oracle binds Constructible to a single type so it can drive Bisect.
func Oracle(t Type) func(k uint64) bool {
	slots := uint64(t.NumSlots())
	return func(k uint64) bool {
		if k > slots {
			return false
		}
		return Constructible(t, int(k))
	}
}

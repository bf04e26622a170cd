package mirror

import (
	"reflect"

	"github.com/Alia5/mirror/arity"
)

// reflectType adapts a reflect.Type to the view the arity search needs.
type reflectType struct {
	t reflect.Type
}

func (r reflectType) String() string { return r.t.String() }

func (r reflectType) Bits() (uint64, bool) {
	size := uint64(r.t.Size())
	bits := size * 8
	if size != 0 && bits/size != 8 {
		return 0, false
	}
	return bits, true
}

func (r reflectType) NumSlots() int {
	if r.t.Kind() != reflect.Struct {
		return 0
	}
	return r.t.NumField()
}

func (r reflectType) Slot(i int) arity.Type {
	return reflectType{t: r.t.Field(i).Type}
}

// Same compares by type identity; Go types carry no qualifiers to strip.
func (r reflectType) Same(other arity.Type) bool {
	o, ok := other.(reflectType)
	return ok && o.t == r.t
}

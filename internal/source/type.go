package source

import (
	"go/types"
	"runtime"

	"github.com/Alia5/mirror/arity"
)

// Type adapts a go/types type to the view the arity search needs, so arity
// can be decided from source before anything is compiled.
type Type struct {
	t     types.Type
	sizes types.Sizes
}

// NewType wraps t. sizes decides the bit size used as the search bound;
// nil selects the gc sizes of the running architecture.
func NewType(t types.Type, sizes types.Sizes) Type {
	if sizes == nil {
		sizes = defaultSizes()
	}
	return Type{t: t, sizes: sizes}
}

func defaultSizes() types.Sizes { return types.SizesFor("gc", runtime.GOARCH) }

func (s Type) String() string { return types.TypeString(s.t, nil) }

func (s Type) Bits() (uint64, bool) {
	n := s.sizes.Sizeof(s.t)
	if n < 0 {
		return 0, false
	}
	size := uint64(n)
	bits := size * 8
	if size != 0 && bits/size != 8 {
		return 0, false
	}
	return bits, true
}

func (s Type) NumSlots() int {
	st, ok := s.t.Underlying().(*types.Struct)
	if !ok {
		return 0
	}
	return st.NumFields()
}

func (s Type) Slot(i int) arity.Type {
	st := s.t.Underlying().(*types.Struct)
	return Type{t: st.Field(i).Type(), sizes: s.sizes}
}

func (s Type) Same(other arity.Type) bool {
	o, ok := other.(Type)
	return ok && types.Identical(s.t, o.t)
}

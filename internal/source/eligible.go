package source

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
)

var (
	ErrIneligible = errors.New("type is not a plain struct")
	ErrNotFound   = errors.New("type not found")

	ErrNotStruct       = errors.New("not a struct")
	ErrGeneric         = errors.New("generic type without type arguments")
	ErrEmbeddedField   = errors.New("embedded field")
	ErrUnexportedField = errors.New("unexported field")
	ErrNotCopyable     = errors.New("lock held by value")
	ErrHasConstructor  = errors.New("user-declared constructor")
	ErrUnnamedStruct   = errors.New("alias of an unnamed struct type")
)

// IneligibleError reports why a named type was rejected before arity
// inference. It matches both ErrIneligible and its Reason under errors.Is.
type IneligibleError struct {
	Type   string
	Field  string // offending field or constructor, empty otherwise
	Reason error
}

func (e *IneligibleError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %v", e.Type, e.Reason)
}

func (e *IneligibleError) Unwrap() []error {
	return []error{ErrIneligible, e.Reason}
}

// lockerIface is sync.Locker rebuilt so no package has to import sync.
var lockerIface = func() *types.Interface {
	sig := types.NewSignatureType(nil, nil, nil, nil, nil, false)
	methods := []*types.Func{
		types.NewFunc(token.NoPos, nil, "Lock", sig),
		types.NewFunc(token.NoPos, nil, "Unlock", sig),
	}
	return types.NewInterfaceType(methods, nil).Complete()
}()

// Eligible returns nil when named is a plain struct: no type parameters
// left open, no embedded, unexported or blank fields, no lock held by value
// and no New<Name> constructor returning it in its package.
func Eligible(named *types.Named) error {
	name := types.TypeString(named, nil)
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return &IneligibleError{Type: name, Reason: ErrNotStruct}
	}
	if named.TypeParams().Len() > 0 && named.TypeArgs().Len() == 0 {
		return &IneligibleError{Type: name, Reason: ErrGeneric}
	}
	if types.Implements(types.NewPointer(named), lockerIface) {
		return &IneligibleError{Type: name, Reason: ErrNotCopyable}
	}
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		switch {
		case f.Embedded():
			return &IneligibleError{Type: name, Field: f.Name(), Reason: ErrEmbeddedField}
		case !f.Exported():
			return &IneligibleError{Type: name, Field: f.Name(), Reason: ErrUnexportedField}
		case holdsLock(f.Type()):
			return &IneligibleError{Type: name, Field: f.Name(), Reason: ErrNotCopyable}
		}
	}
	if ctor := constructor(named); ctor != "" {
		return &IneligibleError{Type: name, Field: ctor, Reason: ErrHasConstructor}
	}
	return nil
}

// constructor returns the name of the conventional constructor of named,
// a package-level New<Name> whose first result is the type or a pointer
// to it.
func constructor(named *types.Named) string {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return ""
	}
	fn, ok := obj.Pkg().Scope().Lookup("New" + obj.Name()).(*types.Func)
	if !ok {
		return ""
	}
	sig := fn.Type().(*types.Signature)
	if sig.Results().Len() == 0 {
		return ""
	}
	res := sig.Results().At(0).Type()
	if p, ok := res.(*types.Pointer); ok {
		res = p.Elem()
	}
	if n, ok := res.(*types.Named); ok && n.Obj() == obj {
		return fn.Name()
	}
	return ""
}

func holdsLock(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Struct:
		if types.Implements(types.NewPointer(t), lockerIface) {
			return true
		}
		for i := 0; i < u.NumFields(); i++ {
			if holdsLock(u.Field(i).Type()) {
				return true
			}
		}
	case *types.Array:
		return holdsLock(u.Elem())
	}
	return false
}

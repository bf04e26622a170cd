package mirror

import "reflect"

// Refs holds one pointer per direct field of a struct instance, in
// declaration order. Element i has type *F where F is the type of field i.
// Refs do not own the storage they point into.
type Refs []any

// Project returns references to the fields of the struct ptr points to.
func Project(ptr any) (Refs, error) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, ErrNotStructPtr
	}
	return project(v.Elem())
}

// ProjectOf is the typed form of Project.
func ProjectOf[T any](x *T) (Refs, error) {
	if x == nil {
		return nil, ErrNotStructPtr
	}
	return project(reflect.ValueOf(x).Elem())
}

func project(v reflect.Value) (Refs, error) {
	n, err := Arity(v.Type())
	if err != nil {
		return nil, err
	}
	if n > Ceiling {
		return nil, &CeilingError{Type: v.Type(), Arity: n, Ceiling: Ceiling}
	}
	return projectors[n](v), nil
}

// At returns element i of refs as a *F. ok is false when i is out of range
// or field i is not of type F.
func At[F any](refs Refs, i int) (p *F, ok bool) {
	if i < 0 || i >= len(refs) {
		return nil, false
	}
	p, ok = refs[i].(*F)
	return p, ok
}

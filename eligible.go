package mirror

import (
	"reflect"
	"sync"
)

var lockerType = reflect.TypeFor[sync.Locker]()

// Eligible returns nil when t is a plain struct the arity search can be run
// on. Otherwise it returns an *IneligibleError naming the first problem
// found.
//
// Plain means: a struct, with no embedded fields, no unexported or blank
// fields, and no lock held by value anywhere in it (the go vet copylocks
// notion of a type that must not be copied).
func Eligible(t reflect.Type) error {
	if t == nil || t.Kind() != reflect.Struct {
		return &IneligibleError{Type: t, Reason: ErrNotStruct}
	}
	if reflect.PointerTo(t).Implements(lockerType) {
		return &IneligibleError{Type: t, Reason: ErrNotCopyable}
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		switch {
		case f.Anonymous:
			return &IneligibleError{Type: t, Field: f.Name, Reason: ErrEmbeddedField}
		case !f.IsExported():
			return &IneligibleError{Type: t, Field: f.Name, Reason: ErrUnexportedField}
		case holdsLock(f.Type):
			return &IneligibleError{Type: t, Field: f.Name, Reason: ErrNotCopyable}
		}
	}
	return nil
}

// holdsLock reports whether a value of t contains a sync.Locker by value.
func holdsLock(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct:
		if reflect.PointerTo(t).Implements(lockerType) {
			return true
		}
		for i := 0; i < t.NumField(); i++ {
			if holdsLock(t.Field(i).Type) {
				return true
			}
		}
	case reflect.Array:
		return holdsLock(t.Elem())
	}
	return false
}

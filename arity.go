package mirror

import (
	"reflect"
	"sync"

	"github.com/Alia5/mirror/arity"
)

type arityResult struct {
	n   int
	err error
}

var arityCache sync.Map // map[reflect.Type]arityResult

// Arity returns the number of direct fields of t, or an error wrapping
// ErrIneligible if t is not a plain struct. The answer is a pure function
// of t and is computed once per type.
func Arity(t reflect.Type) (int, error) {
	if t == nil {
		return 0, Eligible(t)
	}
	if r, ok := arityCache.Load(t); ok {
		res := r.(arityResult)
		return res.n, res.err
	}

	var res arityResult
	if err := Eligible(t); err != nil {
		res.err = err
	} else {
		res.n, res.err = arity.Count(reflectType{t: t})
	}
	arityCache.Store(t, res)
	return res.n, res.err
}

// ArityOf returns the number of direct fields of T.
func ArityOf[T any]() (int, error) {
	return Arity(reflect.TypeFor[T]())
}

// MustArityOf is like ArityOf but panics if T is not eligible.
func MustArityOf[T any]() int {
	n, err := ArityOf[T]()
	if err != nil {
		panic("mirror: " + err.Error())
	}
	return n
}

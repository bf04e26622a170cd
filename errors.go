package mirror

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrIneligible          = errors.New("type is not a plain struct")
	ErrArityExceedsCeiling = errors.New("arity exceeds projector ceiling")
	ErrNotStructPtr        = errors.New("expected non-nil pointer to struct")

	ErrNotStruct       = errors.New("not a struct")
	ErrEmbeddedField   = errors.New("embedded field")
	ErrUnexportedField = errors.New("unexported field")
	ErrNotCopyable     = errors.New("lock held by value")
)

// IneligibleError reports why a type was rejected before arity inference.
// It matches both ErrIneligible and its Reason under errors.Is.
type IneligibleError struct {
	Type   reflect.Type
	Field  string // offending field, empty when the type itself is at fault
	Reason error
}

func (e *IneligibleError) Error() string {
	name := "<nil>"
	if e.Type != nil {
		name = e.Type.String()
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field %s: %v", name, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %v", name, e.Reason)
}

func (e *IneligibleError) Unwrap() []error {
	return []error{ErrIneligible, e.Reason}
}

// CeilingError reports an eligible type with more fields than the projector
// table has cases for.
type CeilingError struct {
	Type    reflect.Type
	Arity   int
	Ceiling int
}

func (e *CeilingError) Error() string {
	return fmt.Sprintf("%s: %v: %d > %d", e.Type, ErrArityExceedsCeiling, e.Arity, e.Ceiling)
}

func (e *CeilingError) Unwrap() error {
	return ErrArityExceedsCeiling
}

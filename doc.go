// Package mirror counts the direct fields of plain struct types and hands
// out references to them in declaration order, without the type's author
// registering names, counts, or offsets anywhere.
//
// # Arity
//
// ArityOf and Arity run the search from package arity over a reflect.Type:
// the largest k for which the type can be initialized from k placeholder
// arguments. Results are memoized per type for the life of the process.
//
//	type Vec4 struct {
//		X, Y, Z int
//		W       float32
//	}
//
//	n, err := mirror.ArityOf[Vec4]() // 4, nil
//
// # Projection
//
// Project and ProjectOf return Refs, one pointer per field. Each pointer
// aliases the field of the instance passed in, so writes through it are
// visible in the instance. The Refs must not outlive the instance.
//
//	v := Vec4{1, 2, 3, 4}
//	refs, _ := mirror.ProjectOf(&v)
//	w, _ := mirror.At[float32](refs, 3)
//	*w = 0.5 // v.W == 0.5
//
// Projection dispatches on the arity to one generated case per supported
// arity, up to Ceiling. Regenerate project_gen.go with a larger
// ceiling to support wider structs:
//
//	mirror gen table --ceiling 64 --table-output project_gen.go
//
// # Eligibility
//
// Only plain structs are accepted: no embedded fields, no unexported or
// blank fields, and no locks held by value. Anything else is rejected with
// an error wrapping ErrIneligible before the search runs. A struct that is
// eligible but wider than Ceiling fails projection with an error wrapping
// ErrArityExceedsCeiling.
//
// For arity and projection that are checked before the program is compiled,
// see the mirror command's gen fields subcommand.
package mirror

//go:generate go run ./cmd/mirror gen table --package mirror --ceiling 32 --table-output project_gen.go

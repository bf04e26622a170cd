package source

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/mirror/arity"
	"github.com/Alia5/mirror/internal/log"
)

const fixture = `package shapes

import "sync"

type Vec4 struct {
	X, Y, Z, W float32
}

type Empty struct{}

type Point struct {
	X, Y int
}

func NewPoint(x, y int) *Point { return &Point{x, y} }

type Base struct{ ID int }

type Derived struct {
	Base
	Name string
}

type Hidden struct {
	Name  string
	count int
}

type Guarded struct {
	Mu   sync.Mutex
	Hits int
}

type Locks struct {
	Mus [2]sync.RWMutex
}

type Node struct {
	Value int
	Next  *Node
}

type Pair[A, B any] struct {
	First  A
	Second B
}

type Markers struct {
	A, B, C struct{}
}

type Alias = Vec4

type Anon = struct{ X int }

type Celsius float64

type unexported struct{ A int }
`

func TestInspectPackageArity(t *testing.T) {
	pkg, err := CheckSource("shapes.go", fixture)
	require.NoError(t, err)

	tests := []struct {
		name  string
		arity int
	}{
		{"Vec4", 4},
		{"Empty", 0},
		{"Node", 2},
		{"Markers", 3},
		{"Alias", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := NewInspector(nil).InspectPackage(pkg, nil, tt.name)
			require.NoError(t, err)
			require.Len(t, rs, 1)
			require.True(t, rs[0].OK(), "%v", rs[0].Err)
			assert.Equal(t, tt.arity, rs[0].Arity)
			assert.Equal(t, "shapes", rs[0].Package)
			assert.Empty(t, rs[0].Ineligible)
			assert.Len(t, rs[0].Fields(), tt.arity)
		})
	}
}

func TestInspectPackageIneligible(t *testing.T) {
	pkg, err := CheckSource("shapes.go", fixture)
	require.NoError(t, err)

	tests := []struct {
		name   string
		reason error
		field  string
	}{
		{"Point", ErrHasConstructor, "NewPoint"},
		{"Derived", ErrEmbeddedField, "Base"},
		{"Hidden", ErrUnexportedField, "count"},
		{"Guarded", ErrNotCopyable, "Mu"},
		{"Locks", ErrNotCopyable, "Mus"},
		{"Pair", ErrGeneric, ""},
		{"Celsius", ErrNotStruct, ""},
		{"Anon", ErrUnnamedStruct, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := NewInspector(nil).InspectPackage(pkg, nil, tt.name)
			require.NoError(t, err)
			require.Len(t, rs, 1)
			r := rs[0]
			assert.False(t, r.OK())
			assert.Zero(t, r.Arity)
			assert.ErrorIs(t, r.Err, ErrIneligible)
			assert.ErrorIs(t, r.Err, tt.reason)
			assert.Nil(t, r.Fields())
			assert.NotEmpty(t, r.Ineligible)

			var ie *IneligibleError
			require.ErrorAs(t, r.Err, &ie)
			assert.Equal(t, tt.field, ie.Field)
		})
	}
}

func TestInspectPackageAll(t *testing.T) {
	pkg, err := CheckSource("shapes.go", fixture)
	require.NoError(t, err)

	rs, err := NewInspector(nil).InspectPackage(pkg, nil)
	require.NoError(t, err)

	var names []string
	for _, r := range rs {
		names = append(names, r.Name)
	}
	// Aliases, non-structs and unexported types are skipped.
	assert.Equal(t, []string{
		"Base", "Derived", "Empty", "Guarded", "Hidden", "Locks",
		"Markers", "Node", "Pair", "Point", "Vec4",
	}, names)
}

func TestInspectPackageNotFound(t *testing.T) {
	pkg, err := CheckSource("shapes.go", fixture)
	require.NoError(t, err)

	_, err = NewInspector(nil).InspectPackage(pkg, nil, "Missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInspectWide(t *testing.T) {
	var b strings.Builder
	b.WriteString("package wide\n\ntype Wide struct {\n")
	for i := 0; i < 300; i++ {
		fmt.Fprintf(&b, "\tF%d int8\n", i)
	}
	b.WriteString("}\n\ntype Flags struct {\n")
	for i := 0; i < 300; i++ {
		fmt.Fprintf(&b, "\tF%d struct{}\n", i)
	}
	b.WriteString("}\n")

	pkg, err := CheckSource("wide.go", b.String())
	require.NoError(t, err)

	rs, err := NewInspector(nil).InspectPackage(pkg, nil, "Wide", "Flags")
	require.NoError(t, err)
	require.Len(t, rs, 2)

	require.True(t, rs[0].OK(), "%v", rs[0].Err)
	assert.Equal(t, 300, rs[0].Arity)

	// 300 zero-size fields exceed the minimum bound of 255.
	assert.ErrorIs(t, rs[1].Err, arity.ErrUnbounded)
}

func TestInspectLogsProbes(t *testing.T) {
	pkg, err := CheckSource("shapes.go", fixture)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: log.LevelTrace}))
	_, err = NewInspector(logger).InspectPackage(pkg, nil, "Vec4")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Oracle query")
	assert.Contains(t, out, "type=shapes.Vec4")
	assert.Contains(t, out, "arity=4")
}

func TestCheckSourceErrors(t *testing.T) {
	_, err := CheckSource("bad.go", "package bad\n\ntype T struct {")
	assert.Error(t, err)

	_, err = CheckSource("bad.go", "package bad\n\ntype T struct{ A Missing }\n")
	assert.Error(t, err)
}

func TestTypeSame(t *testing.T) {
	pkg, err := CheckSource("shapes.go", fixture)
	require.NoError(t, err)

	vec := NewType(pkg.Scope().Lookup("Vec4").Type(), nil)
	alias := NewType(pkg.Scope().Lookup("Alias").Type(), nil)
	empty := NewType(pkg.Scope().Lookup("Empty").Type(), nil)

	assert.True(t, vec.Same(alias))
	assert.False(t, vec.Same(empty))
	assert.Equal(t, 4, vec.NumSlots())
	assert.Equal(t, 0, NewType(pkg.Scope().Lookup("Celsius").Type(), nil).NumSlots())
}

func TestTypeDefaultSizes(t *testing.T) {
	pkg, err := CheckSource("shapes.go", fixture)
	require.NoError(t, err)

	vec := NewType(pkg.Scope().Lookup("Vec4").Type(), nil)
	bits, ok := vec.Bits()
	require.True(t, ok)
	assert.Equal(t, uint64(128), bits)

	n, err := arity.Count(vec)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

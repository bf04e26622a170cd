package codegen

import (
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/mirror/internal/source"
)

const geoSource = `package geo

import "time"

type Vec2 struct{ X, Y float64 }

type Sample struct {
	At     time.Time
	Values []float64
	Origin *Vec2
}

type Tag struct{ Name string }

type Empty struct{}

type Vec2Alias = Vec2

type Hidden struct{ name string }
`

func geoReports(t *testing.T, names ...string) []source.Report {
	t.Helper()
	pkg, err := source.CheckSource("geo.go", geoSource)
	require.NoError(t, err)
	rs, err := source.NewInspector(nil).InspectPackage(pkg, nil, names...)
	require.NoError(t, err)
	return rs
}

func TestGenerateFields(t *testing.T) {
	out, err := GenerateFields(geoReports(t, "Vec2", "Sample", "Tag", "Empty"), DefaultCeiling)
	require.NoError(t, err)
	s := string(out)

	_, err = parser.ParseFile(token.NewFileSet(), "mirror_gen.go", out, 0)
	require.NoError(t, err, s)

	for _, want := range []string{
		"// Code generated by mirror gen fields; DO NOT EDIT.\n",
		"package geo\n",
		"\"time\"\n",
		"func (Vec2) MirrorArity() int { return 2 }\n",
		"func (x *Vec2) MirrorFields() (*float64, *float64) {\n\treturn &x.X, &x.Y\n}\n",
		"func (Sample) MirrorArity() int { return 3 }\n",
		"func (x *Sample) MirrorFields() (*time.Time, *[]float64, **Vec2) {\n\treturn &x.At, &x.Values, &x.Origin\n}\n",
		"func (x *Tag) MirrorFields() *string {\n\treturn &x.Name\n}\n",
		"func (Empty) MirrorArity() int { return 0 }\n",
		"func (x *Empty) MirrorFields() {}\n",
	} {
		assert.Contains(t, s, want)
	}
}

func TestGenerateFieldsDeduplicatesAliases(t *testing.T) {
	out, err := GenerateFields(geoReports(t, "Vec2", "Vec2Alias"), DefaultCeiling)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(out), "MirrorArity() int"))
	assert.NotContains(t, string(out), "import")
}

func TestGenerateFieldsErrors(t *testing.T) {
	_, err := GenerateFields(nil, DefaultCeiling)
	assert.ErrorIs(t, err, ErrNothingToGenerate)

	_, err = GenerateFields(geoReports(t, "Sample"), 2)
	assert.ErrorIs(t, err, ErrArityExceedsCeiling)

	_, err = GenerateFields(geoReports(t, "Vec2", "Hidden"), DefaultCeiling)
	assert.ErrorIs(t, err, source.ErrIneligible)
	assert.ErrorIs(t, err, source.ErrUnexportedField)

	other, err := source.CheckSource("other.go", "package other\n\ntype P struct{ A int }\n")
	require.NoError(t, err)
	rs, err := source.NewInspector(nil).InspectPackage(other, nil, "P")
	require.NoError(t, err)
	_, err = GenerateFields(append(geoReports(t, "Vec2"), rs...), DefaultCeiling)
	assert.ErrorIs(t, err, ErrMixedPackages)
}

func TestGenerateFieldsRejectsMethodNames(t *testing.T) {
	pkg, err := source.CheckSource("clash.go", "package clash\n\ntype Clash struct {\n\tX            int\n\tMirrorFields []int\n}\n")
	require.NoError(t, err)
	rs, err := source.NewInspector(nil).InspectPackage(pkg, nil, "Clash")
	require.NoError(t, err)
	require.True(t, rs[0].OK(), "%v", rs[0].Err)

	_, err = GenerateFields(rs, DefaultCeiling)
	assert.ErrorIs(t, err, ErrNameConflict)
	assert.ErrorContains(t, err, "field MirrorFields")
}

func TestImporterNames(t *testing.T) {
	self := types.NewPackage("example.com/rand", "rand")
	im := newImporter(self)

	assert.Equal(t, "", im.qualify(self))
	assert.Equal(t, "rand2", im.qualify(types.NewPackage("math/rand", "rand")))
	assert.Equal(t, "rand3", im.qualify(types.NewPackage("crypto/rand", "rand")))
	assert.Equal(t, "time", im.qualify(types.NewPackage("time", "time")))
	assert.Equal(t, "rand2", im.qualify(types.NewPackage("math/rand", "rand")), "names are stable per path")

	assert.Equal(t, []importSpec{
		{Name: "rand3", Path: "crypto/rand"},
		{Name: "rand2", Path: "math/rand"},
		{Path: "time"},
	}, im.specs())
}

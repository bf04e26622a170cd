package codegen

import (
	"bytes"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"go/token"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/tools/imports"

	"github.com/Alia5/mirror/arity"
)

// DefaultStencil renders the projector for a single arity. It receives
// caseData.
//
//go:embed stencil/case.tmpl
var DefaultStencil string

const (
	// DefaultCeiling is the ceiling the mirror package is generated with.
	DefaultCeiling = 32
	// MaxCeiling keeps generated variable names to two hex digits and
	// matches the minimum search bound, so every generated case is
	// reachable.
	MaxCeiling = arity.MinUpperBound

	tableSchema = "table/v1"
)

var (
	ErrCeilingRange = fmt.Errorf("ceiling must be in [1, %d]", MaxCeiling)
	ErrStale        = errors.New("generated table is stale")
)

// TableOptions selects what GenerateTable produces.
type TableOptions struct {
	Package string
	Ceiling int
	// Stencil overrides DefaultStencil when non-empty.
	Stencil string
}

func (o TableOptions) normalize() (TableOptions, error) {
	if o.Package == "" {
		o.Package = "mirror"
	}
	if !token.IsIdentifier(o.Package) {
		return o, fmt.Errorf("invalid package name %q", o.Package)
	}
	if o.Ceiling < 1 || o.Ceiling > MaxCeiling {
		return o, fmt.Errorf("%w: %d", ErrCeilingRange, o.Ceiling)
	}
	if o.Stencil == "" {
		o.Stencil = DefaultStencil
	}
	return o, nil
}

// Fingerprint identifies the inputs of a table. Two tables with the same
// fingerprint are identical after formatting.
func Fingerprint(o TableOptions) (string, error) {
	o, err := o.normalize()
	if err != nil {
		return "", err
	}
	return fingerprint(o), nil
}

func fingerprint(o TableOptions) string {
	sum := blake2b.Sum256([]byte(strings.Join([]string{
		tableSchema,
		o.Package,
		strconv.Itoa(o.Ceiling),
		o.Stencil,
	}, "\x00")))
	return hex.EncodeToString(sum[:])[:16]
}

var fingerprintLine = regexp.MustCompile(`(?m)^// mirror:fingerprint ([0-9a-f]{16})$`)

// ReadFingerprint extracts the fingerprint recorded in a generated table.
func ReadFingerprint(src []byte) (string, bool) {
	m := fingerprintLine.FindSubmatch(src)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}

// Stale reports whether src was generated from inputs other than o.
func Stale(src []byte, o TableOptions) (bool, error) {
	want, err := Fingerprint(o)
	if err != nil {
		return false, err
	}
	got, ok := ReadFingerprint(src)
	return !ok || got != want, nil
}

type fieldData struct {
	Var   string
	Index int
}

type caseData struct {
	N       int
	Fields  []fieldData
	VarList string
}

type tableData struct {
	Fingerprint string
	Package     string
	Ceiling     int
	Cases       []int
	Bodies      []string
}

const tableTemplate = `// Code generated by mirror gen table; DO NOT EDIT.
// mirror:fingerprint {{.Fingerprint}}

package {{.Package}}

import "reflect"

// Ceiling is the largest arity Project supports.
const Ceiling = {{.Ceiling}}

var projectors = [Ceiling + 1]func(reflect.Value) Refs{
{{- range .Cases}}
	project{{.}},
{{- end}}
}

func project0(reflect.Value) Refs { return Refs{} }
{{range .Bodies}}
{{.}}{{end}}`

var tableTmpl = template.Must(template.New("table").Parse(tableTemplate))

// RenderTable renders the projector table for o without formatting it.
func RenderTable(o TableOptions) ([]byte, error) {
	o, err := o.normalize()
	if err != nil {
		return nil, err
	}
	stencil, err := template.New("case").Option("missingkey=error").Parse(o.Stencil)
	if err != nil {
		return nil, fmt.Errorf("parse stencil: %w", err)
	}

	data := tableData{
		Fingerprint: fingerprint(o),
		Package:     o.Package,
		Ceiling:     o.Ceiling,
	}
	for n := 0; n <= o.Ceiling; n++ {
		data.Cases = append(data.Cases, n)
	}

	var buf bytes.Buffer
	for n := 1; n <= o.Ceiling; n++ {
		buf.Reset()
		if err := stencil.Execute(&buf, newCaseData(n)); err != nil {
			return nil, fmt.Errorf("render case %d: %w", n, err)
		}
		data.Bodies = append(data.Bodies, buf.String())
	}

	var out bytes.Buffer
	if err := tableTmpl.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("render table: %w", err)
	}
	return out.Bytes(), nil
}

func newCaseData(n int) caseData {
	c := caseData{N: n}
	vars := make([]string, n)
	for i := range vars {
		vars[i] = fmt.Sprintf("e%02X", i)
		c.Fields = append(c.Fields, fieldData{Var: vars[i], Index: i})
	}
	c.VarList = strings.Join(vars, ", ")
	return c
}

// Format gofmt-formats generated source.
func Format(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return out, nil
}

// GenerateTable renders and formats the projector table for o.
func GenerateTable(o TableOptions) ([]byte, error) {
	src, err := RenderTable(o)
	if err != nil {
		return nil, err
	}
	return Format("project_gen.go", src)
}

package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/types"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/Alia5/mirror/internal/source"
)

var (
	ErrArityExceedsCeiling = errors.New("arity exceeds ceiling")
	ErrMixedPackages       = errors.New("types belong to different packages")
	ErrNothingToGenerate   = errors.New("no types to generate")
	ErrNameConflict        = errors.New("field name collides with a generated method")
)

// generatedMethods are the method names every generated type receives.
var generatedMethods = map[string]bool{"MirrorArity": true, "MirrorFields": true}

type importSpec struct {
	Name string // empty when it matches the package name
	Path string
}

type fieldsType struct {
	Name    string
	Arity   int
	Results string
	Returns string
}

type fieldsData struct {
	Package string
	Imports []importSpec
	Types   []fieldsType
}

var fieldsTmpl = template.Must(template.New("fields").Parse(`// Code generated by mirror gen fields; DO NOT EDIT.

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{if .Name}}{{.Name}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
{{- range .Types}}
// MirrorArity returns the number of direct fields of {{.Name}}.
func ({{.Name}}) MirrorArity() int { return {{.Arity}} }

// MirrorFields returns references to the fields of x in declaration order.
{{- if eq .Arity 0}}
func (x *{{.Name}}) MirrorFields() {}
{{- else}}
func (x *{{.Name}}) MirrorFields() {{.Results}} {
	return {{.Returns}}
}
{{- end}}
{{end}}`))

// importer assigns local names to the packages generated code refers to.
type importer struct {
	self   *types.Package
	byPath map[string]string
	used   map[string]bool
}

func newImporter(self *types.Package) *importer {
	return &importer{self: self, byPath: map[string]string{}, used: map[string]bool{}}
}

func (im *importer) qualify(p *types.Package) string {
	if p == im.self {
		return ""
	}
	if name, ok := im.byPath[p.Path()]; ok {
		return name
	}
	name := p.Name()
	for i := 2; im.used[name] || name == im.self.Name(); i++ {
		name = p.Name() + strconv.Itoa(i)
	}
	im.byPath[p.Path()] = name
	im.used[name] = true
	return name
}

func (im *importer) specs() []importSpec {
	var out []importSpec
	for path, name := range im.byPath {
		spec := importSpec{Path: path}
		if last := path[strings.LastIndex(path, "/")+1:]; last != name {
			spec.Name = name
		}
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// RenderFields renders MirrorArity and MirrorFields methods for every
// report. All reports must be eligible, share one package and have an arity
// of at most ceiling.
func RenderFields(reports []source.Report, ceiling int) ([]byte, error) {
	if len(reports) == 0 {
		return nil, ErrNothingToGenerate
	}

	var errs []error
	for _, r := range reports {
		switch {
		case !r.OK():
			errs = append(errs, r.Err)
		case r.Arity > ceiling:
			errs = append(errs, fmt.Errorf("%s.%s: %w: %d > %d", r.Package, r.Name, ErrArityExceedsCeiling, r.Arity, ceiling))
		default:
			for _, f := range r.Fields() {
				if generatedMethods[f.Name()] {
					errs = append(errs, fmt.Errorf("%s.%s: field %s: %w", r.Package, r.Name, f.Name(), ErrNameConflict))
				}
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	pkg := reports[0].Named.Obj().Pkg()
	im := newImporter(pkg)
	data := fieldsData{Package: pkg.Name()}
	seen := map[*types.TypeName]bool{}
	for _, r := range reports {
		obj := r.Named.Obj()
		if obj.Pkg() != pkg {
			return nil, fmt.Errorf("%w: %s and %s", ErrMixedPackages, pkg.Path(), obj.Pkg().Path())
		}
		if seen[obj] {
			continue
		}
		seen[obj] = true

		var results, returns []string
		for _, f := range r.Fields() {
			results = append(results, "*"+types.TypeString(f.Type(), im.qualify))
			returns = append(returns, "&x."+f.Name())
		}
		t := fieldsType{
			Name:    obj.Name(),
			Arity:   r.Arity,
			Results: strings.Join(results, ", "),
			Returns: strings.Join(returns, ", "),
		}
		if len(results) > 1 {
			t.Results = "(" + t.Results + ")"
		}
		data.Types = append(data.Types, t)
	}
	data.Imports = im.specs()

	var buf bytes.Buffer
	if err := fieldsTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render fields: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateFields renders and formats the methods for reports.
func GenerateFields(reports []source.Report, ceiling int) ([]byte, error) {
	src, err := RenderFields(reports, ceiling)
	if err != nil {
		return nil, err
	}
	return Format("mirror_gen.go", src)
}

// Package source infers the arity of struct types from Go source, using the
// type checker instead of reflection so results are available before the
// program is built.
package source

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"log/slog"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/Alia5/mirror/arity"
	"github.com/Alia5/mirror/internal/log"
)

// LoadMode is what Load needs from go/packages.
const LoadMode = packages.NeedName | packages.NeedTypes | packages.NeedTypesSizes | packages.NeedImports

type Inspector struct {
	logger *slog.Logger
}

func NewInspector(logger *slog.Logger) *Inspector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Inspector{logger: logger}
}

// Load type-checks the packages matching patterns, resolved from dir.
func (in *Inspector) Load(ctx context.Context, dir string, patterns ...string) ([]*packages.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     dir,
		Tests:   false,
	}

	in.logger.Debug("Loading packages", "dir", dir, "patterns", patterns)
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var errs []string
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			errs = append(errs, e.Error())
		}
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("load packages: %s", strings.Join(errs, "; "))
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages match %v", patterns)
	}
	return pkgs, nil
}

// Inspect loads the packages matching patterns and reports on the named
// types. With no names every exported struct type is reported.
func (in *Inspector) Inspect(ctx context.Context, dir string, patterns, names []string) ([]Report, error) {
	pkgs, err := in.Load(ctx, dir, patterns...)
	if err != nil {
		return nil, err
	}

	var reports []Report
	missing := map[string]bool{}
	for _, n := range names {
		missing[n] = true
	}
	for _, p := range pkgs {
		var want []string
		for _, n := range names {
			if p.Types.Scope().Lookup(n) != nil {
				want = append(want, n)
				delete(missing, n)
			}
		}
		if len(names) > 0 && len(want) == 0 {
			continue
		}
		rs, err := in.InspectPackage(p.Types, p.TypesSizes, want...)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rs...)
	}
	for _, n := range names {
		if missing[n] {
			return nil, fmt.Errorf("%s: %w", n, ErrNotFound)
		}
	}
	return reports, nil
}

// InspectPackage reports on the named types of pkg. With no names every
// exported struct type in the package scope is reported, in name order.
func (in *Inspector) InspectPackage(pkg *types.Package, sizes types.Sizes, names ...string) ([]Report, error) {
	if sizes == nil {
		sizes = defaultSizes()
	}

	all := len(names) == 0
	if all {
		names = pkg.Scope().Names()
	}

	var reports []Report
	for _, n := range names {
		obj, ok := pkg.Scope().Lookup(n).(*types.TypeName)
		if !ok {
			if all {
				continue
			}
			return nil, fmt.Errorf("%s.%s: %w", pkg.Path(), n, ErrNotFound)
		}
		if all && !inspectable(obj) {
			continue
		}
		target := types.Unalias(obj.Type())
		named, ok := target.(*types.Named)
		if !ok {
			if all {
				continue
			}
			reports = append(reports, unnamed(pkg, n, target))
			continue
		}
		reports = append(reports, in.inspect(pkg, n, named, sizes))
	}
	return reports, nil
}

func inspectable(obj *types.TypeName) bool {
	if !obj.Exported() || obj.IsAlias() {
		return false
	}
	_, ok := obj.Type().Underlying().(*types.Struct)
	return ok
}

func (in *Inspector) inspect(pkg *types.Package, name string, named *types.Named, sizes types.Sizes) Report {
	r := Report{Name: name, Package: pkg.Path(), Named: named}
	if err := Eligible(named); err != nil {
		in.logger.Debug("Type is ineligible", "type", r.qualified(), "reason", err)
		r.Err = err
		r.Ineligible = err.Error()
		return r
	}

	n, err := arity.CountWith(NewType(named, sizes), func(k uint64, ok bool) {
		in.logger.Log(context.Background(), log.LevelTrace, "Oracle query", "type", r.qualified(), "k", k, "constructible", ok)
	})
	if err != nil {
		r.Err = err
		r.Ineligible = err.Error()
		return r
	}
	r.Arity = n
	in.logger.Debug("Inferred arity", "type", r.qualified(), "arity", n)
	return r
}

// unnamed reports an alias whose target has no name of its own. Methods
// cannot be declared on it, so it is never eligible.
func unnamed(pkg *types.Package, name string, target types.Type) Report {
	reason := ErrNotStruct
	if _, ok := target.(*types.Struct); ok {
		reason = ErrUnnamedStruct
	}
	r := Report{Name: name, Package: pkg.Path()}
	r.Err = &IneligibleError{Type: pkg.Path() + "." + name, Reason: reason}
	r.Ineligible = r.Err.Error()
	return r
}

func (r Report) qualified() string { return r.Package + "." + r.Name }

// CheckSource type-checks a single file as its own package. Imports are
// resolved from source, so only the standard library is reachable.
func CheckSource(filename, src string) (*types.Package, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	var errs []error
	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Sizes:    defaultSizes(),
		Error:    func(err error) { errs = append(errs, err) },
	}
	pkg, _ := conf.Check(f.Name.Name, fset, []*ast.File{f}, nil)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return pkg, nil
}

package codegen

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Alia5/mirror/internal/configpaths"
	"github.com/Alia5/mirror/internal/log"
	"github.com/Alia5/mirror/internal/source"
)

// Generator drives table and fields generation and writes the results.
type Generator struct {
	logger *slog.Logger
	dump   log.DumpLogger
}

func New(logger *slog.Logger, dump log.DumpLogger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if dump == nil {
		dump = log.NewDump(nil)
	}
	return &Generator{
		logger: logger,
		dump:   dump,
	}
}

// Table renders and formats the projector table for o. The unformatted
// source is dumped first, so a stencil that produces invalid Go can be
// inspected.
func (g *Generator) Table(o TableOptions) ([]byte, error) {
	src, err := RenderTable(o)
	if err != nil {
		return nil, err
	}
	g.dump.Dump("table", src)
	out, err := Format("project_gen.go", src)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Rendered table", "package", o.Package, "ceiling", o.Ceiling, "bytes", len(out))
	return out, nil
}

// CheckTable returns ErrStale when the table at path was not generated from o.
func (g *Generator) CheckTable(o TableOptions, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	stale, err := Stale(src, o)
	if err != nil {
		return err
	}
	if stale {
		got, _ := ReadFingerprint(src)
		want, _ := Fingerprint(o)
		g.logger.Warn("Generated table is stale", "path", path, "have", got, "want", want)
		return fmt.Errorf("%s: %w", path, ErrStale)
	}
	g.logger.Info("Generated table is up to date", "path", path)
	return nil
}

// Fields inspects the named types in the package matching pattern and
// renders their typed projections.
func (g *Generator) Fields(ctx context.Context, dir, pattern string, names []string, ceiling int) ([]byte, error) {
	if len(names) == 0 {
		return nil, ErrNothingToGenerate
	}
	reports, err := source.NewInspector(g.logger).Inspect(ctx, dir, []string{pattern}, names)
	if err != nil {
		return nil, err
	}
	src, err := RenderFields(reports, ceiling)
	if err != nil {
		return nil, err
	}
	g.dump.Dump("fields", src)
	return Format("mirror_gen.go", src)
}

// WriteFile writes generated source to path, creating parent directories.
func (g *Generator) WriteFile(path string, data []byte) error {
	if err := configpaths.EnsureDir(path); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	g.logger.Info("Wrote generated file", "path", path, "bytes", len(data))
	return nil
}

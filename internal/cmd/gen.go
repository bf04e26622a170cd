package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Alia5/mirror/internal/codegen"
	"github.com/Alia5/mirror/internal/log"
)

// Gen groups the code generators.
type Gen struct {
	Table  GenTable  `cmd:"" help:"Generate the runtime projector table"`
	Fields GenFields `cmd:"" help:"Generate typed MirrorArity and MirrorFields methods for struct types"`
}

// GenTable writes the per-arity projector table the mirror package
// dispatches through.
type GenTable struct {
	Package string `help:"Package clause of the generated file" default:"mirror" env:"MIRROR_GEN_PACKAGE"`
	Ceiling int    `help:"Largest arity the table supports (1-255)" default:"32" env:"MIRROR_GEN_CEILING"`
	Stencil string `help:"Template file that replaces the built-in per-arity stencil" type:"existingfile"`
	Output  string `name:"table-output" short:"o" help:"Destination file, or '-' for stdout" default:"project_gen.go" env:"MIRROR_GEN_TABLE_OUTPUT"`
	Check   bool   `help:"Verify the destination is up to date instead of writing it"`

	Out io.Writer `kong:"-"`
}

func (c *GenTable) options() (codegen.TableOptions, error) {
	o := codegen.TableOptions{Package: c.Package, Ceiling: c.Ceiling}
	if c.Stencil != "" {
		data, err := os.ReadFile(c.Stencil)
		if err != nil {
			return o, fmt.Errorf("read stencil: %w", err)
		}
		o.Stencil = string(data)
	}
	return o, nil
}

// Run is called by Kong when the gen table command is executed.
func (c *GenTable) Run(logger *slog.Logger, dump log.DumpLogger) error {
	o, err := c.options()
	if err != nil {
		return err
	}
	gen := codegen.New(logger, dump)

	if c.Check {
		if c.Output == "-" {
			return fmt.Errorf("--check needs a file for --table-output")
		}
		return gen.CheckTable(o, c.Output)
	}

	logger.Info("Generating projector table", "package", o.Package, "ceiling", o.Ceiling, "output", c.Output)
	data, err := gen.Table(o)
	if err != nil {
		return err
	}
	return c.write(gen, data)
}

func (c *GenTable) write(gen *codegen.Generator, data []byte) error {
	if c.Output == "-" {
		return writeTo(c.Out, data)
	}
	return gen.WriteFile(c.Output, data)
}

// GenFields writes typed projections for struct types, with arity decided
// from source.
type GenFields struct {
	Types   []string `name:"type" short:"t" required:"" help:"Type to generate methods for; repeatable"`
	Dir     string   `help:"Directory the package pattern is resolved from" default:"." type:"existingdir" env:"MIRROR_GEN_DIR"`
	Ceiling int      `help:"Largest arity to generate methods for" default:"32" env:"MIRROR_GEN_CEILING"`
	Output  string   `name:"fields-output" short:"o" help:"Destination file relative to --dir, or '-' for stdout" default:"mirror_gen.go" env:"MIRROR_GEN_FIELDS_OUTPUT"`
	Pattern string   `arg:"" optional:"" help:"Package pattern" default:"."`

	Out io.Writer `kong:"-"`
}

// Run is called by Kong when the gen fields command is executed.
func (c *GenFields) Run(logger *slog.Logger, dump log.DumpLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.Generate(ctx, logger, dump)
}

func (c *GenFields) Generate(ctx context.Context, logger *slog.Logger, dump log.DumpLogger) error {
	gen := codegen.New(logger, dump)

	logger.Info("Generating typed projections", "pattern", c.Pattern, "types", c.Types)
	data, err := gen.Fields(ctx, c.Dir, c.Pattern, c.Types, c.Ceiling)
	if err != nil {
		return err
	}
	if c.Output == "-" {
		return writeTo(c.Out, data)
	}
	dest := c.Output
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(c.Dir, dest)
	}
	return gen.WriteFile(dest, data)
}

func writeTo(w io.Writer, data []byte) error {
	if w == nil {
		w = os.Stdout
	}
	_, err := w.Write(data)
	return err
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/Alia5/mirror/internal/source"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Arity reports the inferred arity of struct types in Go packages.
type Arity struct {
	Dir      string   `help:"Directory package patterns are resolved from" default:"." type:"existingdir" env:"MIRROR_ARITY_DIR"`
	Format   string   `name:"report-format" short:"f" help:"Report format" enum:"text,json,yaml,toml" default:"text" env:"MIRROR_ARITY_FORMAT"`
	Types    []string `name:"type" short:"t" help:"Type to report on; repeatable (defaults to every exported struct type)"`
	Strict   bool     `help:"Fail when any reported type is ineligible" env:"MIRROR_ARITY_STRICT"`
	Patterns []string `arg:"" optional:"" name:"pattern" help:"Package patterns" default:"."`

	Out io.Writer `kong:"-"`
}

// Run is called by Kong when the arity command is executed.
func (a *Arity) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Report(ctx, logger)
}

func (a *Arity) Report(ctx context.Context, logger *slog.Logger) error {
	logger.Debug("Inspecting packages", "dir", a.Dir, "patterns", a.Patterns, "types", a.Types)

	reports, err := source.NewInspector(logger).Inspect(ctx, a.Dir, a.Patterns, a.Types)
	if err != nil {
		return err
	}

	out := a.Out
	if out == nil {
		out = os.Stdout
	}
	if err := writeReports(out, a.Format, reports); err != nil {
		return err
	}

	if a.Strict {
		bad := 0
		for _, r := range reports {
			if !r.OK() {
				bad++
			}
		}
		if bad > 0 {
			return fmt.Errorf("%d of %d types are ineligible", bad, len(reports))
		}
	}
	return nil
}

type reportDoc struct {
	Types []source.Report `json:"types" yaml:"types" toml:"types"`
}

func writeReports(w io.Writer, format string, reports []source.Report) error {
	if reports == nil {
		reports = []source.Report{}
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reportDoc{Types: reports})
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reportDoc{Types: reports}); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		data, err := toml.Marshal(reportDoc{Types: reports})
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "PACKAGE\tTYPE\tARITY")
		for _, r := range reports {
			n := fmt.Sprint(r.Arity)
			if !r.OK() {
				n = "- (" + r.Ineligible + ")"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Package, r.Name, n)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

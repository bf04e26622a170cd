package main

import (
	"os"
	"strings"

	"github.com/Alia5/mirror/internal/codegen"
	"github.com/Alia5/mirror/internal/config"
	"github.com/Alia5/mirror/internal/configpaths"
	"github.com/Alia5/mirror/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {

	userCfg := findUserConfig(os.Args[1:])
	paths := configpaths.ConfigCandidatePaths(userCfg)

	version, err := codegen.GetVersion()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("mirror"),
		kong.Description("Infer struct arity and generate field projections"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, paths.JSON...),
		kong.Configuration(kongyaml.Loader, paths.YAML...),
		kong.Configuration(kongtoml.Loader, paths.TOML...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File, cli.Log.Format)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var dump log.DumpLogger
	if cli.Log.DumpFile != "" {
		f, err := os.OpenFile(cli.Log.DumpFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open dump file", "file", cli.Log.DumpFile, "error", err)
			dump = log.NewDump(nil)
		} else {
			dump = log.NewDump(f)
			closeFiles = append(closeFiles, f)
		}
	} else if cli.Log.Level == "trace" {
		// stdout may carry generated code.
		dump = log.NewDump(os.Stderr)
	} else {
		dump = log.NewDump(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(dump, (*log.DumpLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

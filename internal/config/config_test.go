package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/mirror/internal/cmd"
)

func parseWith(t *testing.T, cfgPath string, args ...string) (*CLI, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("mirror"),
		kong.Exit(func(int) {}),
		kong.Configuration(kong.JSON, cfgPath),
	)
	require.NoError(t, err)
	_, err = parser.Parse(args)
	return &cli, err
}

// Every template written by config init must be loadable while running any
// other command, without changing what that command does.
func TestTemplatesDoNotLeakAcrossCommands(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	for _, template := range []string{"arity", "gen-table", "gen-fields"} {
		t.Run(template, func(t *testing.T) {
			cfg := filepath.Join(t.TempDir(), ".mirror.json")
			require.NoError(t, (&cmd.ConfigInit{Command: template, Format: "json", Output: cfg}).Run(logger))

			cli, err := parseWith(t, cfg, "arity")
			require.NoError(t, err)
			assert.Equal(t, "text", cli.Arity.Format)
			assert.Empty(t, cli.Arity.Types)

			cli, err = parseWith(t, cfg, "gen", "table")
			require.NoError(t, err)
			assert.Equal(t, "project_gen.go", cli.Gen.Table.Output)
			assert.Empty(t, cli.Gen.Table.Stencil)

			cli, err = parseWith(t, cfg, "gen", "fields", "-t", "Vec4")
			require.NoError(t, err)
			assert.Equal(t, "mirror_gen.go", cli.Gen.Fields.Output)
			assert.Equal(t, []string{"Vec4"}, cli.Gen.Fields.Types)

			cli, err = parseWith(t, cfg, "config", "init", "gen-table", "--force")
			require.NoError(t, err)
			assert.Equal(t, "json", cli.ConfigCmd.Init.Format)
			assert.Empty(t, cli.ConfigCmd.Init.Output)
		})
	}
}

func TestConfigValuesApply(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), ".mirror.json")
	require.NoError(t, (&cmd.ConfigInit{Command: "gen-table", Format: "json", Output: cfg}).Run(slog.New(slog.DiscardHandler)))

	cli, err := parseWith(t, cfg, "gen", "table", "--ceiling", "8")
	require.NoError(t, err)
	assert.Equal(t, 8, cli.Gen.Table.Ceiling, "flags override config values")
	assert.Equal(t, "mirror", cli.Gen.Table.Package)
}

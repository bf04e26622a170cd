package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestConfigKey(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"Dir", "dir"},
		{"DumpFile", "dump_file"},
		{"Types", "type"},
		{"Ceiling", "ceiling"},
	}
	typ := reflect.TypeOf(struct {
		Dir      string
		DumpFile string
		Types    []string `name:"type"`
		Ceiling  int
	}{})
	for _, tt := range tests {
		f, ok := typ.FieldByName(tt.field)
		require.True(t, ok)
		assert.Equal(t, tt.want, configKey(f))
	}
	assert.Equal(t, "http-addr", kebab("HTTPAddr"))
}

func TestConfigInitJSON(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "gen-table.json")
	c := &ConfigInit{Command: "gen-table", Format: "json", Output: dest}
	require.NoError(t, c.Run(discard))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "mirror", m["package"])
	assert.EqualValues(t, 32, m["ceiling"])
	assert.Equal(t, "project_gen.go", m["table_output"])
	assert.Equal(t, false, m["check"])
	assert.NotContains(t, m, "out")
	assert.NotContains(t, m, "stencil", "an empty path would fail the existence check")

	assert.ErrorContains(t, c.Run(discard), "destination exists")
	c.Force = true
	require.NoError(t, c.Run(discard))
}

func TestConfigInitYAML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "arity.yaml")
	c := &ConfigInit{Command: "arity", Format: "yml", Output: dest}
	require.NoError(t, c.Run(discard))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, ".", m["dir"])
	assert.Equal(t, "text", m["report_format"])
	assert.NotContains(t, m, "format")
	assert.NotContains(t, m, "type")
	assert.NotContains(t, m, "pattern", "positional arguments are not configurable")
}

func TestConfigInitGlobal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses XDG_CONFIG_HOME")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	c := &ConfigInit{Command: "gen-fields", Format: "toml", Global: true}
	require.NoError(t, c.Run(discard))

	data, err := os.ReadFile(filepath.Join(xdg, "mirror", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `fields_output = "mirror_gen.go"`)
}

func TestConfigInitRejects(t *testing.T) {
	c := &ConfigInit{Command: "server", Format: "json", Output: filepath.Join(t.TempDir(), "x.json")}
	assert.Error(t, c.Run(discard))

	c = &ConfigInit{Command: "arity", Format: "ini"}
	assert.ErrorContains(t, c.Run(discard), "unsupported format")
}

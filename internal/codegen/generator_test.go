package codegen

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/mirror/internal/log"
)

func newTestGenerator(dump *bytes.Buffer) *Generator {
	logger := slog.New(slog.DiscardHandler)
	if dump == nil {
		return New(logger, nil)
	}
	return New(logger, log.NewDump(dump))
}

func TestGeneratorTableRoundTrip(t *testing.T) {
	var dump bytes.Buffer
	g := newTestGenerator(&dump)
	opts := TableOptions{Package: "proj", Ceiling: 5}

	out, err := g.Table(opts)
	require.NoError(t, err)
	assert.Contains(t, dump.String(), " table: ")

	path := filepath.Join(t.TempDir(), "nested", "project_gen.go")
	require.NoError(t, g.WriteFile(path, out))
	require.NoError(t, g.CheckTable(opts, path))

	err = g.CheckTable(TableOptions{Package: "proj", Ceiling: 6}, path)
	assert.ErrorIs(t, err, ErrStale)

	err = g.CheckTable(opts, filepath.Join(t.TempDir(), "missing.go"))
	assert.Error(t, err)
}

func TestGeneratorNilLogger(t *testing.T) {
	g := New(nil, nil)
	out, err := g.Table(TableOptions{Ceiling: 2})
	require.NoError(t, err)
	require.NoError(t, g.WriteFile(filepath.Join(t.TempDir(), "project_gen.go"), out))
}

func TestGeneratorCheckCommittedTable(t *testing.T) {
	g := newTestGenerator(nil)
	require.NoError(t, g.CheckTable(TableOptions{Package: "mirror", Ceiling: DefaultCeiling}, "../../project_gen.go"))
}

func TestGeneratorFields(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/geo\n\ngo 1.22\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "geo.go"), []byte(geoSource), 0o644))

	var dump bytes.Buffer
	g := newTestGenerator(&dump)

	out, err := g.Fields(context.Background(), dir, ".", []string{"Vec2", "Tag"}, DefaultCeiling)
	require.NoError(t, err)
	assert.Contains(t, string(out), "func (x *Vec2) MirrorFields() (*float64, *float64) {")
	assert.Contains(t, string(out), "func (Tag) MirrorArity() int { return 1 }")
	assert.Contains(t, dump.String(), " fields: ")

	_, err = g.Fields(context.Background(), dir, ".", []string{"Nope"}, DefaultCeiling)
	assert.Error(t, err)

	_, err = g.Fields(context.Background(), dir, ".", nil, DefaultCeiling)
	assert.ErrorIs(t, err, ErrNothingToGenerate)
}

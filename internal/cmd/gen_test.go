package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/mirror/internal/codegen"
	"github.com/Alia5/mirror/internal/log"
)

func TestGenTableWriteAndCheck(t *testing.T) {
	out := filepath.Join(t.TempDir(), "project_gen.go")
	c := &GenTable{Package: "proj", Ceiling: 4, Output: out}

	require.NoError(t, c.Run(discard, log.NewDump(nil)))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "const Ceiling = 4")

	c.Check = true
	require.NoError(t, c.Run(discard, log.NewDump(nil)))

	c.Ceiling = 5
	assert.ErrorIs(t, c.Run(discard, log.NewDump(nil)), codegen.ErrStale)
}

func TestGenTableStdoutAndStencil(t *testing.T) {
	stencil := filepath.Join(t.TempDir(), "case.tmpl")
	require.NoError(t, os.WriteFile(stencil, []byte(codegen.DefaultStencil), 0o644))

	var buf, dump bytes.Buffer
	c := &GenTable{Package: "proj", Ceiling: 2, Stencil: stencil, Output: "-", Out: &buf}
	require.NoError(t, c.Run(discard, log.NewDump(&dump)))

	assert.True(t, strings.HasPrefix(buf.String(), "// Code generated by mirror gen table; DO NOT EDIT."))
	assert.Contains(t, dump.String(), "table:")

	c.Check = true
	assert.Error(t, c.Run(discard, log.NewDump(nil)))
}

func TestGenTableRejectsCeiling(t *testing.T) {
	c := &GenTable{Package: "proj", Ceiling: 0, Output: "-", Out: &bytes.Buffer{}}
	assert.ErrorIs(t, c.Run(discard, log.NewDump(nil)), codegen.ErrCeilingRange)
}

func TestGenFields(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	dir := writeModule(t)

	c := &GenFields{Types: []string{"Vec4", "Empty"}, Dir: dir, Ceiling: 32, Output: "mirror_gen.go", Pattern: "."}
	require.NoError(t, c.Generate(context.Background(), discard, log.NewDump(nil)))

	data, err := os.ReadFile(filepath.Join(dir, "mirror_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "func (Vec4) MirrorArity() int { return 4 }")
	assert.Contains(t, string(data), "func (x *Empty) MirrorFields() {}")

	c.Types = []string{"Vec4"}
	c.Ceiling = 3
	assert.ErrorIs(t, c.Generate(context.Background(), discard, log.NewDump(nil)), codegen.ErrArityExceedsCeiling)
}

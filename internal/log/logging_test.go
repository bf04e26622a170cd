package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewHandlerFormats(t *testing.T) {
	var buf bytes.Buffer

	h, err := NewHandler(&buf, FormatJSON, LevelTrace)
	require.NoError(t, err)
	slog.New(h).Log(context.Background(), LevelTrace, "probe", "k", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "TRACE", rec["level"])
	assert.Equal(t, "probe", rec["msg"])
	assert.EqualValues(t, 3, rec["k"])

	buf.Reset()
	h, err = NewHandler(&buf, FormatAuto, slog.LevelInfo)
	require.NoError(t, err)
	slog.New(h).Info("not a terminal")
	assert.True(t, json.Valid(buf.Bytes()), "auto falls back to JSON off a terminal")

	buf.Reset()
	h, err = NewHandler(&buf, FormatText, slog.LevelInfo)
	require.NoError(t, err)
	slog.New(h).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	_, err = NewHandler(&buf, "xml", slog.LevelInfo)
	assert.Error(t, err)
}

func TestMultiHandlerFanOut(t *testing.T) {
	var low, high bytes.Buffer
	h := MultiHandler{hs: []slog.Handler{
		LevelFilter{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: slog.NewTextHandler(&low, nil)},
		LevelFilter{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: slog.NewTextHandler(&high, nil)},
	}}
	logger := slog.New(h).With("cmd", "arity")

	logger.Info("inferred")
	logger.Error("failed")

	assert.Contains(t, low.String(), "inferred")
	assert.NotContains(t, low.String(), "failed")
	assert.Contains(t, high.String(), "failed")
	assert.Contains(t, high.String(), "cmd=arity")
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestDumpLogger(t *testing.T) {
	var buf bytes.Buffer
	NewDump(&buf).Dump("table", []byte("package mirror\n\nfunc f() {}\n"))

	out := buf.String()
	assert.Contains(t, out, "table: 28 bytes")
	assert.Contains(t, out, "    1  package mirror\n")
	assert.Contains(t, out, "    3  func f() {}\n")

	assert.NotPanics(t, func() { NewDump(nil).Dump("table", []byte("x")) })
}

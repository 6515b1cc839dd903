package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isseis/go-cpp-embed/internal/color"
)

func newTestHandler(t *testing.T, level slog.Level) (*ConsoleHandler, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h, err := NewConsoleHandler(ConsoleHandlerOptions{Level: level, Writer: &buf})
	require.NoError(t, err)
	return h, &buf
}

func TestNewConsoleHandlerRequiresWriter(t *testing.T) {
	_, err := NewConsoleHandler(ConsoleHandlerOptions{})
	assert.ErrorIs(t, err, ErrConsoleHandlerWriterRequired)
}

func TestConsoleHandlerOutput(t *testing.T) {
	h, buf := newTestHandler(t, slog.LevelInfo)
	logger := slog.New(h)

	logger.Info("generating output", "files", 3, "namespace", "assets")
	assert.Equal(t, "INFO generating output files=3 namespace=assets\n", buf.String())
}

func TestConsoleHandlerLevelFiltering(t *testing.T) {
	h, buf := newTestHandler(t, slog.LevelWarn)
	logger := slog.New(h)

	logger.Info("suppressed")
	logger.Warn("kept")

	assert.Equal(t, "WARN kept\n", buf.String())
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestConsoleHandlerWithAttrsAndGroup(t *testing.T) {
	h, buf := newTestHandler(t, slog.LevelDebug)
	logger := slog.New(h).With("run_id", "01X").WithGroup("gen")

	logger.Debug("encoded", "bytes", 42)
	assert.Equal(t, "DEBUG encoded run_id=01X gen.bytes=42\n", buf.String())
}

func TestConsoleHandlerColoredLevelTag(t *testing.T) {
	var buf bytes.Buffer
	h, err := NewConsoleHandler(ConsoleHandlerOptions{
		Level:   slog.LevelInfo,
		Writer:  &buf,
		Palette: color.NewPalette(true),
	})
	require.NoError(t, err)

	slog.New(h).Error("boom")
	assert.Contains(t, buf.String(), "\033[31mERROR\033[0m boom")
}

func TestGenerateRunID(t *testing.T) {
	first := GenerateRunID()
	second := GenerateRunID()

	assert.Len(t, first, 26) // ULID canonical encoding
	assert.NotEqual(t, first, second)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidLogLevel, "input %q", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/isseis/go-cpp-embed/internal/color"
	"github.com/isseis/go-cpp-embed/internal/terminal"
)

// ErrInvalidLogLevel is returned for unrecognized log level names.
var ErrInvalidLogLevel = errors.New("invalid log level")

// GenerateRunID generates a new ULID identifying one generation run.
// ULIDs sort by creation time, which keeps interleaved logs from
// repeated runs readable.
func GenerateRunID() string {
	return ulid.Make().String()
}

// ParseLevel maps a level name (debug, info, warn, error) to slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
}

// Setup installs the default slog logger: a console handler writing to
// w, colored when w belongs to an interactive non-CI terminal.
func Setup(level string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	detector := terminal.NewDetector(terminal.DetectorOptions{})
	handler, err := NewConsoleHandler(ConsoleHandlerOptions{
		Level:   lvl,
		Writer:  w,
		Palette: color.NewPalette(detector.IsInteractive()),
	})
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

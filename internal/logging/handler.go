// Package logging provides the slog setup for the generator: a compact
// console handler with optional color, and per-run identifiers.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/isseis/go-cpp-embed/internal/color"
)

// Static errors for ConsoleHandler validation
var (
	ErrConsoleHandlerWriterRequired = errors.New("ConsoleHandler: Writer is required")
)

// ConsoleHandlerOptions configures a ConsoleHandler.
type ConsoleHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Level

	// Writer is the output destination (typically os.Stderr)
	Writer io.Writer

	// Palette colors the level tag; a zero Palette disables color
	Palette color.Palette
}

// ConsoleHandler is a slog handler producing single-line human-oriented
// output: a colored level tag, the message, then key=value attributes.
type ConsoleHandler struct {
	opts   ConsoleHandlerOptions
	attrs  []slog.Attr
	groups []string

	mu *sync.Mutex
}

// NewConsoleHandler creates a ConsoleHandler with the given options.
func NewConsoleHandler(opts ConsoleHandlerOptions) (*ConsoleHandler, error) {
	if opts.Writer == nil {
		return nil, ErrConsoleHandlerWriterRequired
	}
	return &ConsoleHandler{opts: opts, mu: &sync.Mutex{}}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

// Handle formats and writes the log record.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelTag(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value.Resolve())
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%v", h.qualify(a.Key), a.Value.Resolve())
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.opts.Writer, sb.String())
	return err
}

// WithAttrs returns a handler whose records carry the given attributes.
// Keys are qualified with the groups open at the time of the call.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: h.qualify(a.Key), Value: a.Value})
	}
	return &clone
}

func (h *ConsoleHandler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

// WithGroup returns a handler qualifying attribute keys with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func (h *ConsoleHandler) levelTag(level slog.Level) string {
	p := h.opts.Palette
	switch {
	case level >= slog.LevelError:
		return p.Red("ERROR")
	case level >= slog.LevelWarn:
		return p.Yellow("WARN")
	case level >= slog.LevelInfo:
		return p.Green("INFO")
	default:
		return p.Gray("DEBUG")
	}
}

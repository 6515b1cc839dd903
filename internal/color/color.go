// Package color provides small helpers for coloring terminal output
// using ANSI escape sequences. A Palette either wraps text with escape
// codes or passes it through untouched, so callers never need to branch
// on whether color is enabled.
//
//nolint:revive // package name conflicts with standard library
package color

// ANSI color codes
const (
	resetCode  = "\033[0m"
	grayCode   = "\033[90m" // Bright black/gray
	greenCode  = "\033[32m"
	yellowCode = "\033[33m"
	redCode    = "\033[31m"
	cyanCode   = "\033[36m"
)

// Palette wraps text with ANSI escape sequences when enabled, and
// returns it unchanged otherwise. The zero value is a disabled palette.
type Palette struct {
	enabled bool
}

// NewPalette returns a Palette that colorizes only when enabled is true.
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

// Enabled reports whether the palette emits escape sequences.
func (p Palette) Enabled() bool { return p.enabled }

func (p Palette) wrap(code, text string) string {
	if !p.enabled {
		return text
	}
	return code + text + resetCode
}

// Gray colors text in gray (bright black).
func (p Palette) Gray(text string) string { return p.wrap(grayCode, text) }

// Green colors text in green.
func (p Palette) Green(text string) string { return p.wrap(greenCode, text) }

// Yellow colors text in yellow.
func (p Palette) Yellow(text string) string { return p.wrap(yellowCode, text) }

// Red colors text in red.
func (p Palette) Red(text string) string { return p.wrap(redCode, text) }

// Cyan colors text in cyan.
func (p Palette) Cyan(text string) string { return p.wrap(cyanCode, text) }

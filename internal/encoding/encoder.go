// Package encoding converts raw byte streams into C++ literal text and
// back. The encoder is a streaming transcoder: it consumes input one
// byte at a time and never buffers more than the current output line,
// so arbitrarily large files can be embedded with constant memory.
package encoding

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Style selects the literal dialect the encoder emits.
type Style int

const (
	// StyleStringLiteral renders bytes as wrapped, escaped C++ string
	// literal segments. Denser and human-inspectable; the default.
	StyleStringLiteral Style = iota

	// StyleByteArray renders every byte as a two-hex-digit numeric
	// constant in comma-separated rows, with no special casing for
	// printable bytes.
	StyleByteArray
)

// String returns the flag/config spelling of the style.
func (s Style) String() string {
	switch s {
	case StyleStringLiteral:
		return "string"
	case StyleByteArray:
		return "array"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle converts the flag/config spelling back into a Style.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "string":
		return StyleStringLiteral, nil
	case "array":
		return StyleByteArray, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
}

const (
	// maxLineWidth is the column budget of one string literal segment.
	// Once the running width reaches it the segment is closed and a new
	// one opened on the next physical line.
	maxLineWidth = 120

	// DefaultRowWidth is the number of byte constants per row in the
	// byte-array dialect.
	DefaultRowWidth = 20
)

// Error definitions for the encoding package.
var (
	ErrUnknownStyle  = errors.New("unknown literal style")
	ErrInvalidEscape = errors.New("invalid escape sequence in literal")
	ErrUnterminated  = errors.New("unterminated literal segment")
	ErrBadByteToken  = errors.New("malformed byte constant in array literal")
)

const hexDigits = "0123456789abcdef"

// Options configures an Encoder.
type Options struct {
	Style Style

	// RowWidth is the number of constants per row for StyleByteArray.
	// Zero means DefaultRowWidth. Ignored by StyleStringLiteral.
	RowWidth int
}

// Encoder streams bytes into literal text on an io.Writer. Write may be
// called any number of times; Close terminates any open segment and
// must be called before the output is used. The zero value is not
// usable; use NewEncoder.
type Encoder struct {
	w    *bufio.Writer
	opts Options

	col   int   // current width of the open string literal segment, 0 when closed
	count int64 // total bytes consumed
	err   error // first write error, sticky
}

// NewEncoder returns an Encoder emitting literal text to w.
func NewEncoder(w io.Writer, opts Options) *Encoder {
	if opts.RowWidth <= 0 {
		opts.RowWidth = DefaultRowWidth
	}
	return &Encoder{w: bufio.NewWriter(w), opts: opts}
}

// Write encodes p, implementing io.Writer. It always reports len(p)
// bytes consumed unless the underlying writer fails.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	for i, c := range p {
		if e.opts.Style == StyleByteArray {
			e.writeArrayByte(c)
		} else {
			e.writeStringByte(c)
		}
		if e.err != nil {
			return i, e.err
		}
		e.count++
	}
	return len(p), nil
}

// Close terminates an open segment and flushes buffered output. The
// encoder must not be written to afterwards.
func (e *Encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	if e.opts.Style == StyleStringLiteral && e.col > 0 {
		e.emit("\"\n\n")
		e.col = 0
	}
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

// Count reports the number of input bytes consumed so far. After Close
// this is the decoded length of the emitted literal.
func (e *Encoder) Count() int64 { return e.count }

// writeStringByte emits one byte in the string literal dialect,
// applying the escaping table in priority order. Widths are fixed per
// case (1, 2 or 4 columns); the opening quote of a segment counts for
// one column.
func (e *Encoder) writeStringByte(c byte) {
	if e.col == 0 {
		e.emit("\"")
		e.col = 1
	}

	switch {
	case c == '"':
		e.emit("\\\"")
		e.col += 2
	case c == '\\':
		// Not escaping the backslash would make the literal ambiguous:
		// a raw \ followed by a printable n would decode as a newline.
		e.emit("\\\\")
		e.col += 2
	case c == '\n':
		// A newline closes the segment immediately so the generated
		// literal mirrors the line structure of text input.
		e.emit("\\n\"\n")
		e.col = 0
	case c == '\r':
		e.emit("\\r")
		e.col += 2
	case c == '\t':
		e.emit("\\t")
		e.col += 2
	case c >= 0x20 && c <= 0x7e:
		e.emitByte(c)
		e.col++
	default:
		e.emit("\\x")
		e.emitByte(hexDigits[c>>4])
		e.emitByte(hexDigits[c&0x0f])
		e.col += 4
	}

	if e.col >= maxLineWidth {
		e.emit("\"\n\n")
		e.col = 0
	}
}

// writeArrayByte emits one byte as a 0xhh constant, breaking the row
// every RowWidth constants.
func (e *Encoder) writeArrayByte(c byte) {
	if e.count%int64(e.opts.RowWidth) == 0 {
		e.emit("\n\t")
	}
	e.emit("0x")
	e.emitByte(hexDigits[c>>4])
	e.emitByte(hexDigits[c&0x0f])
	e.emit(",")
}

func (e *Encoder) emit(s string) {
	if e.err == nil {
		_, e.err = e.w.WriteString(s)
	}
}

func (e *Encoder) emitByte(c byte) {
	if e.err == nil {
		e.err = e.w.WriteByte(c)
	}
}

// Encode transcodes src to dst in one pass and returns the number of
// input bytes consumed.
func Encode(dst io.Writer, src io.Reader, opts Options) (int64, error) {
	enc := NewEncoder(dst, opts)
	if _, err := io.Copy(enc, src); err != nil {
		return enc.Count(), err
	}
	if err := enc.Close(); err != nil {
		return enc.Count(), err
	}
	return enc.Count(), nil
}

// EncodeBytes encodes b and returns the literal text alongside the
// decoded length.
func EncodeBytes(b []byte, opts Options) (string, int64, error) {
	var sb strings.Builder
	n, err := Encode(&sb, bytes.NewReader(b), opts)
	if err != nil {
		return "", n, err
	}
	return sb.String(), n, nil
}

package encoding

import (
	"fmt"
	"strings"
)

// Decode reverses the encoder for the given style. It is the normative
// inverse of Encode: for any input B, Decode(Encode(B)) == B.
func Decode(literal string, style Style) ([]byte, error) {
	switch style {
	case StyleStringLiteral:
		return DecodeStringLiteral(literal)
	case StyleByteArray:
		return DecodeByteArray(literal)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, int(style))
	}
}

// DecodeStringLiteral parses concatenated quoted segments produced by
// StyleStringLiteral back into the original byte sequence. Whitespace
// between segments is ignored; hex escapes are read as exactly two
// digits.
func DecodeStringLiteral(literal string) ([]byte, error) {
	out := make([]byte, 0, len(literal))
	inSegment := false

	for i := 0; i < len(literal); i++ {
		c := literal[i]
		if !inSegment {
			switch c {
			case '"':
				inSegment = true
			case ' ', '\t', '\n', '\r':
				// separator between segments
			default:
				return nil, fmt.Errorf("%w: unexpected %q outside segment at offset %d", ErrInvalidEscape, c, i)
			}
			continue
		}

		switch c {
		case '"':
			inSegment = false
		case '\\':
			if i+1 >= len(literal) {
				return nil, fmt.Errorf("%w: trailing backslash", ErrInvalidEscape)
			}
			i++
			switch literal[i] {
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'x':
				if i+2 >= len(literal) {
					return nil, fmt.Errorf("%w: truncated hex escape", ErrInvalidEscape)
				}
				hi, ok1 := hexValue(literal[i+1])
				lo, ok2 := hexValue(literal[i+2])
				if !ok1 || !ok2 {
					return nil, fmt.Errorf("%w: bad hex digits %q", ErrInvalidEscape, literal[i+1:i+3])
				}
				out = append(out, hi<<4|lo)
				i += 2
			default:
				return nil, fmt.Errorf("%w: \\%c", ErrInvalidEscape, literal[i])
			}
		default:
			out = append(out, c)
		}
	}

	if inSegment {
		return nil, ErrUnterminated
	}
	return out, nil
}

// DecodeByteArray parses comma-separated 0xhh constants produced by
// StyleByteArray back into the original byte sequence.
func DecodeByteArray(text string) ([]byte, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	out := make([]byte, 0, len(fields))
	for _, tok := range fields {
		if len(tok) != 4 || tok[0] != '0' || tok[1] != 'x' {
			return nil, fmt.Errorf("%w: %q", ErrBadByteToken, tok)
		}
		hi, ok1 := hexValue(tok[2])
		lo, ok2 := hexValue(tok[3])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: %q", ErrBadByteToken, tok)
		}
		out = append(out, hi<<4|lo)
	}
	return out, nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

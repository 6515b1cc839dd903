// Package identifier derives C++ symbol names from embedded file names.
package identifier

// Prefix is prepended to every derived identifier so the result starts
// with a letter regardless of the file name.
const Prefix = "file_"

// Derive maps a file name to a valid C++ identifier. ASCII letters and
// digits are kept as-is; every other byte is replaced with a single
// underscore, preserving length and ordering so the mapping stays
// visually traceable. The function is pure and never fails; an empty
// name yields just the prefix.
//
// Note that the mapping is not injective: "a.bin" and "a_bin" derive
// the same identifier. Callers that need uniqueness must disambiguate
// (see the generator package).
func Derive(fileName string) string {
	b := make([]byte, 0, len(Prefix)+len(fileName))
	b = append(b, Prefix...)
	for i := 0; i < len(fileName); i++ {
		if c := fileName[i]; isAlnum(c) {
			b = append(b, c)
		} else {
			b = append(b, '_')
		}
	}
	return string(b)
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

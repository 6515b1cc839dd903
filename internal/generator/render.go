package generator

import (
	"bytes"
	"fmt"

	"github.com/isseis/go-cpp-embed/internal/encoding"
)

const warningBanner = "// Generated by cppembed. DO NOT EDIT.\n" +
	"// WARNING: any change you make will be lost!\n"

// renderHeader produces the declaration document: the include guard,
// the total-count constant, one accessor declaration per file and the
// registry-wide operations.
func (a *Assembler) renderHeader(reg *Registry) []byte {
	var b bytes.Buffer
	guard := fmt.Sprintf("CPPEMBED_GENERATED_%s_H", a.opts.Namespace)

	b.WriteString(warningBanner)
	fmt.Fprintf(&b, "#ifndef %s\n", guard)
	fmt.Fprintf(&b, "#define %s\n", guard)
	b.WriteString("\n")
	b.WriteString("#include <cstddef>\n")
	b.WriteString("#include <map>\n")
	b.WriteString("#include <string>\n")
	b.WriteString("\n")

	if a.opts.Namespace != "" {
		fmt.Fprintf(&b, "namespace %s {\n", a.opts.Namespace)
		b.WriteString("\n")
	}

	b.WriteString("// total number of embedded files\n")
	fmt.Fprintf(&b, "constexpr std::size_t embeddedFileCount = %d;\n", reg.Len())

	for _, e := range reg.Entries() {
		b.WriteString("\n")
		fmt.Fprintf(&b, "// file \"%s\"\n", e.DisplayName)
		fmt.Fprintf(&b, "const std::string & get_%s();\n", e.Identifier)
	}

	b.WriteString(`
// returns all the embedded files indexed by their name
const std::map<std::string, std::string> & allEmbeddedFiles();

// returns the content of an embedded file (throws an exception if not found)
const std::string & mustGetFile(const std::string & fileName);
`)

	if a.opts.Namespace != "" {
		b.WriteString("\n")
		fmt.Fprintf(&b, "} // %s\n", a.opts.Namespace)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "#endif // %s\n", guard)
	return b.Bytes()
}

// renderBody produces the definition document: per-file name, size and
// literal data, the private map construction routine, and the public
// accessor bodies.
func (a *Assembler) renderBody(reg *Registry) []byte {
	var b bytes.Buffer

	b.WriteString(warningBanner)
	fmt.Fprintf(&b, "#include \"%s.h\"\n", a.opts.BaseName)
	b.WriteString("\n")
	b.WriteString("#include <stdexcept>\n")
	b.WriteString("\n")

	for _, e := range reg.Entries() {
		a.renderFileData(&b, e)
	}

	b.WriteString("static std::map<std::string, std::string> buildEmbeddedFileMap() {\n")
	b.WriteString("    std::map<std::string, std::string> result;\n")
	b.WriteString("\n")
	for _, e := range reg.Entries() {
		fmt.Fprintf(&b, "    result[name_%s] = %s;\n", e.Identifier, a.contentExpr(e))
	}
	b.WriteString("\n")
	b.WriteString("    return result;\n")
	b.WriteString("}\n")

	if a.opts.Namespace != "" {
		b.WriteString("\n")
		fmt.Fprintf(&b, "namespace %s {\n", a.opts.Namespace)
	}

	for _, e := range reg.Entries() {
		b.WriteString("\n")
		fmt.Fprintf(&b, "const std::string & get_%s() {\n", e.Identifier)
		fmt.Fprintf(&b, "    static const std::string s_data = %s;\n", a.contentExpr(e))
		b.WriteString("    return s_data;\n")
		b.WriteString("}\n")
	}

	b.WriteString(`
const std::map<std::string, std::string> & allEmbeddedFiles() {
    static const std::map<std::string, std::string> s_map = buildEmbeddedFileMap();
    return s_map;
}

const std::string & mustGetFile(const std::string & fileName) {
    const auto & files = allEmbeddedFiles();
    const auto it = files.find(fileName);
    if (it != files.end()) {
        return it->second;
    }
    throw std::runtime_error{ "embedded file not found: " + fileName };
}
`)

	if a.opts.Namespace != "" {
		b.WriteString("\n")
		fmt.Fprintf(&b, "} // %s\n", a.opts.Namespace)
	}
	return b.Bytes()
}

// renderFileData emits the name, size and data definitions for one
// entry. The display name goes through the string-literal encoder too,
// so quotes or non-ASCII bytes in file names cannot break the document.
func (a *Assembler) renderFileData(b *bytes.Buffer, e Entry) {
	fmt.Fprintf(b, "static const char * name_%s = %s;\n", e.Identifier, cppStringConstant(e.DisplayName))
	fmt.Fprintf(b, "static const unsigned int size_%s = %d;\n", e.Identifier, e.Size)

	if a.opts.Style == encoding.StyleByteArray {
		if e.Literal == "" {
			// A zero-length array is not valid C++; the padding byte is
			// never read because size_ is 0.
			fmt.Fprintf(b, "static const unsigned char data_%s[] = { 0 };\n", e.Identifier)
		} else {
			fmt.Fprintf(b, "static const unsigned char data_%s[] = {%s\n};\n", e.Identifier, e.Literal)
		}
	} else {
		if e.Literal == "" {
			fmt.Fprintf(b, "static const char data_%s[] = \"\";\n", e.Identifier)
		} else {
			fmt.Fprintf(b, "static const char data_%s[] =\n%s;\n", e.Identifier, e.Literal)
		}
	}
	b.WriteString("\n")
}

// contentExpr is the C++ expression yielding the entry's content as a
// std::string. Construction goes through the explicit (pointer, size)
// constructor so embedded NUL bytes survive.
func (a *Assembler) contentExpr(e Entry) string {
	if a.opts.Style == encoding.StyleByteArray {
		return fmt.Sprintf("std::string(reinterpret_cast<const char *>(data_%s), size_%s)", e.Identifier, e.Identifier)
	}
	return fmt.Sprintf("std::string(data_%s, size_%s)", e.Identifier, e.Identifier)
}

// cppStringConstant renders s as a single-line C++ string constant
// using the same escaping table as the literal encoder.
func cppStringConstant(s string) string {
	var b bytes.Buffer
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			b.WriteString("\\\"")
		case c == '\\':
			b.WriteString("\\\\")
		case c >= 0x20 && c <= 0x7e:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "\\x%02x", c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Package cmdcommon provides shared metadata and helpers for the
// command-line tools.
package cmdcommon

import (
	"fmt"
	"io"
)

// Name is the program name used in log and usage output.
const Name = "cppembed"

// DefaultOutputBase is the base name of the generated documents when -o
// is not given.
const DefaultOutputBase = "embedded_files"

// Build-time variables (set via ldflags)
var (
	Version = "dev"
)

// PrintUsage writes the usage message to w.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, "%s: generates C++ source code which embeds several external (binary) files.\n", Name)
	fmt.Fprintln(w, "Supported options:")
	fmt.Fprintln(w, " <input>          : path to an input file or directory to embed in C++ code.")
	fmt.Fprintln(w, "                    If it's a directory, its content will be recursively iterated.")
	fmt.Fprintln(w, "                    Note: several inputs can be passed on the command line.")
	fmt.Fprintln(w, " -h               : this help message.")
	fmt.Fprintln(w, " -d <path>        : directory where to save the generated files.")
	fmt.Fprintln(w, " -o <name>        : base name to be used for the generated .h/.cpp files.")
	fmt.Fprintf(w, "                    => '-o generated' will produce 'generated.h' and 'generated.cpp' files.\n")
	fmt.Fprintf(w, "                    Default value is '%s'.\n", DefaultOutputBase)
	fmt.Fprintln(w, " -ns <name>       : name of the namespace to be used in generated code (recommended).")
	fmt.Fprintln(w, "                    Default is empty (no namespace).")
	fmt.Fprintln(w, " -style <name>    : literal style, 'string' (default) or 'array'.")
	fmt.Fprintln(w, " -row-width <n>   : byte constants per row for the 'array' style.")
	fmt.Fprintln(w, " -strict-names    : fail when two inputs share a file name.")
	fmt.Fprintln(w, " -verify          : decode every literal after encoding as a self check.")
	fmt.Fprintln(w, " -config <path>   : TOML manifest; explicitly set flags take precedence.")
	fmt.Fprintln(w, " -log-level <lvl> : debug, info, warn or error (default info).")
	fmt.Fprintln(w, " -version         : print version and exit.")
}

package generator

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/isseis/go-cpp-embed/internal/common"
	"github.com/isseis/go-cpp-embed/internal/discovery"
	"github.com/isseis/go-cpp-embed/internal/encoding"
	"github.com/isseis/go-cpp-embed/internal/identifier"
)

// File permissions for generated documents
const outputFilePerm = 0o644

// Options configures one generation run.
type Options struct {
	// OutputDir is the directory the two documents are written to.
	OutputDir string

	// BaseName names the documents: <BaseName>.h and <BaseName>.cpp.
	BaseName string

	// Namespace optionally wraps the generated public surface; it also
	// feeds the header include guard.
	Namespace string

	// Style selects the literal dialect.
	Style encoding.Style

	// RowWidth is the constants-per-row budget for the byte-array
	// dialect; zero means encoding.DefaultRowWidth.
	RowWidth int

	// StrictNames rejects duplicate display names instead of letting
	// the later input shadow the earlier one.
	StrictNames bool

	// Verify decodes every literal after encoding and checks it
	// reproduces the input bytes exactly.
	Verify bool
}

// Assembler encodes discovered files and emits the generated documents.
type Assembler struct {
	fs   common.FileSystem
	opts Options
}

// New creates an Assembler backed by the real file system.
func New(opts Options) *Assembler {
	return NewWithFS(opts, common.NewDefaultFileSystem())
}

// NewWithFS creates an Assembler with a custom FileSystem.
func NewWithFS(opts Options, fsys common.FileSystem) *Assembler {
	return &Assembler{fs: fsys, opts: opts}
}

// HeaderPath returns the destination of the declaration document.
func (a *Assembler) HeaderPath() string {
	return filepath.Join(a.opts.OutputDir, a.opts.BaseName+".h")
}

// BodyPath returns the destination of the definition document.
func (a *Assembler) BodyPath() string {
	return filepath.Join(a.opts.OutputDir, a.opts.BaseName+".cpp")
}

// BuildRegistry reads and encodes every discovered file exactly once
// and assembles the immutable registry. Identifiers are derived per
// file and disambiguated with a discovery-order suffix when two names
// collide after substitution.
func (a *Assembler) BuildRegistry(files []discovery.File) (*Registry, error) {
	reg := &Registry{
		entries: make([]Entry, 0, len(files)),
		byName:  make(map[string]int, len(files)),
	}
	usedIdentifiers := make(map[string]bool, len(files))

	for _, f := range files {
		if _, dup := reg.byName[f.DisplayName]; dup && a.opts.StrictNames {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, f.DisplayName)
		}

		content, err := a.fs.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input %s: %w", f.Path, err)
		}

		literal, size, err := encoding.EncodeBytes(content, encoding.Options{
			Style:    a.opts.Style,
			RowWidth: a.opts.RowWidth,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", f.Path, err)
		}

		if a.opts.Verify {
			if err := a.verify(f.Path, content, literal); err != nil {
				return nil, err
			}
		}

		entry := Entry{
			Path:        f.Path,
			DisplayName: f.DisplayName,
			Identifier:  a.assignIdentifier(f.DisplayName, usedIdentifiers),
			Literal:     literal,
			Size:        size,
		}
		reg.byName[entry.DisplayName] = len(reg.entries)
		reg.entries = append(reg.entries, entry)

		slog.Info("embedded file", "name", entry.DisplayName, "identifier", entry.Identifier, "bytes", size)
	}

	return reg, nil
}

// assignIdentifier derives the identifier for name and resolves
// collisions by appending _2, _3, ... in discovery order.
func (a *Assembler) assignIdentifier(name string, used map[string]bool) string {
	id := identifier.Derive(name)
	candidate := id
	for n := 2; used[candidate]; n++ {
		candidate = fmt.Sprintf("%s_%d", id, n)
	}
	used[candidate] = true
	if candidate != id {
		slog.Warn("identifier collision disambiguated", "name", name, "identifier", candidate)
	}
	return candidate
}

func (a *Assembler) verify(path string, content []byte, literal string) error {
	decoded, err := encoding.Decode(literal, a.opts.Style)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrVerifyMismatch, path, err)
	}
	if !bytes.Equal(decoded, content) {
		return fmt.Errorf("%w: %s", ErrVerifyMismatch, path)
	}
	return nil
}

// Generate writes the declaration and definition documents. A write
// failure is fatal; any partially written destination is invalid and
// must be regenerated.
func (a *Assembler) Generate(reg *Registry) error {
	headerPath := a.HeaderPath()
	slog.Info("generating declaration document", "path", headerPath)
	if err := a.fs.WriteFile(headerPath, a.renderHeader(reg), outputFilePerm); err != nil {
		return fmt.Errorf("failed to create header file %s: %w", headerPath, err)
	}

	bodyPath := a.BodyPath()
	slog.Info("generating definition document", "path", bodyPath)
	if err := a.fs.WriteFile(bodyPath, a.renderBody(reg), outputFilePerm); err != nil {
		return fmt.Errorf("failed to create body file %s: %w", bodyPath, err)
	}
	return nil
}

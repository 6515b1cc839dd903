// Package discovery expands command line inputs into the ordered list
// of files to embed. A regular file contributes itself; a directory is
// walked recursively in lexical order; anything else aborts the run.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/isseis/go-cpp-embed/internal/common"
)

// ErrInputNotFound is returned when an input is neither a readable file
// nor a traversable directory.
var ErrInputNotFound = errors.New("input is not a file or directory")

// File is one discovered input: the path to read its bytes from and the
// base name under which it will be retrievable in the generated
// registry.
type File struct {
	Path        string
	DisplayName string
}

// Discoverer resolves inputs against a file system.
type Discoverer struct {
	fs common.FileSystem
}

// New creates a Discoverer backed by the real file system.
func New() *Discoverer {
	return NewWithFS(common.NewDefaultFileSystem())
}

// NewWithFS creates a Discoverer with a custom FileSystem.
func NewWithFS(fsys common.FileSystem) *Discoverer {
	return &Discoverer{fs: fsys}
}

// Discover expands inputs in order. Directory contents are appended in
// the walk's lexical order, so the result is stable and reproducible
// for identical input.
func (d *Discoverer) Discover(inputs []string) ([]File, error) {
	var files []File
	for _, input := range inputs {
		isDir, err := d.fs.IsDir(input)
		switch {
		case err == nil && isDir:
			dirFiles, err := d.walk(input)
			if err != nil {
				return nil, err
			}
			files = append(files, dirFiles...)
		case err == nil:
			files = append(files, newFile(input))
		default:
			exists, existsErr := d.fs.FileExists(input)
			if existsErr == nil && !exists {
				return nil, fmt.Errorf("%w: %s", ErrInputNotFound, input)
			}
			return nil, fmt.Errorf("cannot access input %s: %w", input, err)
		}
	}
	slog.Debug("input discovery finished", "inputs", len(inputs), "files", len(files))
	return files, nil
}

func (d *Discoverer) walk(root string) ([]File, error) {
	var files []File
	err := d.fs.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() {
			files = append(files, newFile(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

func newFile(path string) File {
	return File{Path: path, DisplayName: filepath.Base(path)}
}

package common

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests. Paths are
// slash-separated and compared literally; callers should use the same
// form when populating and querying.
type MockFileSystem struct {
	files map[string][]byte
	dirs  map[string]bool

	// WriteErr, when set, is returned by WriteFile to simulate output
	// creation failures.
	WriteErr error
}

// NewMockFileSystem creates an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// AddFile registers a file with the given content, creating parent
// directories implicitly.
func (m *MockFileSystem) AddFile(p string, content []byte) {
	m.files[p] = content
	for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
	m.dirs["/"] = true
}

// AddDir registers an (possibly empty) directory.
func (m *MockFileSystem) AddDir(p string) {
	m.dirs[p] = true
}

// Written returns the content written to p via WriteFile, if any.
func (m *MockFileSystem) Written(p string) ([]byte, bool) {
	b, ok := m.files[p]
	return b, ok
}

// Lstat returns file information without following symlinks
func (m *MockFileSystem) Lstat(p string) (fs.FileInfo, error) {
	if content, ok := m.files[p]; ok {
		return mockFileInfo{name: path.Base(p), size: int64(len(content))}, nil
	}
	if m.dirs[p] {
		return mockFileInfo{name: path.Base(p), dir: true}, nil
	}
	return nil, &os.PathError{Op: "lstat", Path: p, Err: os.ErrNotExist}
}

// FileExists checks if a file or directory exists
func (m *MockFileSystem) FileExists(p string) (bool, error) {
	if p == "" {
		return false, ErrEmptyPath
	}
	_, hasFile := m.files[p]
	return hasFile || m.dirs[p], nil
}

// IsDir checks if the path is a directory
func (m *MockFileSystem) IsDir(p string) (bool, error) {
	if m.dirs[p] {
		return true, nil
	}
	if _, ok := m.files[p]; ok {
		return false, nil
	}
	return false, &os.PathError{Op: "stat", Path: p, Err: os.ErrNotExist}
}

// WalkDir walks the registered entries under root in lexical order.
func (m *MockFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	if !m.dirs[root] {
		if _, ok := m.files[root]; !ok {
			return &os.PathError{Op: "walkdir", Path: root, Err: os.ErrNotExist}
		}
	}

	var paths []string
	for p := range m.files {
		if p == root || strings.HasPrefix(p, root+"/") {
			paths = append(paths, p)
		}
	}
	for p := range m.dirs {
		if p == root || strings.HasPrefix(p, root+"/") {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	for _, p := range paths {
		fi, err := m.Lstat(p)
		if err != nil {
			return err
		}
		if err := fn(p, fs.FileInfoToDirEntry(fi), nil); err != nil {
			if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
				return nil
			}
			return err
		}
	}
	return nil
}

// MkdirAll creates a directory and all necessary parents
func (m *MockFileSystem) MkdirAll(p string, _ os.FileMode) error {
	for dir := p; dir != "." && dir != "/"; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
	return nil
}

// ReadFile returns the full content of a regular file
func (m *MockFileSystem) ReadFile(p string) ([]byte, error) {
	content, ok := m.files[p]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: p, Err: os.ErrNotExist}
	}
	return content, nil
}

// WriteFile writes content to a file, creating or replacing it
func (m *MockFileSystem) WriteFile(p string, content []byte, _ os.FileMode) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.AddFile(p, content)
	return nil
}

// mockFileInfo is a minimal fs.FileInfo for mock entries.
type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi mockFileInfo) Name() string { return fi.name }
func (fi mockFileInfo) Size() int64  { return fi.size }
func (fi mockFileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (fi mockFileInfo) ModTime() time.Time { return time.Time{} }
func (fi mockFileInfo) IsDir() bool        { return fi.dir }
func (fi mockFileInfo) Sys() any           { return nil }

// Package common provides shared interfaces and utilities used across
// the generator packages.
//
//nolint:revive // var-naming: package name "common" is intentional for shared internal utilities
package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/isseis/go-cpp-embed/internal/safefileio"
)

// Error definitions for static error handling
var (
	ErrEmptyPath = errors.New("path cannot be empty")
)

// FileSystem defines the interface for file system operations used by
// discovery, configuration loading and document output. It allows for
// easy mocking in tests and provides a consistent API across packages.
type FileSystem interface {
	// Lstat returns file information without following symlinks
	Lstat(path string) (fs.FileInfo, error)

	// FileExists checks if a file or directory exists
	FileExists(path string) (bool, error)

	// IsDir checks if the path is a directory
	IsDir(path string) (bool, error)

	// WalkDir walks the file tree rooted at root in lexical order
	WalkDir(root string, fn fs.WalkDirFunc) error

	// MkdirAll creates a directory and all necessary parents
	MkdirAll(path string, perm os.FileMode) error

	// ReadFile returns the full content of a regular file
	ReadFile(path string) ([]byte, error)

	// WriteFile writes content to a file, creating or replacing it
	WriteFile(path string, content []byte, perm os.FileMode) error
}

// DefaultFileSystem implements FileSystem using the os package, with
// reads and writes routed through safefileio for symlink protection.
type DefaultFileSystem struct{}

// NewDefaultFileSystem creates a new DefaultFileSystem
func NewDefaultFileSystem() *DefaultFileSystem {
	return &DefaultFileSystem{}
}

// Lstat returns file information without following symlinks
func (*DefaultFileSystem) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

// FileExists checks if a file or directory exists
func (*DefaultFileSystem) FileExists(path string) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}
	_, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsDir checks if the path is a directory
func (*DefaultFileSystem) IsDir(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return fi.IsDir(), nil
}

// WalkDir walks the file tree rooted at root in lexical order
func (*DefaultFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// MkdirAll creates a directory and all necessary parents
func (*DefaultFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// ReadFile returns the full content of a regular file
func (*DefaultFileSystem) ReadFile(path string) ([]byte, error) {
	return safefileio.SafeReadFile(path)
}

// WriteFile writes content to a file, creating or replacing it
func (*DefaultFileSystem) WriteFile(path string, content []byte, perm os.FileMode) error {
	return safefileio.SafeWriteFile(path, content, perm)
}

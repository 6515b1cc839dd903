package safefileio

import "errors"

// Error definitions for safe file operations.
var (
	// ErrInvalidFilePath indicates the path could not be resolved or does
	// not refer to a regular file.
	ErrInvalidFilePath = errors.New("invalid file path")

	// ErrIsSymlink indicates the path or one of its components is a
	// symbolic link, which is refused to avoid writing or reading through
	// attacker-controlled links.
	ErrIsSymlink = errors.New("path is or contains a symlink")

	// ErrFileTooLarge indicates the file exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file size exceeds maximum allowed size")
)

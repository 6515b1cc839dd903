// Package safefileio provides secure file I/O operations with protection
// against symlink attacks and TOCTOU race conditions. Input files are
// read and output documents written through this package so that a
// link planted in the output directory can never redirect the generator
// onto an unrelated file.
package safefileio

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
)

// MaxFileSize is the maximum allowed input file size (128 MB). Embedding
// larger files as source literals is almost certainly a mistake and the
// cap bounds generator memory.
const MaxFileSize = 128 * 1024 * 1024

// SafeWriteFile writes content to filePath, creating or truncating it.
// The file is opened with O_NOFOLLOW and validated to be a regular file,
// and every directory component of the path is checked for symlinks
// after the open to prevent TOCTOU races. Unlike an exclusive create,
// truncation is intentional: a generator regenerates its outputs.
func SafeWriteFile(filePath string, content []byte, perm os.FileMode) (err error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilePath, err)
	}

	// #nosec G304 - the path is validated after opening to prevent TOCTOU attacks
	file, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC|syscall.O_NOFOLLOW, perm)
	if err != nil {
		if isNoFollowError(err) {
			return ErrIsSymlink
		}
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	if err := verifyPathComponents(absPath); err != nil {
		return err
	}
	if _, err := validateFile(file, absPath); err != nil {
		return err
	}

	if _, err = file.Write(content); err != nil {
		return fmt.Errorf("failed to write to %s: %w", absPath, err)
	}
	return nil
}

// SafeReadFile reads a file after validating the path and checking file
// properties. It enforces MaxFileSize and uses O_NOFOLLOW to prevent
// symlink attacks.
func SafeReadFile(filePath string) ([]byte, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilePath, err)
	}

	// #nosec G304 - absPath is cleaned above and opened with O_NOFOLLOW
	file, err := os.OpenFile(absPath, os.O_RDONLY|syscall.O_NOFOLLOW, 0)
	if err != nil {
		if isNoFollowError(err) {
			return nil, ErrIsSymlink
		}
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("error closing file", "path", absPath, "error", closeErr)
		}
	}()

	if err := verifyPathComponents(absPath); err != nil {
		return nil, err
	}

	fileInfo, err := validateFile(file, absPath)
	if err != nil {
		return nil, err
	}
	if fileInfo.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, absPath)
	}

	content, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(content)) > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, absPath)
	}
	return content, nil
}

// verifyPathComponents checks if any directory component of the path is
// a symlink. Called after opening the file so the check cannot race the
// open.
func verifyPathComponents(absPath string) error {
	dir, err := filepath.Abs(filepath.Dir(absPath))
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	current := dir
	for {
		parent := filepath.Dir(current)
		if parent == current {
			break // reached root
		}

		fi, err := os.Lstat(current)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("failed to stat %s: %w", current, err)
		}
		if fi.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("%w: %s", ErrIsSymlink, current)
		}
		current = parent
	}
	return nil
}

// validateFile checks that the opened file is a regular file, using the
// descriptor rather than the path to stay TOCTOU-safe.
func validateFile(file *os.File, filePath string) (os.FileInfo, error) {
	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: not a regular file: %s", ErrInvalidFilePath, filePath)
	}
	return fileInfo, nil
}

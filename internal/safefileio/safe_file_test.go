package safefileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeWriteFileAndReadBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.cpp")
	content := []byte("generated content\x00with a nul")

	require.NoError(t, SafeWriteFile(path, content, 0o644))

	got, err := SafeReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSafeWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.h")

	require.NoError(t, SafeWriteFile(path, []byte("first, longer content"), 0o644))
	require.NoError(t, SafeWriteFile(path, []byte("second"), 0o644))

	got, err := SafeReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestSafeWriteFileRejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	err := SafeWriteFile(link, []byte("y"), 0o644)
	assert.ErrorIs(t, err, ErrIsSymlink)
}

func TestSafeReadFileRejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	_, err := SafeReadFile(link)
	assert.ErrorIs(t, err, ErrIsSymlink)
}

func TestSafeReadFileMissing(t *testing.T) {
	_, err := SafeReadFile(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.True(t, os.IsNotExist(err))
}

func TestSafeReadFileRejectsNonRegular(t *testing.T) {
	_, err := SafeReadFile(t.TempDir())
	assert.Error(t, err)
}

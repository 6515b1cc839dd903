package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isseis/go-cpp-embed/internal/common"
)

func TestDiscoverSingleFile(t *testing.T) {
	m := common.NewMockFileSystem()
	m.AddFile("/data/logo.png", []byte("png"))

	files, err := NewWithFS(m).Discover([]string{"/data/logo.png"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, File{Path: "/data/logo.png", DisplayName: "logo.png"}, files[0])
}

func TestDiscoverDirectoryRecursesInLexicalOrder(t *testing.T) {
	m := common.NewMockFileSystem()
	m.AddFile("/assets/z.bin", nil)
	m.AddFile("/assets/a.bin", nil)
	m.AddFile("/assets/nested/deep/m.bin", nil)

	files, err := NewWithFS(m).Discover([]string{"/assets"})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.DisplayName)
	}
	assert.Equal(t, []string{"a.bin", "m.bin", "z.bin"}, names)
}

func TestDiscoverPreservesInputOrder(t *testing.T) {
	m := common.NewMockFileSystem()
	m.AddFile("/one/b.bin", nil)
	m.AddFile("/two/a.bin", nil)

	files, err := NewWithFS(m).Discover([]string{"/one/b.bin", "/two/a.bin"})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "b.bin", files[0].DisplayName)
	assert.Equal(t, "a.bin", files[1].DisplayName)
}

func TestDiscoverMissingInput(t *testing.T) {
	m := common.NewMockFileSystem()
	_, err := NewWithFS(m).Discover([]string{"/no/such/path"})
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestDiscoverEmptyInputs(t *testing.T) {
	files, err := NewWithFS(common.NewMockFileSystem()).Discover(nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscoverRealFileSystem(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "a.txt"), []byte("a"), 0o644))

	files, err := New().Discover([]string{dir})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "b.txt", files[0].DisplayName)
	assert.Equal(t, "a.txt", files[1].DisplayName)
}

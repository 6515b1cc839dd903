package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isseis/go-cpp-embed/internal/common"
	"github.com/isseis/go-cpp-embed/internal/encoding"
)

func loadFromString(t *testing.T, content string) (*Manifest, error) {
	t.Helper()
	m := common.NewMockFileSystem()
	m.AddFile("/etc/embed.toml", []byte(content))
	return NewLoaderWithFS(m).Load("/etc/embed.toml")
}

func TestLoadFullManifest(t *testing.T) {
	manifest, err := loadFromString(t, `
inputs = ["assets/", "logo.png"]
strict_names = true
verify = true

[output]
dir = "generated"
base_name = "site_assets"
namespace = "assets"
style = "array"
row_width = 5
`)
	require.NoError(t, err)

	assert.Equal(t, []string{"assets/", "logo.png"}, manifest.Inputs)
	assert.True(t, manifest.StrictNames)
	assert.True(t, manifest.Verify)
	assert.Equal(t, Output{
		Dir:       "generated",
		BaseName:  "site_assets",
		Namespace: "assets",
		Style:     "array",
		RowWidth:  5,
	}, manifest.Output)
}

func TestLoadEmptyManifest(t *testing.T) {
	manifest, err := loadFromString(t, "")
	require.NoError(t, err)
	assert.Empty(t, manifest.Inputs)
	assert.Equal(t, Output{}, manifest.Output)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := loadFromString(t, `namespce = "typo"`)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownStyle(t *testing.T) {
	_, err := loadFromString(t, `
[output]
style = "base64"
`)
	assert.ErrorIs(t, err, encoding.ErrUnknownStyle)
}

func TestLoadRejectsNegativeRowWidth(t *testing.T) {
	_, err := loadFromString(t, `
[output]
row_width = -3
`)
	assert.ErrorIs(t, err, ErrInvalidRowWidth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoaderWithFS(common.NewMockFileSystem()).Load("/missing.toml")
	assert.Error(t, err)
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := NewLoader().Load("")
	assert.ErrorIs(t, err, ErrInvalidManifestPath)
}

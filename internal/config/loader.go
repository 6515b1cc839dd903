// Package config provides loading and validation of the optional TOML
// generation manifest. The manifest carries the same settings as the
// command line flags; explicitly set flags take precedence over
// manifest values.
package config

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/isseis/go-cpp-embed/internal/common"
	"github.com/isseis/go-cpp-embed/internal/encoding"
)

// Error definitions for the config package
var (
	// ErrInvalidManifestPath is returned when the manifest file path is empty
	ErrInvalidManifestPath = errors.New("invalid manifest file path")

	// ErrInvalidRowWidth is returned for non-positive row widths
	ErrInvalidRowWidth = errors.New("row width must be positive")
)

// Manifest is the TOML representation of one generation run.
//
//	inputs = ["assets/", "logo.png"]
//	strict_names = true
//	verify = true
//
//	[output]
//	dir = "generated"
//	base_name = "embedded_files"
//	namespace = "assets"
//	style = "string"
//	row_width = 20
type Manifest struct {
	Inputs      []string `toml:"inputs"`
	StrictNames bool     `toml:"strict_names"`
	Verify      bool     `toml:"verify"`
	Output      Output   `toml:"output"`
}

// Output holds the destination settings of a manifest.
type Output struct {
	Dir       string `toml:"dir"`
	BaseName  string `toml:"base_name"`
	Namespace string `toml:"namespace"`
	Style     string `toml:"style"`
	RowWidth  int    `toml:"row_width"`
}

// Loader handles loading and validating manifests.
type Loader struct {
	fs common.FileSystem
}

// NewLoader creates a new manifest loader.
func NewLoader() *Loader {
	return NewLoaderWithFS(common.NewDefaultFileSystem())
}

// NewLoaderWithFS creates a new manifest loader with a custom FileSystem.
func NewLoaderWithFS(fsys common.FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load reads, parses and validates the manifest at path. Unknown keys
// are rejected so typos fail loudly instead of being ignored.
func (l *Loader) Load(path string) (*Manifest, error) {
	if path == "" {
		return nil, ErrInvalidManifestPath
	}

	content, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Output.Style != "" {
		if _, err := encoding.ParseStyle(m.Output.Style); err != nil {
			return err
		}
	}
	if m.Output.RowWidth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRowWidth, m.Output.RowWidth)
	}
	return nil
}

package identifier

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var validIdentifier = regexp.MustCompile(`^file_[A-Za-z0-9_]*$`)

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{"simple", "data.bin", "file_data_bin"},
		{"empty name", "", "file_"},
		{"already safe", "README", "file_README"},
		{"digits kept", "v2.tar.gz", "file_v2_tar_gz"},
		{"spaces and punctuation", "my file (1).txt", "file_my_file__1__txt"},
		{"leading dot", ".gitignore", "file__gitignore"},
		{"non ascii bytes", "naïve.txt", "file_na__ve_txt"},
		{"dash and plus", "a-b+c", "file_a_b_c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.fileName)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, validIdentifier, got)
		})
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	assert.Equal(t, Derive("some file.dat"), Derive("some file.dat"))
}

func TestDerivePreservesLength(t *testing.T) {
	names := []string{"", "a", "a.b", "!@#$%^&*()", "x.bin"}
	for _, name := range names {
		got := Derive(name)
		assert.Len(t, got, len(Prefix)+len(name), "name %q", name)
	}
}

func TestDeriveCollision(t *testing.T) {
	// Distinct names can map to the same identifier; the registry is
	// responsible for disambiguation.
	assert.Equal(t, Derive("a.bin"), Derive("a_bin"))
}

package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, v := range ciEnvVars {
		t.Setenv(v, "")
	}
	t.Setenv("NO_COLOR", "")
}

func TestForceOptionsWin(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("CI", "true")

	d := NewDetector(DetectorOptions{ForceInteractive: true})
	assert.True(t, d.IsInteractive(), "ForceInteractive must override CI detection")

	d = NewDetector(DetectorOptions{ForceNonInteractive: true})
	assert.False(t, d.IsInteractive())
}

func TestCIEnvironmentDetection(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  bool
	}{
		{"github actions", "GITHUB_ACTIONS", "true", true},
		{"generic ci", "CI", "1", true},
		{"ci explicitly false", "CI", "false", false},
		{"ci explicitly zero", "CI", "0", false},
		{"ci no", "CI", "no", false},
		{"jenkins", "JENKINS_URL", "http://jenkins", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCIEnv(t)
			t.Setenv(tt.key, tt.value)

			d := NewDetector(DetectorOptions{})
			assert.Equal(t, tt.want, d.IsCIEnvironment())
		})
	}
}

func TestNoColorDisablesInteractive(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("NO_COLOR", "1")

	d := NewDetector(DetectorOptions{})
	assert.False(t, d.IsInteractive())
}

func TestCIDisablesInteractive(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("BUILDKITE", "true")

	d := NewDetector(DetectorOptions{})
	assert.False(t, d.IsInteractive())
}

package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetector_ForceFlags(t *testing.T) {
	assert.True(t, Detector{ForceInteractive: true}.IsInteractive())
	assert.False(t, Detector{ForceNonInteractive: true}.IsInteractive())
	// ForceInteractive wins when both are set.
	assert.True(t, Detector{ForceInteractive: true, ForceNonInteractive: true}.IsInteractive())
}

func TestDetector_CIEnvironment(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		want   bool
	}{
		{name: "github actions", envVar: "GITHUB_ACTIONS", value: "true", want: true},
		{name: "jenkins url", envVar: "JENKINS_URL", value: "http://jenkins", want: true},
		{name: "generic CI truthy", envVar: "CI", value: "1", want: true},
		{name: "generic CI false", envVar: "CI", value: "false", want: false},
		{name: "generic CI zero", envVar: "CI", value: "0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, name := range ciEnvVars {
				t.Setenv(name, "")
			}
			t.Setenv(tt.envVar, tt.value)
			assert.Equal(t, tt.want, Detector{}.IsCIEnvironment())
		})
	}
}

func TestDetector_CIDisablesInteractive(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	assert.False(t, Detector{}.IsInteractive())
}

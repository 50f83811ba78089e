// Package terminal reports whether the current process can prompt the user
// interactively: it distinguishes a real terminal session from pipes and
// CI/non-interactive environments.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains environment variables commonly set by CI systems.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",
}

// Detector decides whether the process should be treated as interactive.
// The force flags take precedence over environment detection.
type Detector struct {
	ForceInteractive    bool
	ForceNonInteractive bool
}

// IsInteractive returns true when the process may prompt the user: forced
// interactive, or attached to a terminal outside a CI environment.
func (d Detector) IsInteractive() bool {
	if d.ForceInteractive {
		return true
	}
	if d.ForceNonInteractive || d.IsCIEnvironment() {
		return false
	}
	return d.IsTerminal()
}

// IsTerminal reports whether stdin and stderr are attached to a terminal.
// Prompts are read from stdin and echoed to stderr, so both must be one.
func (d Detector) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// IsCIEnvironment reports whether a CI environment variable is set. The
// generic CI variable must additionally carry a truthy value, since some
// shells export CI= empty.
func (d Detector) IsCIEnvironment() bool {
	for _, name := range ciEnvVars {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		if name == "CI" {
			return isTruthy(v)
		}
		return true
	}
	return false
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "false", "0", "no":
		return false
	}
	return true
}

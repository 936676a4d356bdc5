// Package detector chooses between the interactive and the linear renderer.
package detector

import (
	"os"
	"strings"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive terminal UI.
	ModeTUI
	// ModeLinear forces line-oriented output for CI and pipes.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// Environment is the slice of process state detection looks at.
type Environment struct {
	IsTerminal bool
	Getenv     func(string) string
}

// CurrentEnvironment inspects stdout and the process environment.
func CurrentEnvironment() Environment {
	return Environment{
		IsTerminal: term.IsTerminal(int(os.Stdout.Fd())), //nolint:gosec // file descriptors fit in int
		Getenv:     os.Getenv,
	}
}

// Detect returns ModeLinear when stdout is not a terminal or a CI variable
// is set, and ModeTUI otherwise.
func Detect(env Environment) OutputMode {
	getenv := env.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	ci := strings.ToLower(getenv("CI"))
	isCI := ci == "true" || ci == "1"

	if !env.IsTerminal || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// DetectEnvironment runs Detect against the current process.
func DetectEnvironment() OutputMode {
	return Detect(CurrentEnvironment())
}

// ParseMode parses an --output-mode value. "ci" is accepted as an alias of
// "linear" and the empty string means auto.
func ParseMode(flag string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "", "auto":
		return ModeAuto, nil
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(domain.ErrInvalidOutputMode, "mode", flag)
	}
}

// ResolveMode applies a user override to the detected mode.
func ResolveMode(autoDetected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return autoDetected
	}
	return requested
}

// Package style holds the colors, icons and text styles shared by the
// terminal renderers and the pretty log handler.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Pipe    = "|"
)

// Text styles.
var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Muted = lipgloss.NewStyle().Foreground(Slate)
	Alert = lipgloss.NewStyle().Foreground(Yellow)
)

package tui

import (
	"github.com/TYTheBeast/wynn-builder-ui/internal/ui/style"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = style.Title.
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(style.White)

	warningStyle = style.Alert

	runningStyle = style.Title

	idleStyle = style.Muted

	logStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Slate)
)

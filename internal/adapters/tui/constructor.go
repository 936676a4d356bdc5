// Package tui is the interactive terminal view of the builder supervisor.
package tui

import (
	"io"
	"os"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/TYTheBeast/wynn-builder-ui/internal/engine/controller"
	"github.com/TYTheBeast/wynn-builder-ui/internal/ui/output"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// NewModel creates the builder screen around c. The color profile is taken
// from w.
func NewModel(c *controller.Controller, w io.Writer) *Model {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	return &Model{
		Controller: c,
		Keys:       DefaultKeyMap(),
		Help:       help.New(),
		Viewport:   viewport.New(0, 0),
		Capacity:   domain.ClampOutputLines(c.Capacity()),
	}
}

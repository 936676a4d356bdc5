package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	title       = "Builder"
	description = "This tab is where the builder binary is run and monitored."
	warning     = "Beware: running the builder with the output builds flag enabled generates a lot of output. " +
		"Only the most recent output lines are kept."
)

// View renders the UI.
func (m *Model) View() string {
	if m.Width == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		logStyle.Render(m.Viewport.View()),
		m.footer(),
	)
}

func (m *Model) header() string {
	wrap := lipgloss.NewStyle().Width(max(m.Width, 1))

	lines := []string{
		titleStyle.Render(title),
		wrap.Inherit(descriptionStyle).Render(description),
		wrap.Inherit(warningStyle).Render(warning),
		m.status() + "   " + idleStyle.Render(m.capacityLine()),
	}
	if m.Notice != "" {
		lines = append(lines, idleStyle.Render(m.Notice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) footer() string {
	return m.Help.View(m.Keys)
}

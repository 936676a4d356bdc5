package tui

import (
	"fmt"
	"strings"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/TYTheBeast/wynn-builder-ui/internal/engine/controller"
	"github.com/TYTheBeast/wynn-builder-ui/internal/ui/style"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const logBorderSize = 2

// Model is the bubbletea model of the builder screen. Run state lives in the
// Controller; the model only adds layout and key handling.
type Model struct {
	Controller *controller.Controller
	Keys       KeyMap
	Help       help.Model
	Viewport   viewport.Model
	Capacity   int
	Width      int
	Height     int
	Notice     string
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // one branch per message kind
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			m.Controller.Close()
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Start):
			m.Notice = ""
			cmd := m.Controller.Start()
			m.resize()
			return m, cmd
		case key.Matches(msg, m.Keys.Stop):
			m.Controller.Stop()
			return m, nil
		case key.Matches(msg, m.Keys.More):
			m.setCapacity(m.Capacity + domain.OutputLinesStep)
			return m, nil
		case key.Matches(msg, m.Keys.Fewer):
			m.setCapacity(m.Capacity - domain.OutputLinesStep)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Help.Width = msg.Width
		m.resize()
		return m, nil

	case controller.EventMsg, controller.RunClosedMsg:
		cmd := m.Controller.Update(msg)
		m.refresh()
		return m, cmd

	case SettingsMsg:
		m.setCapacity(msg.Settings.OutputLines)
		m.Notice = "settings reloaded"
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m *Model) setCapacity(n int) {
	m.Capacity = domain.ClampOutputLines(n)
	m.Controller.SetCapacity(m.Capacity)
}

// resize fits the viewport between the header and the help line.
func (m *Model) resize() {
	if m.Width > 0 {
		chrome := lipgloss.Height(m.header()) + lipgloss.Height(m.footer()) + logBorderSize
		m.Viewport.Width = max(m.Width-logBorderSize, 0)
		m.Viewport.Height = max(m.Height-chrome, 1)
	}
	m.refresh()
}

// refresh copies the log into the viewport and keeps following the tail
// unless the user scrolled up.
func (m *Model) refresh() {
	follow := m.Viewport.AtBottom()
	m.Viewport.SetContent(strings.Join(m.Controller.Lines(), "\n"))
	if follow {
		m.Viewport.GotoBottom()
	}
}

func (m *Model) status() string {
	if m.Controller.IsRunning() {
		return runningStyle.Render(style.Dot + " Running")
	}
	return idleStyle.Render(style.Circle + " Idle")
}

func (m *Model) capacityLine() string {
	return fmt.Sprintf("Output lines: %d", m.Capacity)
}

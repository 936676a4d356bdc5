package tui

import "github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"

// SettingsMsg carries settings reloaded from disk while the UI runs.
type SettingsMsg struct {
	Settings domain.Settings
}

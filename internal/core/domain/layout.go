package domain

import (
	"path/filepath"
	"runtime"
)

const (
	// ConfigDirName is the directory holding the builder and UI configuration.
	ConfigDirName = "config"

	// SettingsFileName is the name of the UI settings file.
	SettingsFileName = "builder-ui.yaml"

	// DebugLogFile is the name of the diagnostics log file used while the TUI owns the terminal.
	DebugLogFile = "builder-ui.log"

	// BuilderName is the base name of the builder executable.
	BuilderName = "builder"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// BuilderExecutable returns the platform specific name of the builder executable.
func BuilderExecutable() string {
	return builderExecutable(runtime.GOOS)
}

func builderExecutable(goos string) string {
	if goos == "windows" {
		return BuilderName + ".exe"
	}
	return BuilderName
}

// DefaultSettingsPath returns the default path of the UI settings file.
// It joins config and builder-ui.yaml.
func DefaultSettingsPath() string {
	return filepath.Join(ConfigDirName, SettingsFileName)
}

// DefaultDebugLogPath returns the default path of the diagnostics log file.
func DefaultDebugLogPath() string {
	return filepath.Join(ConfigDirName, DebugLogFile)
}

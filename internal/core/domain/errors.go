package domain

import "go.trai.ch/zerr"

var (
	// ErrSpawnFailed is returned when the builder executable cannot be launched.
	ErrSpawnFailed = zerr.New("Failed to start binary")

	// ErrReadFailed is returned when reading the builder's standard output fails.
	ErrReadFailed = zerr.New("Failed to read stdout")

	// ErrUnexpectedEndOfStream is returned when the builder closes its standard output
	// without printing the completion marker.
	ErrUnexpectedEndOfStream = zerr.New("Failed to read stdout: reached end of stream")

	// ErrInvalidUTF8 is returned when a line of the builder's standard output is not valid UTF-8.
	ErrInvalidUTF8 = zerr.New("stream did not contain valid UTF-8")

	// ErrPipeSetupFailed is returned when the standard I/O pipes of the builder cannot be created.
	ErrPipeSetupFailed = zerr.New("failed to set up builder pipes")

	// ErrBuildFailed is returned by non-interactive runs that ended with an error event.
	ErrBuildFailed = zerr.New("builder run failed")

	// ErrBuildCancelled is returned by non-interactive runs that were cancelled before completion.
	ErrBuildCancelled = zerr.New("builder run cancelled")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidOutputMode is returned when an unknown output mode is requested.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected 'auto', 'tui' or 'linear'")

	// ErrWatcherStartFailed is returned when the settings watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start settings watcher")

	// ErrLogFileOpenFailed is returned when the diagnostics log file cannot be opened.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")
)

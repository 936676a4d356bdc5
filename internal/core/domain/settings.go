package domain

const (
	// DefaultOutputLines is the default capacity of the output log.
	DefaultOutputLines = 200
	// MinOutputLines is the smallest capacity the UI allows.
	MinOutputLines = 10
	// MaxOutputLines is the largest capacity the UI allows.
	MaxOutputLines = 500
	// OutputLinesStep is the capacity increment used by the UI.
	OutputLinesStep = 10

	// DefaultCompletionMarker is the substring that signals a finished builder run.
	DefaultCompletionMarker = "done"
)

// Settings holds the UI configuration.
type Settings struct {
	// BuilderPath is the executable to launch.
	BuilderPath string
	// CompletionMarker is the stdout substring that ends a run successfully.
	CompletionMarker string
	// OutputLines is the capacity of the output log.
	OutputLines int
	// JSONLogs switches diagnostics logging to JSON.
	JSONLogs bool
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		BuilderPath:      BuilderExecutable(),
		CompletionMarker: DefaultCompletionMarker,
		OutputLines:      DefaultOutputLines,
	}
}

// ClampOutputLines bounds n to [MinOutputLines, MaxOutputLines].
func ClampOutputLines(n int) int {
	return min(max(n, MinOutputLines), MaxOutputLines)
}

package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultSettingsPath",
			got:      domain.DefaultSettingsPath(),
			expected: filepath.Join("config", "builder-ui.yaml"),
		},
		{
			name:     "DefaultDebugLogPath",
			got:      domain.DefaultDebugLogPath(),
			expected: filepath.Join("config", "builder-ui.log"),
		},
		{
			name:     "BuilderExecutable windows",
			got:      domain.BuilderExecutableFor("windows"),
			expected: "builder.exe",
		},
		{
			name:     "BuilderExecutable linux",
			got:      domain.BuilderExecutableFor("linux"),
			expected: "builder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()

	assert.Equal(t, domain.BuilderExecutable(), s.BuilderPath)
	assert.Equal(t, "done", s.CompletionMarker)
	assert.Equal(t, 200, s.OutputLines)
	assert.False(t, s.JSONLogs)
}

func TestClampOutputLines(t *testing.T) {
	assert.Equal(t, 10, domain.ClampOutputLines(0))
	assert.Equal(t, 10, domain.ClampOutputLines(10))
	assert.Equal(t, 250, domain.ClampOutputLines(250))
	assert.Equal(t, 500, domain.ClampOutputLines(9000))
}

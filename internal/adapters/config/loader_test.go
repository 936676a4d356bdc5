package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/config"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()

	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), domain.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoader_MissingFileYieldsDefaults(t *testing.T) {
	settings, err := newLoader(t).Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    func(*domain.Settings)
	}{
		{
			name:    "empty file",
			content: "",
			want:    func(*domain.Settings) {},
		},
		{
			name: "all keys",
			content: `builder:
  path: /opt/wynn/builder
  completionMarker: FINISHED
output:
  lines: 120
log:
  json: true
`,
			want: func(s *domain.Settings) {
				s.BuilderPath = "/opt/wynn/builder"
				s.CompletionMarker = "FINISHED"
				s.OutputLines = 120
				s.JSONLogs = true
			},
		},
		{
			name:    "lines clamped high",
			content: "output:\n  lines: 9000\n",
			want:    func(s *domain.Settings) { s.OutputLines = domain.MaxOutputLines },
		},
		{
			name:    "lines clamped low",
			content: "output:\n  lines: 0\n",
			want:    func(s *domain.Settings) { s.OutputLines = domain.MinOutputLines },
		},
		{
			name:    "blank path keeps default",
			content: "builder:\n  path: \"  \"\n",
			want:    func(*domain.Settings) {},
		},
		{
			name:    "unknown keys ignored",
			content: "theme: dark\n",
			want:    func(*domain.Settings) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, tt.content)

			got, err := newLoader(t).Load(path)
			require.NoError(t, err)

			want := domain.DefaultSettings()
			tt.want(&want)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoader_ParseError(t *testing.T) {
	path := writeSettings(t, "output:\n  lines: many\n")

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

type failingFS struct{ err error }

func (f failingFS) Stat(string) (fs.FileInfo, error)  { return nil, f.err }
func (f failingFS) ReadFile(string) ([]byte, error) { return nil, f.err }

func TestLoader_ReadError(t *testing.T) {
	l := newLoader(t)
	l.FS = failingFS{err: fs.ErrPermission}

	_, err := l.Load("settings.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

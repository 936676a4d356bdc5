// Package config loads the UI settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load reads the settings at path. A missing file yields the defaults;
// unset keys keep their default values and the output line count is clamped
// into the range the UI supports.
func (l *Loader) Load(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := l.FS.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.Logger.Info(fmt.Sprintf("no settings at %s, using defaults", path))
		return settings, nil
	}
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return settings, zerr.With(err, "path", path)
	}

	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		err = zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		return settings, zerr.With(err, "path", path)
	}

	return l.apply(settings, &file), nil
}

func (l *Loader) apply(settings domain.Settings, file *SettingsFile) domain.Settings {
	if p := strings.TrimSpace(file.Builder.Path); p != "" {
		settings.BuilderPath = p
	}
	if file.Builder.CompletionMarker != "" {
		settings.CompletionMarker = file.Builder.CompletionMarker
	}
	if file.Output.Lines != nil {
		n := domain.ClampOutputLines(*file.Output.Lines)
		if n != *file.Output.Lines {
			l.Logger.Warn(fmt.Sprintf("output.lines %d out of range, using %d", *file.Output.Lines, n))
		}
		settings.OutputLines = n
	}
	settings.JSONLogs = file.Log.JSON
	return settings
}

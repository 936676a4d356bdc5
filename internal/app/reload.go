package app

import (
	"fmt"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
)

// reloader re-reads the settings file after a change. Command line overrides
// keep precedence over the file. Output capacity and JSON logging apply
// immediately; the executable and the completion marker are bound to the
// spawner and only change on restart.
type reloader struct {
	loader  ports.ConfigLoader
	logger  ports.Logger
	sink    LogSink
	path    string
	opts    RunOptions
	current domain.Settings
}

func (a *App) newReloader(path string, opts RunOptions, current domain.Settings) *reloader {
	return &reloader{
		loader:  a.configLoader,
		logger:  a.logger,
		sink:    a.logSink,
		path:    path,
		opts:    opts,
		current: current,
	}
}

// Reload returns the settings now in effect and false when nothing was
// applied.
func (r *reloader) Reload(ev ports.WatchEvent) (domain.Settings, bool) {
	if ev.Removed {
		r.logger.Warn("settings file removed, keeping current settings")
		return r.current, false
	}

	loaded, err := r.loader.Load(r.path)
	if err != nil {
		r.logger.Error(err)
		return r.current, false
	}
	next := applyOverrides(loaded, r.opts)

	if next.BuilderPath != r.current.BuilderPath {
		r.logger.Warn(fmt.Sprintf("builder.path changed to %q, restart to apply", next.BuilderPath))
	}
	if next.CompletionMarker != r.current.CompletionMarker {
		r.logger.Warn(fmt.Sprintf("builder.completionMarker changed to %q, restart to apply", next.CompletionMarker))
	}
	if next.JSONLogs != r.current.JSONLogs {
		r.sink.SetJSON(next.JSONLogs)
	}

	r.current.OutputLines = next.OutputLines
	r.current.JSONLogs = next.JSONLogs

	r.logger.Info(fmt.Sprintf("settings reloaded from %s", ev.Path))
	return r.current, true
}

// Package app wires settings, the supervisor and the renderers into the
// builder UI application.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/detector"
	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/linear"
	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/tui"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
	"github.com/TYTheBeast/wynn-builder-ui/internal/engine/controller"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// SpawnerFactory returns a spawner that ends runs on the given completion
// marker.
type SpawnerFactory func(marker string) ports.Spawner

// LogSink is the runtime-configurable side of the logger.
type LogSink interface {
	SetOutput(w io.Writer)
	SetJSON(enable bool)
}

// Tracing installs and flushes the tracer provider.
type Tracing interface {
	Tracer() trace.Tracer
	Install()
	Shutdown(ctx context.Context) error
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	spawners     SpawnerFactory
	logger       ports.Logger
	logSink      LogSink
	tracing      Tracing
	watcher      ports.Watcher
	detect       func() detector.OutputMode
	stdout       io.Writer
	stderr       io.Writer
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	spawners SpawnerFactory,
	log ports.Logger,
	sink LogSink,
	tracing Tracing,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		spawners:     spawners,
		logger:       log,
		logSink:      sink,
		tracing:      tracing,
		watcher:      watcher,
		detect:       detector.DetectEnvironment,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithTeaOptions adds bubbletea program options, mostly to run the TUI
// headless in tests.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput replaces the stdout and stderr writers used by the renderers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithDetector replaces terminal detection for ModeAuto.
func (a *App) WithDetector(detect func() detector.OutputMode) *App {
	a.detect = detect
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath is the settings file. Empty selects the default layout.
	ConfigPath string
	// BuilderPath overrides the configured executable.
	BuilderPath string
	// Lines overrides the configured output capacity when positive.
	Lines int
	// OutputMode is one of auto, tui, linear or ci.
	OutputMode string
	// JSONLogs forces JSON diagnostics.
	JSONLogs bool
}

// Run loads the settings and runs the builder UI until the user quits or,
// in linear mode, until the single run ends.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	requested, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return err
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = domain.DefaultSettingsPath()
	}

	settings, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}
	settings = applyOverrides(settings, opts)
	a.logSink.SetJSON(settings.JSONLogs)

	a.tracing.Install()
	defer func() {
		_ = a.tracing.Shutdown(context.WithoutCancel(ctx))
	}()

	ctrl := controller.New(ctx, a.spawners(settings.CompletionMarker), a.logger, settings.BuilderPath, settings.OutputLines)
	defer ctrl.Close()

	if detector.ResolveMode(a.detect(), requested) == detector.ModeLinear {
		return linear.NewRenderer(a.stdout, a.stderr).Run(ctrl)
	}
	return a.runTUI(ctx, ctrl, configPath, a.newReloader(configPath, opts, settings))
}

func applyOverrides(settings domain.Settings, opts RunOptions) domain.Settings {
	if opts.BuilderPath != "" {
		settings.BuilderPath = opts.BuilderPath
	}
	if opts.Lines > 0 {
		settings.OutputLines = domain.ClampOutputLines(opts.Lines)
	}
	if opts.JSONLogs {
		settings.JSONLogs = true
	}
	return settings
}

// runTUI runs the interactive screen next to the settings watcher. Logging
// is redirected to a file next to the settings so it cannot corrupt the
// screen.
func (a *App) runTUI(ctx context.Context, ctrl *controller.Controller, configPath string, r *reloader) error {
	restore, err := a.redirectLogs(filepath.Join(filepath.Dir(configPath), domain.DebugLogFile))
	if err != nil {
		return err
	}
	defer restore()

	model := tui.NewModel(ctrl, a.stderr)
	programOpts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(a.stderr),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, a.teaOptions...)
	program := tea.NewProgram(model, programOpts...)

	g, gctx := errgroup.WithContext(ctx)
	watchCtx, stopWatching := context.WithCancel(gctx)

	g.Go(func() error {
		defer stopWatching()

		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	g.Go(func() error {
		a.watchSettings(watchCtx, configPath, r, program)
		return nil
	})

	return g.Wait()
}

// watchSettings forwards reloaded settings to the program until ctx is done.
func (a *App) watchSettings(ctx context.Context, configPath string, r *reloader, program *tea.Program) {
	if err := a.watcher.Start(ctx, configPath); err != nil {
		a.logger.Error(err)
		if stopErr := a.watcher.Stop(); stopErr != nil {
			a.logger.Error(stopErr)
		}
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range a.watcher.Events() {
			if settings, ok := r.Reload(ev); ok {
				program.Send(tui.SettingsMsg{Settings: settings})
			}
		}
	}()

	<-ctx.Done()
	if err := a.watcher.Stop(); err != nil {
		a.logger.Error(err)
	}
	<-done
}

func (a *App) redirectLogs(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLogFileOpenFailed.Error()), "path", path)
	}
	//nolint:gosec // path is derived from the settings location
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLogFileOpenFailed.Error()), "path", path)
	}

	a.logSink.SetOutput(f)
	return func() {
		a.logSink.SetOutput(a.stderr)
		_ = f.Close()
	}, nil
}

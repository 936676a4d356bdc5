package app

import (
	"context"

	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/process"   //nolint:depguard // Wired in app layer
	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the entrypoint needs from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			process.NodeID,
			logger.NodeID,
			logger.ControlNodeID,
			telemetry.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	supervisor, err := graft.Dep[*process.Supervisor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	control, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	settingsWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	spawners := func(marker string) ports.Spawner {
		return supervisor.With(process.WithCompletionMarker(marker))
	}
	return New(loader, spawners, log, control, provider, settingsWatcher), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/TYTheBeast/wynn-builder-ui/internal/adapters/config"
	_ "github.com/TYTheBeast/wynn-builder-ui/internal/adapters/logger"
	_ "github.com/TYTheBeast/wynn-builder-ui/internal/adapters/process"
	_ "github.com/TYTheBeast/wynn-builder-ui/internal/adapters/telemetry"
	_ "github.com/TYTheBeast/wynn-builder-ui/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/TYTheBeast/wynn-builder-ui/internal/app"
)

package logger

import (
	"context"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"

	// ControlNodeID identifies the node exposing the concrete *Logger, used by
	// the app to redirect output and toggle JSON mode.
	ControlNodeID graft.ID = "adapter.logger.control"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        ControlNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ControlNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			return graft.Dep[*Logger](ctx)
		},
	})
}

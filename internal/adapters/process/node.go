package process

import (
	"context"

	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/logger"
	"github.com/TYTheBeast/wynn-builder-ui/internal/adapters/telemetry"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the supervisor Graft node.
const NodeID graft.ID = "adapter.process"

func init() {
	graft.Register(graft.Node[*Supervisor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Supervisor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			provider, err := graft.Dep[*telemetry.Provider](ctx)
			if err != nil {
				return nil, err
			}
			return NewSupervisor(log, WithTracer(provider.Tracer())), nil
		},
	})
}

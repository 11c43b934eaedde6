package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/cookbook/internal/adapters/config"
	"go.trai.ch/cookbook/internal/core/ports"
)

const (
	// ProviderNodeID is the unique identifier for the tracer provider Graft node.
	ProviderNodeID graft.ID = "adapter.telemetry.provider"
	// TracerNodeID is the unique identifier for the tracer Graft node.
	TracerNodeID graft.ID = "adapter.telemetry.tracer"
)

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Provider, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(settings.Telemetry, os.Stderr)
		},
	})

	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ProviderNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			provider, err := graft.Dep[*Provider](ctx)
			if err != nil {
				return nil, err
			}
			return provider.Tracer(), nil
		},
	})
}

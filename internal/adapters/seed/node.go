package seed

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cookbook/internal/adapters/logger"
	"go.trai.ch/cookbook/internal/core/ports"
)

// NodeID is the unique identifier for the seed loader Graft node.
const NodeID graft.ID = "adapter.seed_loader"

func init() {
	graft.Register(graft.Node[ports.SeedLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SeedLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}

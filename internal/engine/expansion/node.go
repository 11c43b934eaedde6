package expansion

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cookbook/internal/adapters/config"
	"go.trai.ch/cookbook/internal/adapters/store"
	"go.trai.ch/cookbook/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the resolver Graft node.
	ResolverNodeID graft.ID = "engine.expansion.resolver"
	// AggregatorNodeID is the unique identifier for the aggregator Graft node.
	AggregatorNodeID graft.ID = "engine.expansion.aggregator"
)

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, store.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			entries, err := graft.Dep[ports.EntryStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(entries, settings.Resolver.MaxDepth), nil
		},
	})

	graft.Register(graft.Node[*Aggregator]{
		ID:        AggregatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{store.NodeID},
		Run: func(ctx context.Context) (*Aggregator, error) {
			entries, err := graft.Dep[ports.EntryStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewAggregator(entries), nil
		},
	})
}

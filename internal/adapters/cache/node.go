package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cookbook/internal/adapters/config"
	"go.trai.ch/cookbook/internal/core/ports"
)

// NodeID is the unique identifier for the summary cache Graft node.
const NodeID graft.ID = "adapter.summary_cache"

func init() {
	graft.Register(graft.Node[ports.SummaryCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.SummaryCache, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			if !settings.Cache.Enabled {
				return Nop{}, nil
			}
			return NewSummaries(settings.Cache.TTL), nil
		},
	})
}

package store

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/redis/go-redis/v9"
	"go.trai.ch/cookbook/internal/adapters/config"
	"go.trai.ch/cookbook/internal/core/ports"
)

// NodeID is the unique identifier for the entry store Graft node.
const NodeID graft.ID = "adapter.entry_store"

func init() {
	graft.Register(graft.Node[ports.EntryStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.EntryStore, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return Open(ctx, settings.Store)
		},
	})
}

// Open builds the store selected by settings. The Redis store is pinged before it is returned.
func Open(ctx context.Context, settings config.StoreSettings) (ports.EntryStore, error) {
	if settings.Driver != config.DriverRedis {
		return NewMemory(settings.Shards), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     settings.Redis.Addr,
		Password: settings.Redis.Password,
		DB:       settings.Redis.DB,
	})
	r := NewRedis(client, settings.Redis.Prefix)
	if err := r.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return r, nil
}

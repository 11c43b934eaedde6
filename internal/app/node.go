package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cookbook/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/cookbook/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cookbook/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cookbook/internal/adapters/seed"      //nolint:depguard // Wired in app layer
	"go.trai.ch/cookbook/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/cookbook/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cookbook/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/cookbook/internal/engine/admission"
	"go.trai.ch/cookbook/internal/engine/expansion"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			admission.NodeID,
			expansion.ResolverNodeID,
			expansion.AggregatorNodeID,
			cache.NodeID,
			seed.NodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			store.NodeID,
			logger.NodeID,
			config.NodeID,
			telemetry.ProviderNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	entries, err := graft.Dep[ports.EntryStore](ctx)
	if err != nil {
		return nil, err
	}

	validator, err := graft.Dep[*admission.Validator](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*expansion.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	aggregator, err := graft.Dep[*expansion.Aggregator](ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := graft.Dep[ports.SummaryCache](ctx)
	if err != nil {
		return nil, err
	}

	seeds, err := graft.Dep[ports.SeedLoader](ctx)
	if err != nil {
		return nil, err
	}

	seedWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(entries, validator, resolver, aggregator, summaries, seeds, seedWatcher, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	entries, err := graft.Dep[ports.EntryStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Store:     entries,
		Logger:    log,
		Settings:  settings,
		Telemetry: provider,
	}, nil
}

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cookbook/internal/adapters/cache"
	_ "go.trai.ch/cookbook/internal/adapters/config"
	_ "go.trai.ch/cookbook/internal/adapters/logger"
	_ "go.trai.ch/cookbook/internal/adapters/seed"
	_ "go.trai.ch/cookbook/internal/adapters/store"
	_ "go.trai.ch/cookbook/internal/adapters/telemetry"
	_ "go.trai.ch/cookbook/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/cookbook/internal/app"
	_ "go.trai.ch/cookbook/internal/engine/admission"
	_ "go.trai.ch/cookbook/internal/engine/expansion"
)

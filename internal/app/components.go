package app

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/cookbook/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cookbook/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cookbook/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Store     ports.EntryStore
	Logger    ports.Logger
	Settings  *config.Settings
	Telemetry *telemetry.Provider
}

// Close flushes telemetry and closes the entry store when it holds connections.
func (c *Components) Close(ctx context.Context) error {
	var errs []error
	if c.Telemetry != nil {
		errs = append(errs, c.Telemetry.Shutdown(ctx))
	}
	if closer, ok := c.Store.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	return errors.Join(errs...)
}

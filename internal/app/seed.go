package app

import (
	"context"
	"errors"

	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/zerr"
)

// SeedReport counts what a seed run did.
type SeedReport struct {
	Path     string
	Admitted int
	Skipped  int
}

// Seed admits every entry of the seed file at path, in file order.
// Entries whose name is already registered are skipped. Any other rejection stops the
// run; entries admitted before it stay registered.
func (a *App) Seed(ctx context.Context, path string) (SeedReport, error) {
	ctx, span := a.tracer.Start(ctx, "seed")
	defer span.End()
	span.SetAttribute("path", path)

	report := SeedReport{Path: path}

	entries, err := a.seeds.Load(path)
	if err != nil {
		span.RecordError(err)
		return report, err
	}

	for i, raw := range entries {
		err := a.AddEntry(ctx, raw)
		switch {
		case err == nil:
			report.Admitted++
		case errors.Is(err, domain.ErrDuplicateName):
			report.Skipped++
			a.logger.Debug("seed entry already registered", "index", i, "name", raw["name"])
		default:
			err = zerr.With(zerr.With(zerr.Wrap(err, domain.ErrSeedEntryFailed.Error()), "path", path), "index", i)
			span.RecordError(err)
			return report, err
		}
	}

	span.SetAttribute("admitted", report.Admitted)
	span.SetAttribute("skipped", report.Skipped)
	return report, nil
}

// WatchSeed re-seeds from path each time the file changes, until ctx is done.
// Failed runs are logged and do not stop watching.
func (a *App) WatchSeed(ctx context.Context, path string) error {
	if err := a.watcher.Start(ctx, path); err != nil {
		return err
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Error(err)
		}
	}()

	a.logger.Info("watching seed file", "path", path)
	for changed := range a.watcher.Changes() {
		report, err := a.Seed(ctx, changed)
		if err != nil {
			a.logger.Error(err)
			continue
		}
		a.logger.Info("seed file reloaded", "path", changed, "admitted", report.Admitted, "skipped", report.Skipped)
	}
	return ctx.Err()
}

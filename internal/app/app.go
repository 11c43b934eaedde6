// Package app implements the application layer for the cookbook.
package app

import (
	"context"
	"errors"
	"slices"

	"go.trai.ch/cookbook/internal/adapters/text"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/cookbook/internal/engine/admission"
	"go.trai.ch/cookbook/internal/engine/expansion"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// App represents the main application logic.
type App struct {
	store      ports.EntryStore
	validator  *admission.Validator
	resolver   *expansion.Resolver
	aggregator *expansion.Aggregator
	cache      ports.SummaryCache
	seeds      ports.SeedLoader
	watcher    ports.Watcher
	tracer     ports.Tracer
	logger     ports.Logger

	flights singleflight.Group
}

// New creates a new App instance.
func New(
	store ports.EntryStore,
	validator *admission.Validator,
	resolver *expansion.Resolver,
	aggregator *expansion.Aggregator,
	cache ports.SummaryCache,
	seeds ports.SeedLoader,
	watcher ports.Watcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		store:      store,
		validator:  validator,
		resolver:   resolver,
		aggregator: aggregator,
		cache:      cache,
		seeds:      seeds,
		watcher:    watcher,
		tracer:     tracer,
		logger:     log,
	}
}

// AddEntry validates raw and registers it.
// It fails with domain.ErrValidation or domain.ErrDuplicateName; the registry is unchanged on failure.
func (a *App) AddEntry(ctx context.Context, raw domain.RawEntry) error {
	ctx, span := a.tracer.Start(ctx, "add_entry")
	defer span.End()

	entry, err := a.validator.Admit(ctx, raw)
	if err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttribute("entry.name", entry.Name)
	span.SetAttribute("entry.kind", entry.Kind.String())
	a.logger.Debug("entry admitted", "name", entry.Name, "kind", entry.Kind.String())
	return nil
}

// Summarize flattens the recipe called name into its ingredients and total cook time.
// It fails with domain.ErrNotFound, domain.ErrWrongType or domain.ErrSummaryFailed joined
// with the reason expansion stopped.
func (a *App) Summarize(ctx context.Context, name string) (*domain.Summary, error) {
	ctx, span := a.tracer.Start(ctx, "summarize")
	defer span.End()
	span.SetAttribute("recipe", name)

	if cached, ok := a.cache.Get(name); ok {
		span.SetAttribute("cached", true)
		return cached, nil
	}
	span.SetAttribute("cached", false)

	// The shared computation outlives any one caller; each caller still stops waiting on its own ctx.
	flightCtx := context.WithoutCancel(ctx)
	results := a.flights.DoChan(name, func() (any, error) {
		return a.summarize(flightCtx, name)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		return nil, ctx.Err()
	case res = <-results:
	}
	if res.Err != nil {
		span.RecordError(res.Err)
		return nil, res.Err
	}

	summary, ok := res.Val.(*domain.Summary)
	if !ok {
		return nil, zerr.With(zerr.New("unexpected summary result"), "recipe", name)
	}
	span.SetAttribute("cook_time", summary.CookTime)

	out := *summary
	out.Ingredients = slices.Clone(summary.Ingredients)
	return &out, nil
}

func (a *App) summarize(ctx context.Context, name string) (*domain.Summary, error) {
	recipe, err := a.store.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "summary unavailable"), "name", name)
	}
	if !recipe.IsRecipe() {
		return nil, zerr.With(zerr.Wrap(domain.ErrWrongType, "summary unavailable"), "name", name)
	}

	var portions []domain.Portion
	for _, item := range recipe.RequiredItems {
		expanded, err := a.resolver.ExpandFrom(ctx, []string{recipe.Name}, item)
		if err != nil {
			return nil, summaryFailed(err)
		}
		portions = append(portions, expanded...)
	}

	merged, err := a.aggregator.Merge(portions)
	if err != nil {
		return nil, summaryFailed(err)
	}

	total, err := a.aggregator.TotalCookTime(ctx, merged)
	if err != nil {
		return nil, summaryFailed(err)
	}

	summary := &domain.Summary{Name: recipe.Name, CookTime: total, Ingredients: merged}
	a.cache.Put(summary)
	return summary, nil
}

// summaryFailed classifies expansion failures as domain.ErrSummaryFailed.
// Store and context errors pass through unchanged.
func summaryFailed(reason error) error {
	if errors.Is(reason, domain.ErrUnresolvedReference) ||
		errors.Is(reason, domain.ErrCyclicDefinition) ||
		errors.Is(reason, domain.ErrQuantityOverflow) {
		return errors.Join(domain.ErrSummaryFailed, reason)
	}
	return reason
}

// CleanName normalizes a handwritten recipe name. It reports false when nothing usable is left.
func (a *App) CleanName(raw string) (string, bool) {
	return text.CleanName(raw)
}

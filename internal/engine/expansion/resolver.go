// Package expansion flattens recipes into ingredient portions and totals their cook time.
package expansion

import (
	"context"
	"math"
	"strings"

	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultMaxDepth bounds recipe nesting when no limit is configured.
const DefaultMaxDepth = 64

// Resolver expands required items into ingredient portions by walking the registry.
// It never writes to the registry.
type Resolver struct {
	store    ports.EntryStore
	maxDepth int
}

// NewResolver creates a Resolver. A non-positive maxDepth selects DefaultMaxDepth.
func NewResolver(store ports.EntryStore, maxDepth int) *Resolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Resolver{store: store, maxDepth: maxDepth}
}

// MaxDepth returns the nesting limit.
func (r *Resolver) MaxDepth() int {
	return r.maxDepth
}

// Expand returns the ingredient portions item stands for.
// An ingredient yields one portion; a recipe yields the concatenated expansion of its
// required items with their quantities multiplied by item.Quantity, in item order.
func (r *Resolver) Expand(ctx context.Context, item domain.RequiredItem) ([]domain.Portion, error) {
	return r.ExpandFrom(ctx, nil, item)
}

// ExpandFrom is Expand with the names already being expanded by the caller on path.
// Reaching a name on path is reported as a cycle.
func (r *Resolver) ExpandFrom(ctx context.Context, path []string, item domain.RequiredItem) ([]domain.Portion, error) {
	w := walker{resolver: r, path: append([]string(nil), path...)}
	var out []domain.Portion
	if err := w.visit(ctx, item.Name, item.Quantity, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type walker struct {
	resolver *Resolver
	path     []string
}

func (w *walker) visit(ctx context.Context, name string, quantity int, out *[]domain.Portion) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, active := range w.path {
		if active == name {
			return w.cycleError(name)
		}
	}
	if len(w.path) >= w.resolver.maxDepth {
		return zerr.With(
			zerr.With(zerr.Wrap(domain.ErrCyclicDefinition, "nesting too deep"), "max_depth", w.resolver.maxDepth),
			"name", name,
		)
	}

	entry, err := w.resolver.store.Lookup(ctx, name)
	if err != nil {
		return err
	}
	if entry == nil {
		return zerr.With(
			zerr.With(zerr.Wrap(domain.ErrUnresolvedReference, "expansion stopped"), "name", name),
			"path", w.trail(name),
		)
	}

	if entry.IsIngredient() {
		*out = append(*out, domain.Portion{Name: name, Quantity: quantity})
		return nil
	}

	w.path = append(w.path, name)
	for _, child := range entry.RequiredItems {
		product, ok := multiply(quantity, child.Quantity)
		if !ok {
			return zerr.With(
				zerr.With(zerr.Wrap(domain.ErrQuantityOverflow, "expansion stopped"), "name", child.Name),
				"path", w.trail(child.Name),
			)
		}
		if err := w.visit(ctx, child.Name, product, out); err != nil {
			return err
		}
	}
	w.path = w.path[:len(w.path)-1]
	return nil
}

// cycleError reports the cycle closed by name as "A -> B -> A".
func (w *walker) cycleError(name string) error {
	start := 0
	for i, active := range w.path {
		if active == name {
			start = i
			break
		}
	}
	cycle := strings.Join(append(append([]string(nil), w.path[start:]...), name), " -> ")
	return zerr.With(zerr.Wrap(domain.ErrCyclicDefinition, "expansion stopped"), "cycle", cycle)
}

func (w *walker) trail(name string) string {
	return strings.Join(append(append([]string(nil), w.path...), name), " -> ")
}

func multiply(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a < 0 || b < 0 {
		return 0, false
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

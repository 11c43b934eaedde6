package expansion

import (
	"context"

	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/zerr"
)

// Aggregator merges expanded portions and computes their total cook time.
type Aggregator struct {
	store ports.EntryStore
}

// NewAggregator creates an Aggregator reading cook times from store.
func NewAggregator(store ports.EntryStore) *Aggregator {
	return &Aggregator{store: store}
}

// Merge sums the quantities of portions sharing a name.
// The result holds one portion per distinct name, ordered by first appearance.
func (a *Aggregator) Merge(portions []domain.Portion) ([]domain.Portion, error) {
	merged := make([]domain.Portion, 0, len(portions))
	index := make(map[string]int, len(portions))
	for _, p := range portions {
		i, ok := index[p.Name]
		if !ok {
			index[p.Name] = len(merged)
			merged = append(merged, p)
			continue
		}
		sum, ok := add(merged[i].Quantity, p.Quantity)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrQuantityOverflow, "merge stopped"), "name", p.Name)
		}
		merged[i].Quantity = sum
	}
	return merged, nil
}

// TotalCookTime returns the sum of cookTime × quantity over merged.
// Each name is looked up again and must resolve to an ingredient.
func (a *Aggregator) TotalCookTime(ctx context.Context, merged []domain.Portion) (int, error) {
	total := 0
	for _, p := range merged {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		entry, err := a.store.Lookup(ctx, p.Name)
		if err != nil {
			return 0, err
		}
		if entry == nil || !entry.IsIngredient() {
			return 0, zerr.With(zerr.Wrap(domain.ErrUnresolvedReference, "total stopped"), "name", p.Name)
		}

		part, ok := multiply(entry.CookTime, p.Quantity)
		if !ok {
			return 0, zerr.With(zerr.Wrap(domain.ErrQuantityOverflow, "total stopped"), "name", p.Name)
		}
		if total, ok = add(total, part); !ok {
			return 0, zerr.With(zerr.Wrap(domain.ErrQuantityOverflow, "total stopped"), "name", p.Name)
		}
	}
	return total, nil
}

func add(a, b int) (int, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

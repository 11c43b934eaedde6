package expansion_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cookbook/internal/adapters/store"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/engine/expansion"
	"pgregory.net/rapid"
)

func TestAggregator_Merge(t *testing.T) {
	a := expansion.NewAggregator(kitchen(t))

	got, err := a.Merge([]domain.Portion{
		{Name: "Butter", Quantity: 2},
		{Name: "Milk", Quantity: 1},
		{Name: "Butter", Quantity: 4},
		{Name: "Salt", Quantity: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Portion{
		{Name: "Butter", Quantity: 6},
		{Name: "Milk", Quantity: 1},
		{Name: "Salt", Quantity: 0},
	}, got)
}

func TestAggregator_MergeEmpty(t *testing.T) {
	got, err := expansion.NewAggregator(kitchen(t)).Merge(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAggregator_MergeOverflow(t *testing.T) {
	maxInt := int(^uint(0) >> 1)

	_, err := expansion.NewAggregator(kitchen(t)).Merge([]domain.Portion{
		{Name: "Grain", Quantity: maxInt},
		{Name: "Grain", Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrQuantityOverflow)
}

func TestAggregator_TotalCookTime(t *testing.T) {
	a := expansion.NewAggregator(pancakeKitchen(t))

	total, err := a.TotalCookTime(context.Background(), []domain.Portion{
		{Name: "Egg", Quantity: 2},
		{Name: "Flour", Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 14, total)
}

func TestAggregator_TotalCookTimeRejectsNonIngredients(t *testing.T) {
	a := expansion.NewAggregator(pancakeKitchen(t))

	t.Run("missing", func(t *testing.T) {
		_, err := a.TotalCookTime(context.Background(), []domain.Portion{{Name: "Truffle", Quantity: 1}})
		assert.ErrorIs(t, err, domain.ErrUnresolvedReference)
	})

	t.Run("recipe", func(t *testing.T) {
		_, err := a.TotalCookTime(context.Background(), []domain.Portion{{Name: "Dough", Quantity: 1}})
		assert.ErrorIs(t, err, domain.ErrUnresolvedReference)
	})
}

// TestAggregator_MergeProperties checks that merging keeps every distinct name once
// and preserves the total quantity.
func TestAggregator_MergeProperties(t *testing.T) {
	a := expansion.NewAggregator(kitchen(t))

	rapid.Check(t, func(r *rapid.T) {
		names := rapid.SliceOfNDistinct(rapid.StringMatching(`[A-Z][a-z]{2,6}`), 1, 6, rapid.ID[string]).Draw(r, "names")
		n := rapid.IntRange(0, 30).Draw(r, "n")

		portions := make([]domain.Portion, n)
		wantTotal := 0
		wantNames := map[string]bool{}
		for i := range portions {
			name := rapid.SampledFrom(names).Draw(r, "name")
			qty := rapid.IntRange(0, 1000).Draw(r, "qty")
			portions[i] = domain.Portion{Name: name, Quantity: qty}
			wantTotal += qty
			wantNames[name] = true
		}

		merged, err := a.Merge(portions)
		require.NoError(r, err)
		require.Len(r, merged, len(wantNames))

		gotTotal := 0
		seen := map[string]bool{}
		for _, p := range merged {
			require.False(r, seen[p.Name], "name %q merged twice", p.Name)
			seen[p.Name] = true
			gotTotal += p.Quantity
		}
		require.Equal(r, wantTotal, gotTotal)
	})
}

// TestExpansion_SingleIngredientProperty checks that a recipe with one ingredient I×q
// expands to exactly {I: q} with total cook time c×q.
func TestExpansion_SingleIngredientProperty(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		cookTime := rapid.IntRange(0, 10_000).Draw(r, "cookTime")
		qty := rapid.IntRange(0, 10_000).Draw(r, "qty")

		registry := store.NewMemory(1)
		ctx := context.Background()
		require.NoError(r, registry.Insert(ctx, domain.NewIngredient("Thyme", cookTime)))
		require.NoError(r, registry.Insert(ctx, domain.NewRecipe("Infusion", []domain.RequiredItem{{Name: "Thyme", Quantity: qty}})))

		portions, err := expansion.NewResolver(registry, 0).ExpandFrom(ctx, []string{"Infusion"}, domain.RequiredItem{Name: "Thyme", Quantity: qty})
		require.NoError(r, err)

		a := expansion.NewAggregator(registry)
		merged, err := a.Merge(portions)
		require.NoError(r, err)
		require.Equal(r, []domain.Portion{{Name: "Thyme", Quantity: qty}}, merged)

		total, err := a.TotalCookTime(ctx, merged)
		require.NoError(r, err)
		require.Equal(r, cookTime*qty, total)
	})
}

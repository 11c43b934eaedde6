package expansion_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports/mocks"
	"go.trai.ch/cookbook/internal/engine/expansion"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestResolver_ExpandIngredient(t *testing.T) {
	r := expansion.NewResolver(kitchen(t, domain.NewIngredient("Egg", 5)), 0)

	got, err := r.Expand(context.Background(), domain.RequiredItem{Name: "Egg", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, []domain.Portion{{Name: "Egg", Quantity: 3}}, got)
	assert.Equal(t, expansion.DefaultMaxDepth, r.MaxDepth())
}

func TestResolver_ExpandNested(t *testing.T) {
	r := expansion.NewResolver(pancakeKitchen(t), 0)

	got, err := r.Expand(context.Background(), domain.RequiredItem{Name: "Pancake", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, []domain.Portion{
		{Name: "Egg", Quantity: 6},
		{Name: "Flour", Quantity: 6},
	}, got)
}

func TestResolver_DiamondIsNotACycle(t *testing.T) {
	r := expansion.NewResolver(kitchen(t,
		domain.NewIngredient("Butter", 1),
		recipe("Roux", "Butter", 2),
		recipe("Bechamel", "Roux", 1),
		recipe("Veloute", "Roux", 1),
		recipe("Lasagne", "Bechamel", 1, "Veloute", 2),
	), 0)

	got, err := r.Expand(context.Background(), domain.RequiredItem{Name: "Lasagne", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, []domain.Portion{
		{Name: "Butter", Quantity: 2},
		{Name: "Butter", Quantity: 4},
	}, got)
}

func TestResolver_Unresolved(t *testing.T) {
	r := expansion.NewResolver(kitchen(t, recipe("Cake", "Egg", 1, "Sugar", 2), domain.NewIngredient("Egg", 1)), 0)

	_, err := r.Expand(context.Background(), domain.RequiredItem{Name: "Cake", Quantity: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnresolvedReference)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "Sugar", zErr.Metadata()["name"])
	assert.Equal(t, "Cake -> Sugar", zErr.Metadata()["path"])
}

func TestResolver_Cycles(t *testing.T) {
	tests := []struct {
		name      string
		entries   []domain.Entry
		root      string
		wantCycle string
	}{
		{
			name:      "self reference",
			entries:   []domain.Entry{recipe("A", "A", 1)},
			root:      "A",
			wantCycle: "A -> A",
		},
		{
			name:      "two recipes",
			entries:   []domain.Entry{recipe("A", "B", 1), recipe("B", "A", 1)},
			root:      "A",
			wantCycle: "A -> B -> A",
		},
		{
			name: "cycle below the root",
			entries: []domain.Entry{
				recipe("Top", "A", 1),
				recipe("A", "B", 1),
				recipe("B", "C", 1),
				recipe("C", "A", 1),
			},
			root:      "Top",
			wantCycle: "A -> B -> C -> A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := expansion.NewResolver(kitchen(t, tt.entries...), 0)

			_, err := r.Expand(context.Background(), domain.RequiredItem{Name: tt.root, Quantity: 1})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrCyclicDefinition)

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, tt.wantCycle, zErr.Metadata()["cycle"])
		})
	}
}

func TestResolver_ExpandFromSeedsPath(t *testing.T) {
	r := expansion.NewResolver(kitchen(t, recipe("A", "A", 1)), 0)

	_, err := r.ExpandFrom(context.Background(), []string{"A"}, domain.RequiredItem{Name: "A", Quantity: 1})
	require.Error(t, err)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "A -> A", zErr.Metadata()["cycle"])
}

func TestResolver_MaxDepth(t *testing.T) {
	entries := []domain.Entry{domain.NewIngredient("Water", 1)}
	prev := "Water"
	for i := range 10 {
		name := fmt.Sprintf("Stock%d", i)
		entries = append(entries, recipe(name, prev, 1))
		prev = name
	}
	registry := kitchen(t, entries...)

	_, err := expansion.NewResolver(registry, 5).Expand(context.Background(), domain.RequiredItem{Name: prev, Quantity: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCyclicDefinition)
	assert.Contains(t, err.Error(), "nesting too deep")

	got, err := expansion.NewResolver(registry, 11).Expand(context.Background(), domain.RequiredItem{Name: prev, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, []domain.Portion{{Name: "Water", Quantity: 1}}, got)
}

func TestResolver_ZeroQuantity(t *testing.T) {
	r := expansion.NewResolver(pancakeKitchen(t), 0)

	got, err := r.Expand(context.Background(), domain.RequiredItem{Name: "Pancake", Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, []domain.Portion{{Name: "Egg", Quantity: 0}, {Name: "Flour", Quantity: 0}}, got)
}

func TestResolver_QuantityOverflow(t *testing.T) {
	huge := int(^uint(0) >> 2)
	r := expansion.NewResolver(kitchen(t,
		domain.NewIngredient("Grain", 1),
		recipe("Sack", "Grain", huge),
		recipe("Silo", "Sack", 8),
	), 0)

	_, err := r.Expand(context.Background(), domain.RequiredItem{Name: "Silo", Quantity: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQuantityOverflow)
}

func TestResolver_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mocks.NewMockEntryStore(ctrl)
	r := expansion.NewResolver(entries, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Expand(ctx, domain.RequiredItem{Name: "Egg", Quantity: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolver_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mocks.NewMockEntryStore(ctrl)
	storeErr := errors.New("read timeout")
	entries.EXPECT().Lookup(gomock.Any(), "Egg").Return(nil, storeErr)

	_, err := expansion.NewResolver(entries, 0).Expand(context.Background(), domain.RequiredItem{Name: "Egg", Quantity: 1})
	assert.ErrorIs(t, err, storeErr)
}

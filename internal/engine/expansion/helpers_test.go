package expansion_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/cookbook/internal/adapters/store"
	"go.trai.ch/cookbook/internal/core/domain"
)

// kitchen builds a registry from entries, failing the test on any insert error.
func kitchen(t *testing.T, entries ...domain.Entry) *store.Memory {
	t.Helper()
	m := store.NewMemory(4)
	for _, e := range entries {
		require.NoError(t, m.Insert(context.Background(), e))
	}
	return m
}

func recipe(name string, pairs ...any) domain.Entry {
	items := make([]domain.RequiredItem, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, domain.RequiredItem{Name: pairs[i].(string), Quantity: pairs[i+1].(int)})
	}
	return domain.NewRecipe(name, items)
}

// pancakeKitchen is Egg(5), Flour(2), Dough = Flour×2, Pancake = Egg×2 + Dough×1.
func pancakeKitchen(t *testing.T) *store.Memory {
	t.Helper()
	return kitchen(t,
		domain.NewIngredient("Egg", 5),
		domain.NewIngredient("Flour", 2),
		recipe("Dough", "Flour", 2),
		recipe("Pancake", "Egg", 2, "Dough", 1),
	)
}
